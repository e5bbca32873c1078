package scoring

import (
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
)

// SnapshotSource tells whether a snapshot was frozen at simulation start or
// built later from the live lineup.
type SnapshotSource string

const (
	SourceCaptured SnapshotSource = "captured"
	// SourceLiveFallback marks snapshots built from the live lineup for users
	// that had none frozen for the gameweek (typically late joiners).
	SourceLiveFallback SnapshotSource = "live_fallback"
)

// SnapshotPick is one frozen lineup slot.
type SnapshotPick struct {
	PlayerID      string `json:"player_id" validate:"notblank"`
	IsBench       bool   `json:"is_bench"`
	IsCaptain     bool   `json:"is_captain"`
	IsViceCaptain bool   `json:"is_vice_captain"`
}

// TeamSnapshot is a user's lineup frozen for one gameweek of a season.
type TeamSnapshot struct {
	UserID        string         `validate:"notblank"`
	Gameweek      int            `validate:"gt=0"`
	Season        string         `validate:"notblank"`
	Picks         []SnapshotPick `validate:"dive"`
	ChipUsed      lineup.Chip
	TransfersMade int            `validate:"gte=0"`
	Source        SnapshotSource `validate:"oneof=captured live_fallback"`
	CapturedAt    time.Time
}

// SnapshotFromLineup freezes a live lineup.
func SnapshotFromLineup(item lineup.Lineup, gameweek int, season string, source SnapshotSource, now time.Time) TeamSnapshot {
	return TeamSnapshot{
		UserID:        item.UserID,
		Gameweek:      gameweek,
		Season:        season,
		Picks:         PicksFromLineup(item),
		ChipUsed:      item.ActiveChip,
		TransfersMade: item.TransfersMade,
		Source:        source,
		CapturedAt:    now,
	}
}

// PicksFromLineup flattens a lineup into snapshot picks, active players first.
func PicksFromLineup(item lineup.Lineup) []SnapshotPick {
	picks := make([]SnapshotPick, 0, len(item.ActivePlayerIDs)+1)
	for _, playerID := range item.ActivePlayerIDs {
		picks = append(picks, SnapshotPick{
			PlayerID:      playerID,
			IsCaptain:     playerID == item.CaptainID,
			IsViceCaptain: playerID == item.ViceCaptainID,
		})
	}
	if item.BenchPlayerID != "" {
		picks = append(picks, SnapshotPick{
			PlayerID:      item.BenchPlayerID,
			IsBench:       true,
			IsCaptain:     item.BenchPlayerID == item.CaptainID,
			IsViceCaptain: item.BenchPlayerID == item.ViceCaptainID,
		})
	}
	return picks
}

// UserGameweekScore is derived entirely from a snapshot and the gameweek's
// performances; recomputing it yields the same row.
type UserGameweekScore struct {
	UserID            string  `validate:"notblank"`
	Gameweek          int     `validate:"gt=0"`
	Season            string  `validate:"notblank"`
	TotalPoints       float64 `validate:"gte=0"`
	StartingPoints    float64 `validate:"gte=0"`
	CaptainPoints     float64 `validate:"gte=0"`
	ViceCaptainPoints float64 `validate:"gte=0"`
	BenchPoints       float64 `validate:"gte=0"`
	ChipUsed          lineup.Chip
	ChipPoints        float64 `validate:"gte=0"`
	CalculatedAt      time.Time
}

// SameResult reports whether two rows carry identical derived values,
// ignoring CalculatedAt.
func (s UserGameweekScore) SameResult(other UserGameweekScore) bool {
	other.CalculatedAt = s.CalculatedAt
	return s == other
}
