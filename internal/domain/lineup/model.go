package lineup

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
)

// Chip is a one-shot modifier a user can play once per season.
type Chip string

const (
	ChipWildcard      Chip = "wildcard"
	ChipFreeHit       Chip = "free_hit"
	ChipBenchBoost    Chip = "bench_boost"
	ChipTripleCaptain Chip = "triple_captain"
)

var AllChips = map[Chip]struct{}{
	ChipWildcard:      {},
	ChipFreeHit:       {},
	ChipBenchBoost:    {},
	ChipTripleCaptain: {},
}

// Lineup is the user's live team as maintained by the team management
// surface. It is only read by the core, except when a player is
// deallocated.
type Lineup struct {
	UserID          string   `validate:"notblank"`
	ActivePlayerIDs []string `validate:"max=5,dive,notblank"`
	BenchPlayerID   string
	CaptainID       string
	ViceCaptainID   string
	ActiveChip      Chip `validate:"omitempty,oneof=wildcard free_hit bench_boost triple_captain"`
	TransfersMade   int  `validate:"gte=0"`
	UpdatedAt       time.Time
}

// IsEmpty reports whether the lineup fields no players at all.
func (l Lineup) IsEmpty() bool {
	return len(l.ActivePlayerIDs) == 0 && l.BenchPlayerID == ""
}

// PlayerIDs lists active players followed by the bench player.
func (l Lineup) PlayerIDs() []string {
	out := append([]string(nil), l.ActivePlayerIDs...)
	if l.BenchPlayerID != "" {
		out = append(out, l.BenchPlayerID)
	}
	return out
}

// WithoutPlayer drops a player from every slot of the lineup.
func (l Lineup) WithoutPlayer(playerID string) Lineup {
	out := l
	out.ActivePlayerIDs = make([]string, 0, len(l.ActivePlayerIDs))
	for _, id := range l.ActivePlayerIDs {
		if id != playerID {
			out.ActivePlayerIDs = append(out.ActivePlayerIDs, id)
		}
	}
	if out.BenchPlayerID == playerID {
		out.BenchPlayerID = ""
	}
	if out.CaptainID == playerID {
		out.CaptainID = ""
	}
	if out.ViceCaptainID == playerID {
		out.ViceCaptainID = ""
	}
	return out
}

// Validate checks the structural lineup rules.
func (l Lineup) Validate() error {
	if l.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	ids := l.PlayerIDs()
	if len(ids) > allocation.MaxPerUser {
		return fmt.Errorf("lineup has %d players, max %d", len(ids), allocation.MaxPerUser)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("player id is required")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate player in lineup: %s", id)
		}
		seen[id] = struct{}{}
	}
	if l.CaptainID != "" && l.CaptainID == l.ViceCaptainID {
		return fmt.Errorf("captain and vice-captain must differ")
	}
	if l.ActiveChip != "" {
		if _, ok := AllChips[l.ActiveChip]; !ok {
			return fmt.Errorf("unknown chip %q", l.ActiveChip)
		}
	}
	return nil
}
