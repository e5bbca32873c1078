package scoring

import (
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
)

const (
	captainMultiplier       = 2.0
	tripleCaptainMultiplier = 3.0
	// The vice-captain earns half their raw points on top of the normal 1x,
	// independent of whether the captain played.
	viceCaptainBonusRate = 0.5
)

// PlayerPoints is one pick's share of a gameweek score.
type PlayerPoints struct {
	PlayerID      string
	IsBench       bool
	IsCaptain     bool
	IsViceCaptain bool
	RawPoints     int
	Multiplier    float64
	CountedPoints float64
}

// Breakdown is the calculator output before it is keyed into a score row.
type Breakdown struct {
	StartingPoints    float64
	CaptainPoints     float64
	ViceCaptainPoints float64
	BenchPoints       float64
	ChipPoints        float64
	TotalPoints       float64
	Players           []PlayerPoints
}

// Calculate converts frozen picks plus raw points into a score breakdown.
// Players missing from rawPoints count as zero. Captain and vice-captain
// bonuses only apply to non-bench picks.
func Calculate(picks []SnapshotPick, chip lineup.Chip, rawPoints map[string]int) Breakdown {
	var out Breakdown
	out.Players = make([]PlayerPoints, 0, len(picks))

	captainMult := captainMultiplier
	if chip == lineup.ChipTripleCaptain {
		captainMult = tripleCaptainMultiplier
	}

	var captainExtra, viceExtra float64
	for _, pick := range picks {
		raw := float64(rawPoints[pick.PlayerID])
		row := PlayerPoints{
			PlayerID:      pick.PlayerID,
			IsBench:       pick.IsBench,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
			RawPoints:     rawPoints[pick.PlayerID],
			Multiplier:    1,
		}

		if pick.IsBench {
			out.BenchPoints += raw
			row.Multiplier = 0
			if chip == lineup.ChipBenchBoost {
				row.Multiplier = 1
			}
			row.CountedPoints = raw * row.Multiplier
			out.Players = append(out.Players, row)
			continue
		}

		out.StartingPoints += raw
		switch {
		case pick.IsCaptain:
			row.Multiplier = captainMult
			out.CaptainPoints = raw * captainMult
			captainExtra = raw * (captainMult - 1)
		case pick.IsViceCaptain:
			row.Multiplier = 1 + viceCaptainBonusRate
			out.ViceCaptainPoints = raw * row.Multiplier
			viceExtra = raw * viceCaptainBonusRate
		}
		row.CountedPoints = raw * row.Multiplier
		out.Players = append(out.Players, row)
	}

	out.TotalPoints = out.StartingPoints + captainExtra + viceExtra
	switch chip {
	case lineup.ChipTripleCaptain:
		out.ChipPoints = out.CaptainPoints / tripleCaptainMultiplier
	case lineup.ChipBenchBoost:
		out.ChipPoints = out.BenchPoints
		out.TotalPoints += out.BenchPoints
	}

	return out
}

// ToScore keys a breakdown into a persisted score row.
func (b Breakdown) ToScore(userID string, gameweek int, season string, chip lineup.Chip, now time.Time) UserGameweekScore {
	return UserGameweekScore{
		UserID:            userID,
		Gameweek:          gameweek,
		Season:            season,
		TotalPoints:       b.TotalPoints,
		StartingPoints:    b.StartingPoints,
		CaptainPoints:     b.CaptainPoints,
		ViceCaptainPoints: b.ViceCaptainPoints,
		BenchPoints:       b.BenchPoints,
		ChipUsed:          chip,
		ChipPoints:        b.ChipPoints,
		CalculatedAt:      now,
	}
}
