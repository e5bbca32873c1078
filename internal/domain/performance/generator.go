package performance

import (
	"math/rand/v2"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

const (
	appearancePoints = 2
	fullMatchMinutes = 90

	cleanSheetChance = 0.40
	cleanSheetPoints = 4
	savesPerPoint    = 3

	yellowCardChance = 0.10
	redCardChance    = 0.02
	yellowCardPoints = -1
	redCardPoints    = -3

	bonusThreshold = 8
	bonusChance    = 0.30

	reducedMinutesChance = 0.10
	minReducedMinutes    = 30
)

type goalRule struct {
	chance   float64
	points   int
	maxGoals int
}

type assistRule struct {
	chance     float64
	points     int
	maxAssists int
}

var goalRules = map[player.Position]goalRule{
	player.PositionForward:    {chance: 0.30, points: 4, maxGoals: 2},
	player.PositionMidfielder: {chance: 0.15, points: 5, maxGoals: 2},
	player.PositionDefender:   {chance: 0.05, points: 6, maxGoals: 2},
}

var assistRules = map[player.Position]assistRule{
	player.PositionMidfielder: {chance: 0.25, points: 3, maxAssists: 2},
	player.PositionForward:    {chance: 0.15, points: 3, maxAssists: 1},
}

// Generate draws a simulated stat line for one player. Draws happen in a
// fixed order (goals, assists, clean sheet, saves, cards, bonus, minutes)
// so the same rng state always yields the same record.
func Generate(p player.Player, gameweek int, rng *rand.Rand) PlayerGameweekPerformance {
	out := PlayerGameweekPerformance{
		PlayerID: p.ID,
		Gameweek: gameweek,
		Minutes:  fullMatchMinutes,
	}
	points := appearancePoints

	if rule, ok := goalRules[p.Position]; ok && rng.Float64() < rule.chance {
		out.Goals = 1 + rng.IntN(rule.maxGoals)
		points += out.Goals * rule.points
	}

	if rule, ok := assistRules[p.Position]; ok && rng.Float64() < rule.chance {
		out.Assists = 1 + rng.IntN(rule.maxAssists)
		points += out.Assists * rule.points
	}

	if p.Position == player.PositionDefender || p.Position == player.PositionGoalkeeper {
		if rng.Float64() < cleanSheetChance {
			out.CleanSheets = 1
			points += cleanSheetPoints
		}
	}

	if p.Position == player.PositionGoalkeeper {
		out.Saves = 1 + rng.IntN(5)
		points += out.Saves / savesPerPoint
	}

	// Yellow is checked first; red occupies the next band of the same draw.
	cardDraw := rng.Float64()
	switch {
	case cardDraw < yellowCardChance:
		out.YellowCards = 1
		points += yellowCardPoints
	case cardDraw < yellowCardChance+redCardChance:
		out.RedCards = 1
		points += redCardPoints
	}

	if points >= bonusThreshold && rng.Float64() < bonusChance {
		out.Bonus = 1 + rng.IntN(3)
		points += out.Bonus
	}

	if rng.Float64() < reducedMinutesChance {
		out.Minutes = minReducedMinutes + rng.IntN(fullMatchMinutes-minReducedMinutes+1)
	}

	if points < 0 {
		points = 0
	}
	out.Points = points
	return out
}
