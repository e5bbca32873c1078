package ranking

import "time"

// ScorePoint is one gameweek's total for the season aggregation.
type ScorePoint struct {
	Gameweek int
	Points   float64
}

// Aggregate rebuilds a season total from the complete score and ranking
// history. It never starts from a stored total.
func Aggregate(userID, season string, scores []ScorePoint, rankings []GameweekRanking, now time.Time) SeasonTotal {
	out := SeasonTotal{
		UserID:    userID,
		Season:    season,
		UpdatedAt: now,
	}

	for i, score := range scores {
		out.TotalPoints += score.Points
		if i == 0 || score.Points > out.HighestGameweekScore {
			out.HighestGameweekScore = score.Points
		}
		if i == 0 || score.Points < out.LowestGameweekScore {
			out.LowestGameweekScore = score.Points
		}
	}
	out.GameweeksPlayed = len(scores)
	if out.GameweeksPlayed > 0 {
		out.AveragePoints = out.TotalPoints / float64(out.GameweeksPlayed)
	}

	for i, row := range rankings {
		if i == 0 || row.Rank < out.BestRank {
			out.BestRank = row.Rank
		}
		if i == 0 || row.Rank > out.WorstRank {
			out.WorstRank = row.Rank
		}
	}

	return out
}
