package ranking

import "sort"

// Entry is the minimal input the ranker needs from a score row.
type Entry struct {
	UserID string
	Points float64
}

// Rank orders entries by points descending and assigns unique positions
// 1..N. Equal points are broken by user id ascending so the order is total
// and stable across runs. previousRank holds last gameweek's positions;
// users missing from it get a rank change of zero.
func Rank(gameweek int, season string, entries []Entry, previousRank map[string]int) []GameweekRanking {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	out := make([]GameweekRanking, 0, len(sorted))
	for idx, entry := range sorted {
		rank := idx + 1
		prev, ok := previousRank[entry.UserID]
		if !ok || prev <= 0 {
			prev = rank
		}
		out = append(out, GameweekRanking{
			Gameweek:   gameweek,
			Season:     season,
			UserID:     entry.UserID,
			Rank:       rank,
			Points:     entry.Points,
			RankChange: prev - rank,
		})
	}
	return out
}

// Leaderboard orders season totals and assigns read-time positions with
// the same tie-break as Rank.
func Leaderboard(totals []SeasonTotal) []LeaderboardEntry {
	sorted := append([]SeasonTotal(nil), totals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	out := make([]LeaderboardEntry, 0, len(sorted))
	for idx, total := range sorted {
		out = append(out, LeaderboardEntry{Rank: idx + 1, SeasonTotal: total})
	}
	return out
}
