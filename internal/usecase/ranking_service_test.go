package usecase

import (
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/stretchr/testify/require"
)

func seedScores(t *testing.T, repo scoring.Repository, gameweek int, points map[string]float64) {
	t.Helper()
	for userID, total := range points {
		require.NoError(t, repo.UpsertUserScore(t.Context(), scoring.UserGameweekScore{
			UserID:         userID,
			Gameweek:       gameweek,
			Season:         testSeason,
			TotalPoints:    total,
			StartingPoints: total,
		}))
	}
}

func TestRankingService_RankGameweek_RankChanges(t *testing.T) {
	env := newTestEnv(t)
	seedScores(t, env.scores, 2, map[string]float64{"u1": 60, "u2": 50, "u3": 40, "u4": 30})
	seedScores(t, env.scores, 3, map[string]float64{"u1": 55, "u2": 40, "u3": 70, "u4": 25})

	first, err := env.rankingSvc.RankGameweek(t.Context(), 2, testSeason)
	require.NoError(t, err)
	for _, row := range first {
		require.Zero(t, row.RankChange, "first ranked gameweek for %s", row.UserID)
	}

	rows, err := env.rankingSvc.RankGameweek(t.Context(), 3, testSeason)
	require.NoError(t, err)

	got := make(map[string]ranking.GameweekRanking, len(rows))
	for _, row := range rows {
		got[row.UserID] = row
	}
	require.Equal(t, 2, got["u1"].Rank)
	require.Equal(t, 3, got["u2"].Rank)
	require.Equal(t, 1, got["u3"].Rank)
	require.Equal(t, 4, got["u4"].Rank)
	require.Equal(t, -1, got["u1"].RankChange)
	require.Equal(t, -1, got["u2"].RankChange)
	require.Equal(t, 2, got["u3"].RankChange)
	require.Equal(t, 0, got["u4"].RankChange)

	stored, err := env.rankings.ListByGameweek(t.Context(), 3, testSeason)
	require.NoError(t, err)
	require.Len(t, stored, 4)
	require.Equal(t, "u3", stored[0].UserID)
}

func TestRankingService_RankGameweek_EmptyGameweek(t *testing.T) {
	env := newTestEnv(t)

	rows, err := env.rankingSvc.RankGameweek(t.Context(), 1, testSeason)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestRankingService_RecomputeSeasonTotal_IsPure(t *testing.T) {
	env := newTestEnv(t)
	seedScores(t, env.scores, 1, map[string]float64{"u1": 40, "u2": 50})
	seedScores(t, env.scores, 2, map[string]float64{"u1": 65, "u2": 20})

	for gw := 1; gw <= 2; gw++ {
		_, err := env.rankingSvc.RankGameweek(t.Context(), gw, testSeason)
		require.NoError(t, err)
	}

	var totals []ranking.SeasonTotal
	for i := 0; i < 3; i++ {
		total, err := env.rankingSvc.RecomputeSeasonTotal(t.Context(), "u1", testSeason)
		require.NoError(t, err)
		totals = append(totals, total)
	}
	require.Equal(t, totals[0], totals[2])

	got := totals[0]
	require.Equal(t, 105.0, got.TotalPoints)
	require.Equal(t, 2, got.GameweeksPlayed)
	require.Equal(t, 52.5, got.AveragePoints)
	require.Equal(t, 1, got.BestRank)
	require.Equal(t, 2, got.WorstRank)
	require.Equal(t, 65.0, got.HighestGameweekScore)
	require.Equal(t, 40.0, got.LowestGameweekScore)

	// A rescored gameweek replaces its row; the total follows without
	// double counting.
	seedScores(t, env.scores, 2, map[string]float64{"u1": 10})
	got, err := env.rankingSvc.RecomputeSeasonTotal(t.Context(), "u1", testSeason)
	require.NoError(t, err)
	require.Equal(t, 50.0, got.TotalPoints)
}

func TestRankingService_Leaderboard(t *testing.T) {
	env := newTestEnv(t)
	seedScores(t, env.scores, 1, map[string]float64{"u1": 30, "u2": 30, "u3": 45})
	_, err := env.rankingSvc.RankGameweek(t.Context(), 1, testSeason)
	require.NoError(t, err)
	for _, userID := range []string{"u1", "u2", "u3"} {
		_, err := env.rankingSvc.RecomputeSeasonTotal(t.Context(), userID, testSeason)
		require.NoError(t, err)
	}

	board, err := env.rankingSvc.Leaderboard(t.Context(), testSeason)
	require.NoError(t, err)
	require.Len(t, board, 3)
	require.Equal(t, "u3", board[0].UserID)
	require.Equal(t, "u1", board[1].UserID)
	require.Equal(t, "u2", board[2].UserID)
	require.Equal(t, []int{1, 2, 3}, []int{board[0].Rank, board[1].Rank, board[2].Rank})

	_, err = env.rankingSvc.Leaderboard(t.Context(), " ")
	requireErrorIs(t, err, ErrInvalidInput)
}
