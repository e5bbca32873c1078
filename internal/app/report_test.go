package app

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
	"github.com/stretchr/testify/require"
)

func sampleReport() DemoReport {
	return DemoReport{
		Season:  "2025/2026",
		Seed:    7,
		Drafted: 2,
		Leaderboard: []ranking.LeaderboardEntry{
			{Rank: 1, SeasonTotal: ranking.SeasonTotal{UserID: "user-budi", Season: "2025/2026", TotalPoints: 64.5, GameweeksPlayed: 2, AveragePoints: 32.25, BestRank: 1, WorstRank: 2}},
			{Rank: 2, SeasonTotal: ranking.SeasonTotal{UserID: "user-andi", Season: "2025/2026", TotalPoints: 50, GameweeksPlayed: 2, AveragePoints: 25, BestRank: 1, WorstRank: 2}},
		},
	}
}

func TestDemoReport_JSON(t *testing.T) {
	raw, err := sampleReport().JSON()
	require.NoError(t, err)

	var decoded struct {
		Season      string `json:"season"`
		Leaderboard []struct {
			Rank        int     `json:"rank"`
			UserID      string  `json:"user_id"`
			TotalPoints float64 `json:"total_points"`
		} `json:"leaderboard"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &decoded))
	require.Equal(t, "2025/2026", decoded.Season)
	require.Len(t, decoded.Leaderboard, 2)
	require.Equal(t, "user-budi", decoded.Leaderboard[0].UserID)
	require.Equal(t, 64.5, decoded.Leaderboard[0].TotalPoints)
}

func TestDemoReport_Table(t *testing.T) {
	out := sampleReport().Table()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	require.Equal(t, "season 2025/2026 after 0 gameweek(s)", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "rank user"))
	require.Contains(t, lines[2], "user-budi")
	require.Contains(t, lines[2], "64.5")
	require.Contains(t, lines[3], "25.00")
}
