package ranking

import (
	"testing"
	"time"
)

func TestRank_GameweekThreeScenario(t *testing.T) {
	entries := []Entry{
		{UserID: "u1", Points: 55},
		{UserID: "u2", Points: 40},
		{UserID: "u3", Points: 70},
		{UserID: "u4", Points: 25},
	}
	previous := map[string]int{"u1": 1, "u2": 2, "u3": 3, "u4": 4}

	got := Rank(3, "2025", entries, previous)

	byUser := make(map[string]GameweekRanking, len(got))
	for _, row := range got {
		byUser[row.UserID] = row
	}

	wantRank := map[string]int{"u1": 2, "u2": 3, "u3": 1, "u4": 4}
	wantChange := map[string]int{"u1": -1, "u2": -1, "u3": 2, "u4": 0}
	for userID, rank := range wantRank {
		row := byUser[userID]
		if row.Rank != rank {
			t.Fatalf("user %s: rank got=%d want=%d", userID, row.Rank, rank)
		}
		if row.RankChange != wantChange[userID] {
			t.Fatalf("user %s: rank change got=%d want=%d", userID, row.RankChange, wantChange[userID])
		}
		if row.Gameweek != 3 || row.Season != "2025" {
			t.Fatalf("unexpected key: %+v", row)
		}
	}
}

func TestRank_TiesProduceTotalOrder(t *testing.T) {
	entries := []Entry{
		{UserID: "charlie", Points: 30},
		{UserID: "alpha", Points: 30},
		{UserID: "bravo", Points: 45},
		{UserID: "delta", Points: 30},
	}

	got := Rank(1, "2025", entries, nil)

	wantOrder := []string{"bravo", "alpha", "charlie", "delta"}
	for idx, row := range got {
		if row.UserID != wantOrder[idx] {
			t.Fatalf("position %d: got=%s want=%s", idx+1, row.UserID, wantOrder[idx])
		}
		if row.Rank != idx+1 {
			t.Fatalf("ranks must be 1..N without gaps: %+v", got)
		}
		if row.RankChange != 0 {
			t.Fatalf("first ranked gameweek must have zero change: %+v", row)
		}
	}
}

func TestRank_MissingPreviousRankDefaultsToZeroChange(t *testing.T) {
	got := Rank(5, "2025", []Entry{{UserID: "new", Points: 90}, {UserID: "old", Points: 10}}, map[string]int{"old": 1})

	if got[0].UserID != "new" || got[0].RankChange != 0 {
		t.Fatalf("late joiner should have zero change: %+v", got[0])
	}
	if got[1].UserID != "old" || got[1].RankChange != -1 {
		t.Fatalf("unexpected change for existing user: %+v", got[1])
	}
}

func TestLeaderboard(t *testing.T) {
	got := Leaderboard([]SeasonTotal{
		{UserID: "b", TotalPoints: 120},
		{UserID: "a", TotalPoints: 120},
		{UserID: "c", TotalPoints: 200},
	})

	if got[0].UserID != "c" || got[0].Rank != 1 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	if got[1].UserID != "a" || got[1].Rank != 2 || got[2].UserID != "b" || got[2].Rank != 3 {
		t.Fatalf("unexpected tie order: %+v", got)
	}
}

func TestAggregate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	scores := []ScorePoint{{Gameweek: 1, Points: 40}, {Gameweek: 2, Points: 65}, {Gameweek: 3, Points: 30}}
	rankings := []GameweekRanking{{Gameweek: 1, Rank: 3}, {Gameweek: 2, Rank: 1}, {Gameweek: 3, Rank: 4}}

	got := Aggregate("u1", "2025", scores, rankings, now)

	if got.TotalPoints != 135 || got.GameweeksPlayed != 3 || got.AveragePoints != 45 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if got.BestRank != 1 || got.WorstRank != 4 {
		t.Fatalf("unexpected rank bounds: %+v", got)
	}
	if got.HighestGameweekScore != 65 || got.LowestGameweekScore != 30 {
		t.Fatalf("unexpected score bounds: %+v", got)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected updated at: %v", got.UpdatedAt)
	}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate("u1", "2025", nil, nil, time.Time{})
	if got.TotalPoints != 0 || got.GameweeksPlayed != 0 || got.AveragePoints != 0 || got.BestRank != 0 {
		t.Fatalf("expected zero totals: %+v", got)
	}
}
