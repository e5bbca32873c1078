package scoring

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
)

func fivePicks() []SnapshotPick {
	return []SnapshotPick{
		{PlayerID: "A", IsCaptain: true},
		{PlayerID: "B", IsViceCaptain: true},
		{PlayerID: "C"},
		{PlayerID: "D"},
		{PlayerID: "E"},
	}
}

func TestCalculate_CaptainAndViceScenario(t *testing.T) {
	raw := map[string]int{"A": 10, "B": 6, "C": 2, "D": 5, "E": 3}

	got := Calculate(fivePicks(), "", raw)

	if got.StartingPoints != 26 {
		t.Fatalf("unexpected starting points: got=%v want=26", got.StartingPoints)
	}
	if got.TotalPoints != 26+10+3 {
		t.Fatalf("unexpected total: got=%v want=39", got.TotalPoints)
	}
	if got.CaptainPoints != 20 {
		t.Fatalf("unexpected captain points: got=%v want=20", got.CaptainPoints)
	}
	if got.ViceCaptainPoints != 9 {
		t.Fatalf("unexpected vice-captain points: got=%v want=9", got.ViceCaptainPoints)
	}
	if got.ChipPoints != 0 || got.BenchPoints != 0 {
		t.Fatalf("unexpected chip/bench points: %+v", got)
	}
}

func TestCalculate_CaptainMultiplier(t *testing.T) {
	tests := []struct {
		name      string
		chip      lineup.Chip
		wantTotal float64
		wantChip  float64
	}{
		{name: "no chip doubles captain", chip: "", wantTotal: 14},
		{name: "triple captain triples captain", chip: lineup.ChipTripleCaptain, wantTotal: 21, wantChip: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picks := []SnapshotPick{{PlayerID: "cap", IsCaptain: true}, {PlayerID: "zero"}}
			got := Calculate(picks, tt.chip, map[string]int{"cap": 7})
			if got.TotalPoints != tt.wantTotal {
				t.Fatalf("unexpected total: got=%v want=%v", got.TotalPoints, tt.wantTotal)
			}
			if got.ChipPoints != tt.wantChip {
				t.Fatalf("unexpected chip points: got=%v want=%v", got.ChipPoints, tt.wantChip)
			}
		})
	}
}

func TestCalculate_BenchBoost(t *testing.T) {
	picks := []SnapshotPick{
		{PlayerID: "A", IsCaptain: true},
		{PlayerID: "B"},
		{PlayerID: "S", IsBench: true},
	}
	raw := map[string]int{"A": 4, "B": 3, "S": 9}

	plain := Calculate(picks, "", raw)
	if plain.BenchPoints != 9 {
		t.Fatalf("bench points should be tracked: %+v", plain)
	}
	if plain.TotalPoints != 11 {
		t.Fatalf("bench excluded without chip: got=%v want=11", plain.TotalPoints)
	}

	boosted := Calculate(picks, lineup.ChipBenchBoost, raw)
	if boosted.TotalPoints != 20 {
		t.Fatalf("bench included with bench boost: got=%v want=20", boosted.TotalPoints)
	}
	if boosted.ChipPoints != 9 {
		t.Fatalf("unexpected chip points: got=%v want=9", boosted.ChipPoints)
	}
}

func TestCalculate_MissingPerformanceCountsZero(t *testing.T) {
	got := Calculate(fivePicks(), "", map[string]int{"C": 4})
	if got.TotalPoints != 4 || got.StartingPoints != 4 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	for _, row := range got.Players {
		if row.PlayerID != "C" && row.CountedPoints != 0 {
			t.Fatalf("expected zero for %s, got %+v", row.PlayerID, row)
		}
	}
}

func TestCalculate_BenchedCaptainGetsNoBonus(t *testing.T) {
	picks := []SnapshotPick{
		{PlayerID: "A"},
		{PlayerID: "S", IsBench: true, IsCaptain: true},
	}
	got := Calculate(picks, "", map[string]int{"A": 5, "S": 8})
	if got.TotalPoints != 5 || got.CaptainPoints != 0 {
		t.Fatalf("benched captain must not add points: %+v", got)
	}
}

func TestPicksFromLineup(t *testing.T) {
	item := lineup.Lineup{
		UserID:          "u1",
		ActivePlayerIDs: []string{"A", "B", "C", "D"},
		BenchPlayerID:   "E",
		CaptainID:       "B",
		ViceCaptainID:   "C",
	}

	picks := PicksFromLineup(item)
	if len(picks) != 5 {
		t.Fatalf("expected 5 picks, got %d", len(picks))
	}
	if !picks[1].IsCaptain || !picks[2].IsViceCaptain {
		t.Fatalf("captaincy not carried over: %+v", picks)
	}
	if !picks[4].IsBench || picks[4].PlayerID != "E" {
		t.Fatalf("bench pick should be last: %+v", picks[4])
	}
}

func TestUserGameweekScore_SameResultIgnoresCalculatedAt(t *testing.T) {
	raw := map[string]int{"A": 10, "B": 6, "C": 2, "D": 5, "E": 3}
	breakdown := Calculate(fivePicks(), "", raw)

	first := breakdown.ToScore("user-andi", 3, "2025/2026", "", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	later := breakdown.ToScore("user-andi", 3, "2025/2026", "", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	if !first.SameResult(later) {
		t.Fatalf("expected rows to match ignoring calculated_at: %+v vs %+v", first, later)
	}

	later.TotalPoints++
	if first.SameResult(later) {
		t.Fatalf("expected rows with different totals to differ")
	}
}
