package usecase

import (
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

func (e *testEnv) allocateOnly(t *testing.T, userID string, playerIDs ...string) {
	t.Helper()
	for idx, playerID := range playerIDs {
		if _, err := e.allocationSvc.Allocate(t.Context(), AllocateInput{UserID: userID, PlayerID: playerID, Round: idx + 1}); err != nil {
			t.Fatalf("allocate %s to %s: %v", playerID, userID, err)
		}
	}
}

func TestLineupService_Save_ValidLineup(t *testing.T) {
	env := newTestEnv(t)
	env.allocateOnly(t, "user-andi", "idn-fwd-01", "idn-mid-01", "idn-def-01", "idn-gk-01", "idn-def-05")

	got, err := env.lineupSvc.Save(t.Context(), SaveLineupInput{
		UserID:          " user-andi ",
		ActivePlayerIDs: []string{"idn-fwd-01", "idn-mid-01", "idn-def-01", "idn-gk-01"},
		BenchPlayerID:   "idn-def-05",
		CaptainID:       "idn-fwd-01",
		ViceCaptainID:   "idn-mid-01",
		ActiveChip:      lineup.ChipBenchBoost,
	})
	if err != nil {
		t.Fatalf("save lineup: %v", err)
	}
	if got.UserID != "user-andi" || got.TransfersMade != 0 || !got.UpdatedAt.Equal(testNow) {
		t.Fatalf("unexpected lineup: %+v", got)
	}

	stored, exists, err := env.lineupSvc.Get(t.Context(), "user-andi")
	if err != nil || !exists {
		t.Fatalf("get lineup: exists=%v err=%v", exists, err)
	}
	if stored.BenchPlayerID != "idn-def-05" || stored.ActiveChip != lineup.ChipBenchBoost {
		t.Fatalf("unexpected stored lineup: %+v", stored)
	}
}

func TestLineupService_Save_CountsTransfers(t *testing.T) {
	env := newTestEnv(t)
	env.allocateOnly(t, "user-andi", "idn-fwd-01", "idn-mid-01", "idn-def-01", "idn-gk-01", "idn-def-05")

	first := SaveLineupInput{
		UserID:          "user-andi",
		ActivePlayerIDs: []string{"idn-fwd-01", "idn-mid-01", "idn-def-01"},
		CaptainID:       "idn-fwd-01",
	}
	if _, err := env.lineupSvc.Save(t.Context(), first); err != nil {
		t.Fatalf("save first lineup: %v", err)
	}

	second := SaveLineupInput{
		UserID:          "user-andi",
		ActivePlayerIDs: []string{"idn-fwd-01", "idn-gk-01", "idn-def-05"},
		CaptainID:       "idn-gk-01",
	}
	got, err := env.lineupSvc.Save(t.Context(), second)
	if err != nil {
		t.Fatalf("save second lineup: %v", err)
	}
	if got.TransfersMade != 2 {
		t.Fatalf("expected 2 transfers, got %d", got.TransfersMade)
	}
}

func TestLineupService_Save_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input SaveLineupInput
	}{
		{
			name:  "missing user",
			input: SaveLineupInput{ActivePlayerIDs: []string{"idn-fwd-01"}},
		},
		{
			name:  "no active players",
			input: SaveLineupInput{UserID: "user-andi"},
		},
		{
			name: "player owned by someone else",
			input: SaveLineupInput{
				UserID:          "user-andi",
				ActivePlayerIDs: []string{"idn-fwd-01", "idn-fwd-02"},
			},
		},
		{
			name: "captain on the bench",
			input: SaveLineupInput{
				UserID:          "user-andi",
				ActivePlayerIDs: []string{"idn-fwd-01"},
				BenchPlayerID:   "idn-mid-01",
				CaptainID:       "idn-mid-01",
			},
		},
		{
			name: "captain equals vice",
			input: SaveLineupInput{
				UserID:          "user-andi",
				ActivePlayerIDs: []string{"idn-fwd-01", "idn-mid-01"},
				CaptainID:       "idn-fwd-01",
				ViceCaptainID:   "idn-fwd-01",
			},
		},
		{
			name: "duplicate player",
			input: SaveLineupInput{
				UserID:          "user-andi",
				ActivePlayerIDs: []string{"idn-fwd-01", "idn-fwd-01"},
			},
		},
		{
			name: "unknown chip",
			input: SaveLineupInput{
				UserID:          "user-andi",
				ActivePlayerIDs: []string{"idn-fwd-01"},
				ActiveChip:      lineup.Chip("double_gameweek"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.allocateOnly(t, "user-andi", "idn-fwd-01", "idn-mid-01")
			env.allocateOnly(t, "user-budi", "idn-fwd-02")

			_, err := env.lineupSvc.Save(t.Context(), tt.input)
			requireErrorIs(t, err, ErrInvalidInput)

			if _, exists, _ := env.lineups.GetByUser(t.Context(), "user-andi"); exists {
				t.Fatalf("rejected lineup must not be stored")
			}
		})
	}
}

func TestLineupService_AutoPick(t *testing.T) {
	env := newTestEnv(t)
	env.allocateOnly(t, "user-andi", "idn-def-05", "idn-gk-01", "idn-mid-01", "idn-fwd-01", "idn-def-01")

	got, err := env.lineupSvc.AutoPick(t.Context(), "user-andi")
	if err != nil {
		t.Fatalf("auto pick: %v", err)
	}

	wantActive := []string{"idn-fwd-01", "idn-mid-01", "idn-gk-01", "idn-def-01"}
	if len(got.ActivePlayerIDs) != len(wantActive) {
		t.Fatalf("unexpected active players: %+v", got.ActivePlayerIDs)
	}
	for i := range wantActive {
		if got.ActivePlayerIDs[i] != wantActive[i] {
			t.Fatalf("unexpected active order: got=%v want=%v", got.ActivePlayerIDs, wantActive)
		}
	}
	if got.BenchPlayerID != "idn-def-05" || got.CaptainID != "idn-fwd-01" || got.ViceCaptainID != "idn-mid-01" {
		t.Fatalf("unexpected auto pick: %+v", got)
	}
}

func TestLineupService_AutoPick_NoAllocations(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.lineupSvc.AutoPick(t.Context(), "user-andi")
	requireErrorIs(t, err, ErrInvalidInput)
}

func TestLineupService_AutoPick_AllocatedPlayersLeftPool(t *testing.T) {
	env := newTestEnv(t)
	env.allocateOnly(t, "user-andi", "idn-fwd-01")

	// The allocation survives but the player is no longer in the pool.
	retired := NewLineupService(memory.NewPlayerRepository(nil), env.allocations, env.lineups, logging.NewNop())

	_, err := retired.AutoPick(t.Context(), "user-andi")
	requireErrorIs(t, err, ErrInvalidInput)

	if _, found, _ := env.lineups.GetByUser(t.Context(), "user-andi"); found {
		t.Fatalf("no lineup should be stored")
	}
}
