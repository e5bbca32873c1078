package usecase

import (
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
)

func TestDraftService_SnakeDraft_ReversesEveryRound(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.draftSvc.SnakeDraft(t.Context(), SnakeDraftInput{
		UserIDs: []string{"user-andi", "user-budi"},
		Rounds:  2,
	})
	if err != nil {
		t.Fatalf("snake draft: %v", err)
	}

	want := []struct {
		userID   string
		playerID string
		round    int
	}{
		{"user-andi", "idn-fwd-02", 1},
		{"user-budi", "idn-fwd-01", 1},
		{"user-budi", "idn-fwd-03", 2},
		{"user-andi", "idn-mid-02", 2},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected allocations: %+v", got)
	}
	for i, w := range want {
		if got[i].UserID != w.userID || got[i].PlayerID != w.playerID || got[i].Round != w.round || got[i].Order != i {
			t.Fatalf("pick %d: got %+v want %+v", i, got[i], w)
		}
	}
}

func TestDraftService_SnakeDraft_SkipsTakenPlayers(t *testing.T) {
	env := newTestEnv(t)
	env.allocateOnly(t, "user-dewi", "idn-fwd-01")

	got, err := env.draftSvc.SnakeDraft(t.Context(), SnakeDraftInput{
		UserIDs: []string{"user-andi", "user-budi"},
		Rounds:  1,
	})
	if err != nil {
		t.Fatalf("snake draft: %v", err)
	}
	if len(got) != 2 || got[0].PlayerID != "idn-fwd-02" || got[1].PlayerID != "idn-fwd-03" {
		t.Fatalf("unexpected allocations: %+v", got)
	}
}

func TestDraftService_SnakeDraft_StopsAtQuota(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.draftSvc.SnakeDraft(t.Context(), SnakeDraftInput{
		UserIDs: []string{"user-andi"},
		Rounds:  allocation.MaxPerUser + 2,
	})
	if err != nil {
		t.Fatalf("snake draft: %v", err)
	}
	if len(got) != allocation.MaxPerUser {
		t.Fatalf("expected %d allocations, got %d", allocation.MaxPerUser, len(got))
	}
}

func TestDraftService_SnakeDraft_PoolExhausted(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.draftSvc.SnakeDraft(t.Context(), SnakeDraftInput{
		UserIDs: []string{"user-andi", "user-budi", "user-citra", "user-dewi"},
		Rounds:  allocation.MaxPerUser,
	})
	if err != nil {
		t.Fatalf("snake draft: %v", err)
	}
	// 19 available players for 20 slots; the unavailable forward is never drafted.
	if len(got) != 19 {
		t.Fatalf("expected 19 allocations, got %d", len(got))
	}
	if owner, owned, _ := env.allocationSvc.OwnerOf(t.Context(), "idn-fwd-05"); owned {
		t.Fatalf("unavailable player drafted by %s", owner)
	}
}

func TestDraftService_SnakeDraft_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.draftSvc.SnakeDraft(t.Context(), SnakeDraftInput{UserIDs: []string{" "}, Rounds: 1})
	requireErrorIs(t, err, ErrInvalidInput)

	_, err = env.draftSvc.SnakeDraft(t.Context(), SnakeDraftInput{UserIDs: []string{"user-andi"}, Rounds: 0})
	requireErrorIs(t, err, ErrInvalidInput)
}
