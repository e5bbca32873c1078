package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const testSeason = "2025/2026"

var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("alloc-%03d", g.n), nil
}

type testEnv struct {
	players      *memory.PlayerRepository
	allocations  *memory.AllocationRepository
	lineups      *memory.LineupRepository
	scores       *memory.ScoringRepository
	performances *memory.PerformanceRepository
	rankings     *memory.RankingRepository

	allocationSvc  *AllocationService
	lineupSvc      *LineupService
	draftSvc       *DraftService
	snapshotSvc    *SnapshotService
	performanceSvc *PerformanceService
	scoringSvc     *ScoringService
	rankingSvc     *RankingService
	simulationSvc  *SimulationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logging.NewNop()
	env := &testEnv{
		players:      memory.NewPlayerRepository(memory.SeedPlayers()),
		allocations:  memory.NewAllocationRepository(),
		lineups:      memory.NewLineupRepository(),
		scores:       memory.NewScoringRepository(),
		performances: memory.NewPerformanceRepository(),
		rankings:     memory.NewRankingRepository(),
	}

	now := func() time.Time { return testNow }

	env.allocationSvc = NewAllocationService(env.players, env.allocations, env.lineups, &sequenceIDs{}, logger)
	env.allocationSvc.now = now
	env.lineupSvc = NewLineupService(env.players, env.allocations, env.lineups, logger)
	env.lineupSvc.now = now
	env.draftSvc = NewDraftService(env.players, env.allocationSvc, logger)
	env.snapshotSvc = NewSnapshotService(env.lineups, env.scores, logger)
	env.snapshotSvc.now = now
	env.performanceSvc = NewPerformanceService(env.players, env.performances, logger)
	env.scoringSvc = NewScoringService(env.snapshotSvc, env.performances, env.scores, logger)
	env.scoringSvc.now = now
	env.rankingSvc = NewRankingService(env.scores, env.rankings, logger)
	env.rankingSvc.now = now
	env.simulationSvc = NewSimulationService(
		SimulationConfig{Workers: 3},
		env.allocations,
		env.snapshotSvc,
		env.performanceSvc,
		env.scoringSvc,
		env.rankingSvc,
		logger,
	)
	env.simulationSvc.now = now

	return env
}

// draft allocates the players to the user and fields them all, captain first
// and vice-captain second.
func (e *testEnv) draft(t *testing.T, userID string, playerIDs ...string) {
	t.Helper()

	for idx, playerID := range playerIDs {
		if _, err := e.allocationSvc.Allocate(t.Context(), AllocateInput{
			UserID:   userID,
			PlayerID: playerID,
			Round:    idx + 1,
			Order:    idx,
		}); err != nil {
			t.Fatalf("allocate %s to %s: %v", playerID, userID, err)
		}
	}

	item := lineup.Lineup{
		UserID:          userID,
		ActivePlayerIDs: append([]string(nil), playerIDs...),
		UpdatedAt:       testNow,
	}
	if len(playerIDs) > 0 {
		item.CaptainID = playerIDs[0]
	}
	if len(playerIDs) > 1 {
		item.ViceCaptainID = playerIDs[1]
	}
	if err := e.lineups.Upsert(t.Context(), item); err != nil {
		t.Fatalf("upsert lineup for %s: %v", userID, err)
	}
}

// freePlayerID is the one available player draftLeague leaves undrafted.
const freePlayerID = "idn-mid-05"

func (e *testEnv) draftLeague(t *testing.T) {
	t.Helper()

	e.draft(t, "user-andi", "idn-fwd-01", "idn-mid-01", "idn-def-01", "idn-gk-01", "idn-def-05")
	e.draft(t, "user-budi", "idn-fwd-02", "idn-mid-02", "idn-def-02", "idn-gk-02", "idn-mid-06")
	e.draft(t, "user-citra", "idn-fwd-03", "idn-mid-03", "idn-def-03", "idn-gk-03")
	e.draft(t, "user-dewi", "idn-fwd-04", "idn-mid-04", "idn-def-04", "idn-gk-04")
}

// requireErrorIs matches cockroachdb marks as well as wrapped causes.
func requireErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}
