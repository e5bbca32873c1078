package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-draft/internal/domain/simulation"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
)

const (
	UserRunStatusScored  = "scored"
	UserRunStatusSkipped = "skipped"
	UserRunStatusFailed  = "failed"

	defaultSimulationWorkers = 4
	maxSimulationWorkers     = 32
)

type StartSimulationInput struct {
	Season string
	Seed   uint64
}

type SimulateGameweekInput struct {
	Gameweek int
	// FreeHitLineups holds gameweek-only lineups keyed by user id.
	FreeHitLineups map[string]lineup.Lineup
}

type UserRunResult struct {
	UserID     string  `json:"user_id"`
	Status     string  `json:"status"`
	Points     float64 `json:"points"`
	DurationMs int64   `json:"duration_ms"`
	Message    string  `json:"message,omitempty"`
}

type GameweekRunResult struct {
	Season       string                    `json:"season"`
	Gameweek     int                       `json:"gameweek"`
	Performances int                       `json:"performances"`
	WorkerCount  int                       `json:"worker_count"`
	ScoredCount  int                       `json:"scored_count"`
	SkippedCount int                       `json:"skipped_count"`
	FailedCount  int                       `json:"failed_count"`
	Shared       bool                      `json:"shared"`
	Users        []UserRunResult           `json:"users"`
	Rankings     []ranking.GameweekRanking `json:"rankings"`
}

type SimulationConfig struct {
	Workers int
}

type SimulationService struct {
	allocationRepo allocation.Repository
	snapshots      *SnapshotService
	performances   *PerformanceService
	scorer         *ScoringService
	ranker         *RankingService
	logger         *logging.Logger
	workers        int
	now            func() time.Time
	runFlight      resilience.SingleFlight[GameweekRunResult]
}

func NewSimulationService(
	cfg SimulationConfig,
	allocationRepo allocation.Repository,
	snapshots *SnapshotService,
	performances *PerformanceService,
	scorer *ScoringService,
	ranker *RankingService,
	logger *logging.Logger,
) *SimulationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SimulationService{
		allocationRepo: allocationRepo,
		snapshots:      snapshots,
		performances:   performances,
		scorer:         scorer,
		ranker:         ranker,
		logger:         logger,
		workers:        cfg.Workers,
		now:            time.Now,
	}
}

// StartSimulation freezes every drafted user's lineup for gameweek 1 and
// returns the state later runs are driven by. Users without a lineup are
// logged and left out.
func (s *SimulationService) StartSimulation(ctx context.Context, input StartSimulationInput) (simulation.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.StartSimulation")
	defer span.End()

	season := strings.TrimSpace(input.Season)
	if season == "" {
		return simulation.State{}, invalidInput("season is required")
	}

	userIDs, err := s.allocationRepo.ListUserIDs(ctx)
	if err != nil {
		return simulation.State{}, dependencyErr(err, "list drafted users")
	}

	captured := 0
	for _, userID := range userIDs {
		if _, err := s.snapshots.CaptureSnapshot(ctx, userID, 1, season); err != nil {
			if errors.Is(err, ErrSkippableUserState) {
				continue
			}
			return simulation.State{}, err
		}
		captured++
	}

	now := s.now().UTC()
	state := simulation.State{
		Active:    true,
		Season:    season,
		Seed:      input.Seed,
		StartedAt: now,
		LastRunAt: now,
	}
	s.logger.InfoContext(ctx, "simulation started",
		"season", season,
		"seed", input.Seed,
		"users", len(userIDs),
		"snapshots", captured,
	)
	return state, nil
}

// SimulateGameweek runs performance generation, per-user scoring, ranking
// and season aggregation for one gameweek. Ranking waits for every user to
// finish. Concurrent calls for the same season and gameweek share one run.
func (s *SimulationService) SimulateGameweek(
	ctx context.Context,
	state simulation.State,
	input SimulateGameweekInput,
) (GameweekRunResult, simulation.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.SimulateGameweek")
	defer span.End()

	if !state.Active {
		return GameweekRunResult{}, state, invalidInput("simulation is not active")
	}
	season := strings.TrimSpace(state.Season)
	if season == "" {
		return GameweekRunResult{}, state, invalidInput("simulation state has no season")
	}
	if input.Gameweek <= 0 {
		return GameweekRunResult{}, state, invalidInput("gameweek must be positive, got %d", input.Gameweek)
	}

	key := fmt.Sprintf("%s:%d", season, input.Gameweek)
	result, shared, err := s.runFlight.Do(key, func() (GameweekRunResult, error) {
		return s.runGameweek(ctx, season, state.Seed, input)
	})
	if err != nil {
		return GameweekRunResult{}, state, err
	}
	result.Shared = shared

	return result, state.Advance(input.Gameweek, s.now().UTC()), nil
}

func (s *SimulationService) runGameweek(
	ctx context.Context,
	season string,
	seed uint64,
	input SimulateGameweekInput,
) (GameweekRunResult, error) {
	gameweek := input.Gameweek

	performances, err := s.performances.GenerateGameweek(ctx, gameweek, seed)
	if err != nil {
		return GameweekRunResult{}, err
	}

	userIDs, err := s.allocationRepo.ListUserIDs(ctx)
	if err != nil {
		return GameweekRunResult{}, dependencyErr(err, "list drafted users")
	}

	workerCount := normalizeSimulationWorkerCount(s.workers, len(userIDs))
	result := GameweekRunResult{
		Season:       season,
		Gameweek:     gameweek,
		Performances: len(performances),
		WorkerCount:  workerCount,
		Users:        make([]UserRunResult, 0, len(userIDs)),
	}
	if len(userIDs) == 0 {
		return result, nil
	}

	results := make(chan UserRunResult, len(userIDs))

	var scoredCount atomic.Int32
	var skippedCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return GameweekRunResult{}, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, userID := range userIDs {
		userID := userID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.scoreUser(ctx, userID, season, input)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case UserRunStatusScored:
				scoredCount.Add(1)
			case UserRunStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return GameweekRunResult{}, errors.Wrap(err, "submit scoring task to worker pool")
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Users = append(result.Users, row)
	}
	sort.SliceStable(result.Users, func(i, j int) bool {
		return result.Users[i].UserID < result.Users[j].UserID
	})

	result.ScoredCount = int(scoredCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	result.FailedCount = int(failedCount.Load())

	rankings, err := s.ranker.RankGameweek(ctx, gameweek, season)
	if err != nil {
		return GameweekRunResult{}, err
	}
	result.Rankings = rankings

	for _, row := range result.Users {
		if row.Status != UserRunStatusScored {
			continue
		}
		if _, err := s.ranker.RecomputeSeasonTotal(ctx, row.UserID, season); err != nil {
			return GameweekRunResult{}, err
		}
	}

	s.logger.InfoContext(ctx, "gameweek simulated",
		"season", season,
		"gameweek", gameweek,
		"scored", result.ScoredCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
		"workers", workerCount,
	)
	return result, nil
}

func (s *SimulationService) scoreUser(ctx context.Context, userID, season string, input SimulateGameweekInput) UserRunResult {
	row := UserRunResult{UserID: userID}

	scoreInput := ScoreInput{
		UserID:   userID,
		Gameweek: input.Gameweek,
		Season:   season,
	}
	if override, ok := input.FreeHitLineups[userID]; ok {
		override := override
		scoreInput.FreeHitLineup = &override
	}

	score, err := s.scorer.ScoreGameweek(ctx, scoreInput)
	switch {
	case err == nil:
		row.Status = UserRunStatusScored
		row.Points = score.TotalPoints
	case errors.Is(err, ErrSkippableUserState):
		row.Status = UserRunStatusSkipped
		row.Message = err.Error()
		s.logger.WarnContext(ctx, "user skipped for gameweek",
			"user_id", userID,
			"gameweek", input.Gameweek,
			"error", err,
		)
	default:
		row.Status = UserRunStatusFailed
		row.Message = err.Error()
		s.logger.ErrorContext(ctx, "score user failed",
			"user_id", userID,
			"gameweek", input.Gameweek,
			"error", err,
		)
	}
	return row
}

func (s *SimulationService) GetLeaderboard(ctx context.Context, season string) ([]ranking.LeaderboardEntry, error) {
	return s.ranker.Leaderboard(ctx, season)
}

func (s *SimulationService) GetGameweekResults(ctx context.Context, gameweek *int) ([]performance.PlayerGameweekPerformance, error) {
	return s.performances.GetGameweekResults(ctx, gameweek)
}

func normalizeSimulationWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = defaultSimulationWorkers
	}
	if value > maxSimulationWorkers {
		value = maxSimulationWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
