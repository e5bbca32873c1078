package usecase

import (
	"context"

	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
)

type PerformanceService struct {
	playerRepo      player.Repository
	performanceRepo performance.Repository
	logger          *logging.Logger
}

func NewPerformanceService(playerRepo player.Repository, performanceRepo performance.Repository, logger *logging.Logger) *PerformanceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PerformanceService{
		playerRepo:      playerRepo,
		performanceRepo: performanceRepo,
		logger:          logger,
	}
}

// GenerateGameweek simulates a stat line for every player in the pool and
// stores them. Each player draws from its own stream derived from the seed,
// so the output does not depend on goroutine scheduling.
func (s *PerformanceService) GenerateGameweek(ctx context.Context, gameweek int, seed uint64) ([]performance.PlayerGameweekPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.GenerateGameweek")
	defer span.End()

	if gameweek <= 0 {
		return nil, invalidInput("gameweek must be positive, got %d", gameweek)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, dependencyErr(err, "list players")
	}

	items := iter.Map(players, func(p *player.Player) performance.PlayerGameweekPerformance {
		return performance.Generate(*p, gameweek, performance.StreamFor(seed, gameweek, p.ID))
	})

	if err := s.performanceRepo.UpsertMany(ctx, items); err != nil {
		return nil, dependencyErr(err, "upsert performances gameweek=%d", gameweek)
	}

	s.logger.InfoContext(ctx, "gameweek performances generated",
		"gameweek", gameweek,
		"players", len(items),
	)
	return items, nil
}

// GetGameweekResults returns stored stat lines, all of them when gameweek is nil.
func (s *PerformanceService) GetGameweekResults(ctx context.Context, gameweek *int) ([]performance.PlayerGameweekPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.GetGameweekResults")
	defer span.End()

	if gameweek == nil {
		items, err := s.performanceRepo.List(ctx)
		if err != nil {
			return nil, dependencyErr(err, "list performances")
		}
		return items, nil
	}
	if *gameweek <= 0 {
		return nil, invalidInput("gameweek must be positive, got %d", *gameweek)
	}

	items, err := s.performanceRepo.ListByGameweek(ctx, *gameweek)
	if err != nil {
		return nil, dependencyErr(err, "list performances gameweek=%d", *gameweek)
	}
	return items, nil
}
