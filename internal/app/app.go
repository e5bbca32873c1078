package app

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	cacherepo "github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/fantasy-draft/internal/platform/cache"
	"github.com/riskibarqy/fantasy-draft/internal/platform/dbmigrate"
	idgen "github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

// App holds the wired services for one process.
type App struct {
	Config  config.Config
	Players player.Repository

	Allocations *usecase.AllocationService
	Lineups     *usecase.LineupService
	Draft       *usecase.DraftService
	Snapshots   *usecase.SnapshotService
	Performance *usecase.PerformanceService
	Scoring     *usecase.ScoringService
	Ranking     *usecase.RankingService
	Simulation  *usecase.SimulationService

	db *sqlx.DB
}

type repositories struct {
	players      player.Repository
	allocations  allocation.Repository
	lineups      lineup.Repository
	scores       scoring.Repository
	performances performance.Repository
	rankings     ranking.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos repositories
		db    *sqlx.DB
		err   error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err = openPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		repos = newPostgresRepositories(db)
	default:
		repos = newMemoryRepositories()
	}

	if cfg.PlayerCacheSize > 0 {
		repos.players = cacherepo.NewPlayerRepository(repos.players, basecache.NewStore(cfg.PlayerCacheSize, cfg.PlayerCacheTTL))
	}

	a := &App{Config: cfg, Players: repos.players, db: db}
	a.Allocations = usecase.NewAllocationService(repos.players, repos.allocations, repos.lineups, idgen.NewUUIDGenerator(), logger.Named("allocation"))
	a.Lineups = usecase.NewLineupService(repos.players, repos.allocations, repos.lineups, logger.Named("lineup"))
	a.Draft = usecase.NewDraftService(repos.players, a.Allocations, logger.Named("draft"))
	a.Snapshots = usecase.NewSnapshotService(repos.lineups, repos.scores, logger.Named("snapshot"))
	a.Performance = usecase.NewPerformanceService(repos.players, repos.performances, logger.Named("performance"))
	a.Scoring = usecase.NewScoringService(a.Snapshots, repos.performances, repos.scores, logger.Named("scoring"))
	a.Ranking = usecase.NewRankingService(repos.scores, repos.rankings, logger.Named("ranking"))
	a.Simulation = usecase.NewSimulationService(
		usecase.SimulationConfig{Workers: cfg.SimWorkers},
		repos.allocations,
		a.Snapshots,
		a.Performance,
		a.Scoring,
		a.Ranking,
		logger.Named("simulation"),
	)

	logger.Info("app wired",
		"store_driver", cfg.StoreDriver,
		"player_cache_size", cfg.PlayerCacheSize,
		"sim_workers", cfg.SimWorkers,
	)
	return a, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func newMemoryRepositories() repositories {
	return repositories{
		players:      memory.NewPlayerRepository(memory.SeedPlayers()),
		allocations:  memory.NewAllocationRepository(),
		lineups:      memory.NewLineupRepository(),
		scores:       memory.NewScoringRepository(),
		performances: memory.NewPerformanceRepository(),
		rankings:     memory.NewRankingRepository(),
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		players:      postgres.NewPlayerRepository(db),
		allocations:  postgres.NewAllocationRepository(db),
		lineups:      postgres.NewLineupRepository(db),
		scores:       postgres.NewScoringRepository(db),
		performances: postgres.NewPerformanceRepository(db),
		rankings:     postgres.NewRankingRepository(db),
	}
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	if cfg.DBAutoMigrate {
		if err := migrateUp(dbURL, cfg.MigrationsDir, logger); err != nil {
			return nil, err
		}
	}

	db, err := openTracedDB(dbURL)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "bootstrap seed")
	}

	logger.Info("postgres connected",
		"db_name", dbNameFromURL(dbURL),
		"dsn", redactDBURL(dbURL),
	)
	return db, nil
}

func migrateUp(dbURL, dir string, logger *logging.Logger) error {
	resolved, err := dbmigrate.ResolveDir(dir)
	if err != nil {
		return err
	}
	m, err := dbmigrate.Open(dbURL, resolved)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Warn("close migrator failed", "error", err)
		}
	}()

	if err := m.Up(); err != nil {
		return err
	}
	logger.Info("migrations applied", "source", m.Source)
	return nil
}
