package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/validation"
)

type ScoreInput struct {
	UserID   string
	Gameweek int
	Season   string
	// FreeHitLineup replaces the frozen picks for this gameweek only when the
	// snapshot has the free hit chip active.
	FreeHitLineup *lineup.Lineup
}

type snapshotResolver interface {
	ResolveSnapshot(ctx context.Context, userID string, gameweek int, season string) (scoring.TeamSnapshot, error)
}

type ScoringService struct {
	snapshots       snapshotResolver
	performanceRepo performance.Repository
	scoringRepo     scoring.Repository
	logger          *logging.Logger
	now             func() time.Time
}

func NewScoringService(
	snapshots snapshotResolver,
	performanceRepo performance.Repository,
	scoringRepo scoring.Repository,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		snapshots:       snapshots,
		performanceRepo: performanceRepo,
		scoringRepo:     scoringRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// ScoreGameweek computes and stores one user's gameweek score. The row is
// derived only from the snapshot and the stored performances; a rerun that
// yields the same values leaves the stored row untouched.
func (s *ScoringService) ScoreGameweek(ctx context.Context, input ScoreInput) (scoring.UserGameweekScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreGameweek")
	defer span.End()

	userID, season, err := normalizeUserGameweek(input.UserID, input.Gameweek, input.Season)
	if err != nil {
		return scoring.UserGameweekScore{}, err
	}

	snapshot, err := s.snapshots.ResolveSnapshot(ctx, userID, input.Gameweek, season)
	if err != nil {
		return scoring.UserGameweekScore{}, err
	}

	picks := snapshot.Picks
	if input.FreeHitLineup != nil {
		if snapshot.ChipUsed != lineup.ChipFreeHit {
			s.logger.WarnContext(ctx, "free hit lineup ignored, chip not active",
				"user_id", userID,
				"gameweek", input.Gameweek,
				"chip", snapshot.ChipUsed,
			)
		} else {
			override := *input.FreeHitLineup
			override.UserID = userID
			if err := override.Validate(); err != nil {
				return scoring.UserGameweekScore{}, errors.Mark(
					errors.Wrapf(err, "free hit lineup for %s", userID),
					ErrInvalidInput,
				)
			}
			picks = scoring.PicksFromLineup(override)
		}
	}

	playerIDs := make([]string, 0, len(picks))
	for _, pick := range picks {
		playerIDs = append(playerIDs, pick.PlayerID)
	}
	perfs, err := s.performanceRepo.GetMany(ctx, input.Gameweek, playerIDs)
	if err != nil {
		return scoring.UserGameweekScore{}, dependencyErr(err, "get performances user=%s gameweek=%d", userID, input.Gameweek)
	}

	rawPoints := make(map[string]int, len(perfs))
	for _, perf := range perfs {
		rawPoints[perf.PlayerID] = perf.Points
	}
	for _, playerID := range playerIDs {
		if _, ok := rawPoints[playerID]; !ok {
			s.logger.DebugContext(ctx, "performance missing, counting zero",
				"user_id", userID,
				"player_id", playerID,
				"gameweek", input.Gameweek,
			)
		}
	}

	score := scoring.Calculate(picks, snapshot.ChipUsed, rawPoints).
		ToScore(userID, input.Gameweek, season, snapshot.ChipUsed, s.now().UTC())
	if err := validation.Struct(score); err != nil {
		return scoring.UserGameweekScore{}, errors.Wrapf(err, "invalid score for %s: %s", userID, validation.Describe(err))
	}

	existing, found, err := s.scoringRepo.GetUserScore(ctx, userID, input.Gameweek, season)
	if err != nil {
		return scoring.UserGameweekScore{}, dependencyErr(err, "get score user=%s gameweek=%d", userID, input.Gameweek)
	}
	if found && existing.SameResult(score) {
		return existing, nil
	}
	if err := s.scoringRepo.UpsertUserScore(ctx, score); err != nil {
		return scoring.UserGameweekScore{}, dependencyErr(err, "upsert score user=%s gameweek=%d", userID, input.Gameweek)
	}
	return score, nil
}
