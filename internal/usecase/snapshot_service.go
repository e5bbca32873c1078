package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

type SnapshotService struct {
	lineupRepo  lineup.Repository
	scoringRepo scoring.Repository
	logger      *logging.Logger
	now         func() time.Time
}

func NewSnapshotService(lineupRepo lineup.Repository, scoringRepo scoring.Repository, logger *logging.Logger) *SnapshotService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SnapshotService{
		lineupRepo:  lineupRepo,
		scoringRepo: scoringRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// CaptureSnapshot freezes the user's live lineup for the gameweek. Running
// it again overwrites the same key.
func (s *SnapshotService) CaptureSnapshot(ctx context.Context, userID string, gameweek int, season string) (scoring.TeamSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.CaptureSnapshot")
	defer span.End()

	userID, season, err := normalizeUserGameweek(userID, gameweek, season)
	if err != nil {
		return scoring.TeamSnapshot{}, err
	}

	item, exists, err := s.lineupRepo.GetByUser(ctx, userID)
	if err != nil {
		return scoring.TeamSnapshot{}, dependencyErr(err, "get lineup for %s", userID)
	}
	if !exists || item.IsEmpty() {
		s.logger.WarnContext(ctx, "skip snapshot, user has no lineup",
			"user_id", userID,
			"gameweek", gameweek,
			"season", season,
		)
		return scoring.TeamSnapshot{}, errors.Mark(
			errors.Newf("user %s has no lineup", userID),
			ErrSkippableUserState,
		)
	}

	return s.freeze(ctx, item, gameweek, season, scoring.SourceCaptured)
}

// ResolveSnapshot returns the frozen lineup for the key. Users that joined
// after the simulation started have none, so their live lineup is frozen on
// the spot and tagged as a fallback.
func (s *SnapshotService) ResolveSnapshot(ctx context.Context, userID string, gameweek int, season string) (scoring.TeamSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.ResolveSnapshot")
	defer span.End()

	userID, season, err := normalizeUserGameweek(userID, gameweek, season)
	if err != nil {
		return scoring.TeamSnapshot{}, err
	}

	snapshot, exists, err := s.scoringRepo.GetSnapshot(ctx, userID, gameweek, season)
	if err != nil {
		return scoring.TeamSnapshot{}, dependencyErr(err, "get snapshot user=%s gameweek=%d", userID, gameweek)
	}
	if exists {
		return snapshot, nil
	}

	item, exists, err := s.lineupRepo.GetByUser(ctx, userID)
	if err != nil {
		return scoring.TeamSnapshot{}, dependencyErr(err, "get lineup for %s", userID)
	}
	if !exists || item.IsEmpty() {
		return scoring.TeamSnapshot{}, errors.Mark(
			errors.Wrapf(scoring.ErrNoSnapshotAndNoLiveTeam, "user=%s gameweek=%d season=%s", userID, gameweek, season),
			ErrSkippableUserState,
		)
	}

	snapshot, err = s.freeze(ctx, item, gameweek, season, scoring.SourceLiveFallback)
	if err != nil {
		return scoring.TeamSnapshot{}, err
	}
	s.logger.InfoContext(ctx, "snapshot built from live lineup",
		"user_id", userID,
		"gameweek", gameweek,
		"season", season,
		"source", snapshot.Source,
	)
	return snapshot, nil
}

func (s *SnapshotService) freeze(
	ctx context.Context,
	item lineup.Lineup,
	gameweek int,
	season string,
	source scoring.SnapshotSource,
) (scoring.TeamSnapshot, error) {
	if err := item.Validate(); err != nil {
		return scoring.TeamSnapshot{}, errors.Mark(
			errors.Wrapf(err, "lineup for %s", item.UserID),
			ErrSkippableUserState,
		)
	}

	if item.ActiveChip != "" {
		usedAt, err := s.chipUsedBefore(ctx, item.UserID, season, gameweek, item.ActiveChip)
		if err != nil {
			return scoring.TeamSnapshot{}, err
		}
		if usedAt > 0 {
			s.logger.WarnContext(ctx, "chip already played this season, dropping it",
				"user_id", item.UserID,
				"chip", item.ActiveChip,
				"used_gameweek", usedAt,
				"gameweek", gameweek,
			)
			item.ActiveChip = ""
		}
	}

	snapshot := scoring.SnapshotFromLineup(item, gameweek, season, source, s.now().UTC())
	if err := s.scoringRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return scoring.TeamSnapshot{}, dependencyErr(err, "upsert snapshot user=%s gameweek=%d", item.UserID, gameweek)
	}
	return snapshot, nil
}

// chipUsedBefore returns the earlier gameweek the chip was played in, or 0.
func (s *SnapshotService) chipUsedBefore(ctx context.Context, userID, season string, gameweek int, chip lineup.Chip) (int, error) {
	history, err := s.scoringRepo.ListSnapshotsByUserSeason(ctx, userID, season)
	if err != nil {
		return 0, dependencyErr(err, "list snapshots for %s", userID)
	}
	for _, prior := range history {
		if prior.Gameweek < gameweek && prior.ChipUsed == chip {
			return prior.Gameweek, nil
		}
	}
	return 0, nil
}

func normalizeUserGameweek(userID string, gameweek int, season string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	season = strings.TrimSpace(season)
	if userID == "" || season == "" {
		return "", "", invalidInput("user_id and season are required")
	}
	if gameweek <= 0 {
		return "", "", invalidInput("gameweek must be positive, got %d", gameweek)
	}
	return userID, season, nil
}
