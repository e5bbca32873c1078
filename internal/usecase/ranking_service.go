package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

type RankingService struct {
	scoringRepo scoring.Repository
	rankingRepo ranking.Repository
	logger      *logging.Logger
	now         func() time.Time
}

func NewRankingService(scoringRepo scoring.Repository, rankingRepo ranking.Repository, logger *logging.Logger) *RankingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RankingService{
		scoringRepo: scoringRepo,
		rankingRepo: rankingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// RankGameweek orders every stored score of the gameweek and records the
// movement against the previous gameweek.
func (s *RankingService) RankGameweek(ctx context.Context, gameweek int, season string) ([]ranking.GameweekRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.RankGameweek")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" || gameweek <= 0 {
		return nil, invalidInput("season and a positive gameweek are required")
	}

	scores, err := s.scoringRepo.ListUserScoresByGameweek(ctx, gameweek, season)
	if err != nil {
		return nil, dependencyErr(err, "list scores gameweek=%d", gameweek)
	}

	previousRank := make(map[string]int)
	if gameweek > 1 {
		previous, err := s.rankingRepo.ListByGameweek(ctx, gameweek-1, season)
		if err != nil {
			return nil, dependencyErr(err, "list rankings gameweek=%d", gameweek-1)
		}
		for _, row := range previous {
			previousRank[row.UserID] = row.Rank
		}
	}

	entries := make([]ranking.Entry, 0, len(scores))
	for _, score := range scores {
		entries = append(entries, ranking.Entry{UserID: score.UserID, Points: score.TotalPoints})
	}

	rows := ranking.Rank(gameweek, season, entries, previousRank)
	if len(rows) == 0 {
		return rows, nil
	}
	if err := s.rankingRepo.UpsertMany(ctx, rows); err != nil {
		return nil, dependencyErr(err, "upsert rankings gameweek=%d", gameweek)
	}

	s.logger.InfoContext(ctx, "gameweek ranked",
		"gameweek", gameweek,
		"season", season,
		"users", len(rows),
		"leader", rows[0].UserID,
	)
	return rows, nil
}

// RecomputeSeasonTotal rebuilds the user's season total from the full score
// and ranking history and overwrites the stored row.
func (s *RankingService) RecomputeSeasonTotal(ctx context.Context, userID, season string) (ranking.SeasonTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.RecomputeSeasonTotal")
	defer span.End()

	userID = strings.TrimSpace(userID)
	season = strings.TrimSpace(season)
	if userID == "" || season == "" {
		return ranking.SeasonTotal{}, invalidInput("user_id and season are required")
	}

	scores, err := s.scoringRepo.ListUserScoresByUserSeason(ctx, userID, season)
	if err != nil {
		return ranking.SeasonTotal{}, dependencyErr(err, "list scores for %s", userID)
	}
	rankings, err := s.rankingRepo.ListByUserSeason(ctx, userID, season)
	if err != nil {
		return ranking.SeasonTotal{}, dependencyErr(err, "list rankings for %s", userID)
	}

	points := make([]ranking.ScorePoint, 0, len(scores))
	for _, score := range scores {
		points = append(points, ranking.ScorePoint{Gameweek: score.Gameweek, Points: score.TotalPoints})
	}

	total := ranking.Aggregate(userID, season, points, rankings, s.now().UTC())
	if err := s.rankingRepo.UpsertSeasonTotal(ctx, total); err != nil {
		return ranking.SeasonTotal{}, dependencyErr(err, "upsert season total for %s", userID)
	}
	return total, nil
}

// Leaderboard returns season totals by points with positions assigned at
// read time.
func (s *RankingService) Leaderboard(ctx context.Context, season string) ([]ranking.LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Leaderboard")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, invalidInput("season is required")
	}

	totals, err := s.rankingRepo.ListSeasonTotals(ctx, season)
	if err != nil {
		return nil, dependencyErr(err, "list season totals")
	}
	return ranking.Leaderboard(totals), nil
}
