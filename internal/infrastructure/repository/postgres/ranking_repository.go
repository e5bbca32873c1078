package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type RankingRepository struct {
	db *sqlx.DB
}

var gameweekRankingSelectColumns = []string{
	"id",
	"gameweek",
	"season",
	"user_id",
	"rank",
	"points",
	"rank_change",
	"created_at",
	"updated_at",
}

var seasonTotalSelectColumns = []string{
	"id",
	"user_id",
	"season",
	"total_points",
	"gameweeks_played",
	"average_points",
	"best_rank",
	"worst_rank",
	"highest_gameweek_score",
	"lowest_gameweek_score",
	"created_at",
	"updated_at",
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

func (r *RankingRepository) ListByGameweek(ctx context.Context, gameweek int, season string) ([]ranking.GameweekRanking, error) {
	return r.listRankings(ctx, "rank",
		qb.Eq("gameweek", gameweek),
		qb.Eq("season", season),
	)
}

func (r *RankingRepository) ListByUserSeason(ctx context.Context, userID, season string) ([]ranking.GameweekRanking, error) {
	return r.listRankings(ctx, "gameweek",
		qb.Eq("user_id", userID),
		qb.Eq("season", season),
	)
}

func (r *RankingRepository) UpsertMany(ctx context.Context, items []ranking.GameweekRanking) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]gameweekRankingInsertModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, gameweekRankingInsertModel{
			Gameweek:   item.Gameweek,
			Season:     item.Season,
			UserID:     item.UserID,
			Rank:       item.Rank,
			Points:     item.Points,
			RankChange: item.RankChange,
		})
	}
	query, args, err := qb.InsertModels("gameweek_rankings", rows, `ON CONFLICT (gameweek, season, user_id)
DO UPDATE SET
    rank = EXCLUDED.rank,
    points = EXCLUDED.points,
    rank_change = EXCLUDED.rank_change,
    updated_at = NOW()`)
	if err != nil {
		return errors.Wrap(err, "build upsert gameweek rankings query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "upsert gameweek rankings")
	}
	return nil
}

func (r *RankingRepository) GetSeasonTotal(ctx context.Context, userID, season string) (ranking.SeasonTotal, bool, error) {
	query, args, err := qb.Select(seasonTotalSelectColumns...).From("season_totals").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return ranking.SeasonTotal{}, false, errors.Wrap(err, "build get season total query")
	}

	var row seasonTotalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ranking.SeasonTotal{}, false, nil
		}
		return ranking.SeasonTotal{}, false, errors.Wrapf(err, "get season total user=%s", userID)
	}

	item, err := seasonTotalFromRow(row)
	if err != nil {
		return ranking.SeasonTotal{}, false, err
	}
	return item, true, nil
}

func (r *RankingRepository) UpsertSeasonTotal(ctx context.Context, total ranking.SeasonTotal) error {
	insertModel := seasonTotalInsertModel{
		UserID:               total.UserID,
		Season:               total.Season,
		TotalPoints:          total.TotalPoints,
		GameweeksPlayed:      total.GameweeksPlayed,
		AveragePoints:        total.AveragePoints,
		BestRank:             total.BestRank,
		WorstRank:            total.WorstRank,
		HighestGameweekScore: total.HighestGameweekScore,
		LowestGameweekScore:  total.LowestGameweekScore,
		UpdatedAt:            total.UpdatedAt,
	}
	query, args, err := qb.InsertModel("season_totals", insertModel, `ON CONFLICT (user_id, season)
DO UPDATE SET
    total_points = EXCLUDED.total_points,
    gameweeks_played = EXCLUDED.gameweeks_played,
    average_points = EXCLUDED.average_points,
    best_rank = EXCLUDED.best_rank,
    worst_rank = EXCLUDED.worst_rank,
    highest_gameweek_score = EXCLUDED.highest_gameweek_score,
    lowest_gameweek_score = EXCLUDED.lowest_gameweek_score,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return errors.Wrap(err, "build upsert season total query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upsert season total user=%s", total.UserID)
	}
	return nil
}

func (r *RankingRepository) ListSeasonTotals(ctx context.Context, season string) ([]ranking.SeasonTotal, error) {
	query, args, err := qb.Select(seasonTotalSelectColumns...).From("season_totals").
		Where(qb.Eq("season", season)).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list season totals query")
	}

	var rows []seasonTotalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list season totals season=%s", season)
	}

	out := make([]ranking.SeasonTotal, 0, len(rows))
	for _, row := range rows {
		item, err := seasonTotalFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *RankingRepository) listRankings(ctx context.Context, orderBy string, conds ...qb.Condition) ([]ranking.GameweekRanking, error) {
	query, args, err := qb.Select(gameweekRankingSelectColumns...).From("gameweek_rankings").
		Where(conds...).
		OrderBy(orderBy, "user_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list gameweek rankings query")
	}

	var rows []gameweekRankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list gameweek rankings")
	}

	out := make([]ranking.GameweekRanking, 0, len(rows))
	for _, row := range rows {
		item := ranking.GameweekRanking{
			Gameweek:   row.Gameweek,
			Season:     row.Season,
			UserID:     row.UserID,
			Rank:       row.Rank,
			Points:     row.Points,
			RankChange: row.RankChange,
		}
		if err := validRow("gameweek ranking", item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func seasonTotalFromRow(row seasonTotalTableModel) (ranking.SeasonTotal, error) {
	item := ranking.SeasonTotal{
		UserID:               row.UserID,
		Season:               row.Season,
		TotalPoints:          row.TotalPoints,
		GameweeksPlayed:      row.GameweeksPlayed,
		AveragePoints:        row.AveragePoints,
		BestRank:             row.BestRank,
		WorstRank:            row.WorstRank,
		HighestGameweekScore: row.HighestGameweekScore,
		LowestGameweekScore:  row.LowestGameweekScore,
		UpdatedAt:            row.UpdatedAt,
	}
	if err := validRow("season total", item); err != nil {
		return ranking.SeasonTotal{}, err
	}
	return item, nil
}
