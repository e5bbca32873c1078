package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

// performanceUpsertBatchSize keeps a single statement well under the
// 65535 bind parameter limit.
const performanceUpsertBatchSize = 500

var performanceColumns = []string{
	"player_public_id",
	"gameweek",
	"points",
	"goals",
	"assists",
	"clean_sheets",
	"yellow_cards",
	"red_cards",
	"saves",
	"bonus",
	"minutes_played",
}

var performanceSelectColumns = []string{
	"id",
	"player_public_id",
	"gameweek",
	"points",
	"goals",
	"assists",
	"clean_sheets",
	"yellow_cards",
	"red_cards",
	"saves",
	"bonus",
	"minutes_played",
	"created_at",
	"updated_at",
}

type PerformanceRepository struct {
	db *sqlx.DB
}

func NewPerformanceRepository(db *sqlx.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// UpsertMany writes every row in one transaction, so a gameweek's stat lines
// become visible together.
func (r *PerformanceRepository) UpsertMany(ctx context.Context, items []performance.PlayerGameweekPerformance) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin upsert performances tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for start := 0; start < len(items); start += performanceUpsertBatchSize {
		end := min(start+performanceUpsertBatchSize, len(items))

		insert := qb.InsertInto("player_gameweek_performances").Columns(performanceColumns...)
		for _, item := range items[start:end] {
			insert.Values(
				item.PlayerID,
				item.Gameweek,
				item.Points,
				item.Goals,
				item.Assists,
				item.CleanSheets,
				item.YellowCards,
				item.RedCards,
				item.Saves,
				item.Bonus,
				item.Minutes,
			)
		}
		query, args, err := insert.Suffix(`ON CONFLICT (player_public_id, gameweek)
DO UPDATE SET
    points = EXCLUDED.points,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    clean_sheets = EXCLUDED.clean_sheets,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    saves = EXCLUDED.saves,
    bonus = EXCLUDED.bonus,
    minutes_played = EXCLUDED.minutes_played,
    updated_at = NOW()`).ToSQL()
		if err != nil {
			return errors.Wrap(err, "build upsert performances query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "upsert performances batch=%d..%d", start, end)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit upsert performances tx")
	}
	return nil
}

func (r *PerformanceRepository) GetMany(ctx context.Context, gameweek int, playerIDs []string) ([]performance.PlayerGameweekPerformance, error) {
	if len(playerIDs) == 0 {
		return []performance.PlayerGameweekPerformance{}, nil
	}
	return r.list(ctx,
		qb.Eq("gameweek", gameweek),
		qb.In("player_public_id", stringSliceToAny(playerIDs)),
	)
}

func (r *PerformanceRepository) ListByGameweek(ctx context.Context, gameweek int) ([]performance.PlayerGameweekPerformance, error) {
	return r.list(ctx, qb.Eq("gameweek", gameweek))
}

func (r *PerformanceRepository) List(ctx context.Context) ([]performance.PlayerGameweekPerformance, error) {
	return r.list(ctx)
}

func (r *PerformanceRepository) list(ctx context.Context, conds ...qb.Condition) ([]performance.PlayerGameweekPerformance, error) {
	query, args, err := qb.Select(performanceSelectColumns...).From("player_gameweek_performances").
		Where(conds...).
		OrderBy("gameweek", "player_public_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list performances query")
	}

	var rows []performanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list performances")
	}

	out := make([]performance.PlayerGameweekPerformance, 0, len(rows))
	for _, row := range rows {
		item, err := performanceFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func performanceFromRow(row performanceTableModel) (performance.PlayerGameweekPerformance, error) {
	item := performance.PlayerGameweekPerformance{
		PlayerID:    row.PlayerPublicID,
		Gameweek:    row.Gameweek,
		Points:      row.Points,
		Goals:       row.Goals,
		Assists:     row.Assists,
		CleanSheets: row.CleanSheets,
		YellowCards: row.YellowCards,
		RedCards:    row.RedCards,
		Saves:       row.Saves,
		Bonus:       row.Bonus,
		Minutes:     row.Minutes,
	}
	if err := validRow("performance", item); err != nil {
		return performance.PlayerGameweekPerformance{}, err
	}
	return item, nil
}
