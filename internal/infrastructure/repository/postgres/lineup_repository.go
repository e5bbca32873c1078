package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

const lineupUpsertSuffix = `ON CONFLICT (user_id) WHERE deleted_at IS NULL
DO UPDATE SET
    active_player_ids = EXCLUDED.active_player_ids,
    bench_player_public_id = EXCLUDED.bench_player_public_id,
    captain_player_public_id = EXCLUDED.captain_player_public_id,
    vice_captain_player_public_id = EXCLUDED.vice_captain_player_public_id,
    active_chip = EXCLUDED.active_chip,
    transfers_made = EXCLUDED.transfers_made,
    updated_at = NOW(),
    deleted_at = NULL`

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByUser(ctx context.Context, userID string) (lineup.Lineup, bool, error) {
	return r.getByUser(ctx, r.db, userID, false)
}

func (r *LineupRepository) List(ctx context.Context) ([]lineup.Lineup, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list lineups query")
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list lineups")
	}

	out := make([]lineup.Lineup, 0, len(rows))
	for _, row := range rows {
		item, err := lineupFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *LineupRepository) Upsert(ctx context.Context, item lineup.Lineup) error {
	return upsertLineup(ctx, r.db, item)
}

// RemovePlayer rewrites the user's row under a row lock so a concurrent
// lineup edit cannot resurrect the removed player.
func (r *LineupRepository) RemovePlayer(ctx context.Context, userID, playerID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin remove lineup player tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	item, found, err := r.getByUser(ctx, tx, userID, true)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := upsertLineup(ctx, tx, item.WithoutPlayer(playerID)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit remove lineup player tx")
	}
	return nil
}

func (r *LineupRepository) getByUser(ctx context.Context, q sqlx.QueryerContext, userID string, forUpdate bool) (lineup.Lineup, bool, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, false, errors.Wrap(err, "build get lineup query")
	}
	if forUpdate {
		query += " FOR UPDATE"
	}

	var row lineupTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, errors.Wrapf(err, "get lineup for user=%s", userID)
	}

	item, err := lineupFromRow(row)
	if err != nil {
		return lineup.Lineup{}, false, err
	}
	return item, true, nil
}

func upsertLineup(ctx context.Context, exec sqlx.ExecerContext, item lineup.Lineup) error {
	insertModel := lineupInsertModel{
		UserID:          item.UserID,
		ActivePlayerIDs: pq.StringArray(append([]string{}, item.ActivePlayerIDs...)),
		BenchPlayerID:   item.BenchPlayerID,
		CaptainID:       item.CaptainID,
		ViceCaptainID:   item.ViceCaptainID,
		ActiveChip:      string(item.ActiveChip),
		TransfersMade:   item.TransfersMade,
	}

	query, args, err := qb.InsertModel("lineups", insertModel, lineupUpsertSuffix)
	if err != nil {
		return errors.Wrap(err, "build lineup upsert query")
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upsert lineup for user=%s", item.UserID)
	}
	return nil
}

func lineupFromRow(row lineupTableModel) (lineup.Lineup, error) {
	item := lineup.Lineup{
		UserID:          row.UserID,
		ActivePlayerIDs: append([]string(nil), row.ActivePlayerIDs...),
		BenchPlayerID:   row.BenchPlayerID,
		CaptainID:       row.CaptainID,
		ViceCaptainID:   row.ViceCaptainID,
		ActiveChip:      lineup.Chip(row.ActiveChip),
		TransfersMade:   row.TransfersMade,
		UpdatedAt:       row.UpdatedAt,
	}
	if err := validRow("lineup", item); err != nil {
		return lineup.Lineup{}, err
	}
	return item, nil
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id",
		"user_id",
		"active_player_ids",
		"bench_player_public_id",
		"captain_player_public_id",
		"vice_captain_player_public_id",
		"active_chip",
		"transfers_made",
		"created_at",
		"updated_at",
		"deleted_at",
	).From("lineups")
}
