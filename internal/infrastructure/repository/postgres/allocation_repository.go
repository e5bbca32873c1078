package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

const activePlayerAllocationIndex = "uq_allocations_active_player"

type AllocationRepository struct {
	db *sqlx.DB
}

var allocationSelectColumns = []string{
	"id",
	"public_id",
	"user_id",
	"player_public_id",
	"draft_round",
	"draft_order",
	"created_at",
	"deleted_at",
}

func NewAllocationRepository(db *sqlx.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create serializes writers per user with a transaction-scoped advisory lock,
// so the quota count and the insert see the same ledger. Player exclusivity
// across users is enforced by the partial unique index on active rows.
func (r *AllocationRepository) Create(ctx context.Context, item allocation.Allocation, quota int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin create allocation tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "allocation:"+item.UserID); err != nil {
		return errors.Wrapf(err, "lock allocations for user=%s", item.UserID)
	}

	existingQuery, existingArgs, err := qb.Select("public_id").From("allocations").
		Where(
			qb.Eq("player_public_id", item.PlayerID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build select player allocation query")
	}
	var existingID string
	err = tx.GetContext(ctx, &existingID, existingQuery, existingArgs...)
	switch {
	case err == nil:
		return errors.Wrapf(allocation.ErrAlreadyAllocated, "player=%s allocation=%s", item.PlayerID, existingID)
	case !isNotFound(err):
		return errors.Wrapf(err, "select allocation for player=%s", item.PlayerID)
	}

	countQuery, countArgs, err := qb.Select("COUNT(1)").From("allocations").
		Where(
			qb.Eq("user_id", item.UserID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build count allocations query")
	}
	var owned int
	if err := tx.GetContext(ctx, &owned, countQuery, countArgs...); err != nil {
		return errors.Wrapf(err, "count allocations for user=%s", item.UserID)
	}
	if owned >= quota {
		return errors.Wrapf(allocation.ErrQuotaExceeded, "user=%s owns=%d quota=%d", item.UserID, owned, quota)
	}

	insertModel := allocationInsertModel{
		PublicID:       item.ID,
		UserID:         item.UserID,
		PlayerPublicID: item.PlayerID,
		DraftRound:     item.Round,
		DraftOrder:     item.Order,
		CreatedAt:      item.CreatedAt,
	}
	query, args, err := qb.InsertModel("allocations", insertModel, "")
	if err != nil {
		return errors.Wrap(err, "build insert allocation query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && isUniqueViolation(err) && pqErr.Constraint == activePlayerAllocationIndex {
			return errors.Wrapf(allocation.ErrAlreadyAllocated, "player=%s", item.PlayerID)
		}
		return errors.Wrapf(err, "insert allocation %s", item.ID)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit create allocation tx")
	}
	return nil
}

func (r *AllocationRepository) GetByID(ctx context.Context, allocationID string) (allocation.Allocation, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", allocationID))
}

func (r *AllocationRepository) GetByPlayer(ctx context.Context, playerID string) (allocation.Allocation, bool, error) {
	return r.getOne(ctx, qb.Eq("player_public_id", playerID))
}

func (r *AllocationRepository) getOne(ctx context.Context, cond qb.Condition) (allocation.Allocation, bool, error) {
	query, args, err := qb.Select(allocationSelectColumns...).From("allocations").
		Where(cond, qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return allocation.Allocation{}, false, errors.Wrap(err, "build get allocation query")
	}

	var row allocationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return allocation.Allocation{}, false, nil
		}
		return allocation.Allocation{}, false, errors.Wrap(err, "get allocation")
	}

	item, err := allocationFromRow(row)
	if err != nil {
		return allocation.Allocation{}, false, err
	}
	return item, true, nil
}

// Delete soft-deletes the row, which frees the player for the partial index.
func (r *AllocationRepository) Delete(ctx context.Context, allocationID string) (bool, error) {
	query, args, err := qb.Update("allocations").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", allocationID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete allocation query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "delete allocation %s", allocationID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "read affected rows")
	}
	return affected > 0, nil
}

func (r *AllocationRepository) ListByUser(ctx context.Context, userID string) ([]allocation.Allocation, error) {
	query, args, err := qb.Select(allocationSelectColumns...).From("allocations").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("draft_round", "draft_order", "public_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list allocations query")
	}

	var rows []allocationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list allocations for user=%s", userID)
	}

	out := make([]allocation.Allocation, 0, len(rows))
	for _, row := range rows {
		item, err := allocationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *AllocationRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("user_id").Distinct().From("allocations").
		Where(qb.IsNull("deleted_at")).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list allocation users query")
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, errors.Wrap(err, "list allocation users")
	}
	return out, nil
}

func allocationFromRow(row allocationTableModel) (allocation.Allocation, error) {
	item := allocation.Allocation{
		ID:        row.PublicID,
		UserID:    row.UserID,
		PlayerID:  row.PlayerPublicID,
		Round:     row.DraftRound,
		Order:     row.DraftOrder,
		CreatedAt: row.CreatedAt,
	}
	if err := validRow("allocation", item); err != nil {
		return allocation.Allocation{}, err
	}
	return item, nil
}
