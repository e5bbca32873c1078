package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo player pool into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return errors.Wrap(err, "count players for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, name, team_name, position, price, is_available)
VALUES (:public_id, :name, :team_name, :position, :price, :is_available)
ON CONFLICT (public_id) DO NOTHING`, playerInsertModel{
			PublicID:  p.ID,
			Name:      p.Name,
			TeamName:  p.TeamName,
			Position:  string(p.Position),
			Price:     p.Price,
			Available: p.Available,
		})
		if err != nil {
			return errors.Wrapf(err, "bind seed player %s query", p.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return errors.Wrapf(err, "seed player %s", p.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit seed tx")
	}
	return nil
}
