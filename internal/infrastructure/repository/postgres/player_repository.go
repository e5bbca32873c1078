package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"team_name",
	"position",
	"price",
	"is_available",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players")
	}
	return playersFromRows(rows)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build get player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrapf(err, "get player %s", playerID)
	}

	item, err := playerFromRow(row)
	if err != nil {
		return player.Player{}, false, err
	}
	return item, true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.In("public_id", stringSliceToAny(playerIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players by ids query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players by ids")
	}
	return playersFromRows(rows)
}

// UpsertPlayers loads the pool supplied by the external data source.
func (r *PlayerRepository) UpsertPlayers(ctx context.Context, items []player.Player) error {
	if len(items) == 0 {
		return nil
	}

	insert := qb.InsertInto("players").
		Columns("public_id", "name", "team_name", "position", "price", "is_available")
	for _, item := range items {
		insert.Values(item.ID, item.Name, item.TeamName, string(item.Position), item.Price, item.Available)
	}
	query, args, err := insert.Suffix(`ON CONFLICT (public_id)
DO UPDATE SET
    name = EXCLUDED.name,
    team_name = EXCLUDED.team_name,
    position = EXCLUDED.position,
    price = EXCLUDED.price,
    is_available = EXCLUDED.is_available,
    updated_at = NOW(),
    deleted_at = NULL`).ToSQL()
	if err != nil {
		return errors.Wrap(err, "build upsert players query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "upsert players")
	}
	return nil
}

func playersFromRows(rows []playerTableModel) ([]player.Player, error) {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	item := player.Player{
		ID:        row.PublicID,
		Name:      row.Name,
		TeamName:  row.TeamName,
		Position:  player.Position(row.Position),
		Price:     row.Price,
		Available: row.Available,
	}
	if err := validRow("player", item); err != nil {
		return player.Player{}, err
	}
	return item, nil
}
