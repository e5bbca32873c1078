package postgres

import (
	"time"

	"github.com/lib/pq"
)

type lineupTableModel struct {
	ID              int64          `db:"id"`
	UserID          string         `db:"user_id"`
	ActivePlayerIDs pq.StringArray `db:"active_player_ids"`
	BenchPlayerID   string         `db:"bench_player_public_id"`
	CaptainID       string         `db:"captain_player_public_id"`
	ViceCaptainID   string         `db:"vice_captain_player_public_id"`
	ActiveChip      string         `db:"active_chip"`
	TransfersMade   int            `db:"transfers_made"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}

type lineupInsertModel struct {
	UserID          string         `db:"user_id"`
	ActivePlayerIDs pq.StringArray `db:"active_player_ids"`
	BenchPlayerID   string         `db:"bench_player_public_id"`
	CaptainID       string         `db:"captain_player_public_id"`
	ViceCaptainID   string         `db:"vice_captain_player_public_id"`
	ActiveChip      string         `db:"active_chip"`
	TransfersMade   int            `db:"transfers_made"`
}
