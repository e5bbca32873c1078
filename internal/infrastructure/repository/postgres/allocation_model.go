package postgres

import "time"

type allocationTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	UserID         string     `db:"user_id"`
	PlayerPublicID string     `db:"player_public_id"`
	DraftRound     int        `db:"draft_round"`
	DraftOrder     int        `db:"draft_order"`
	CreatedAt      time.Time  `db:"created_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type allocationInsertModel struct {
	PublicID       string    `db:"public_id"`
	UserID         string    `db:"user_id"`
	PlayerPublicID string    `db:"player_public_id"`
	DraftRound     int       `db:"draft_round"`
	DraftOrder     int       `db:"draft_order"`
	CreatedAt      time.Time `db:"created_at"`
}
