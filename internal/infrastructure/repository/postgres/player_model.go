package postgres

import "time"

type playerTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	TeamName  string     `db:"team_name"`
	Position  string     `db:"position"`
	Price     int64      `db:"price"`
	Available bool       `db:"is_available"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID  string `db:"public_id"`
	Name      string `db:"name"`
	TeamName  string `db:"team_name"`
	Position  string `db:"position"`
	Price     int64  `db:"price"`
	Available bool   `db:"is_available"`
}
