package postgres

import "time"

type performanceTableModel struct {
	ID             int64     `db:"id"`
	PlayerPublicID string    `db:"player_public_id"`
	Gameweek       int       `db:"gameweek"`
	Points         int       `db:"points"`
	Goals          int       `db:"goals"`
	Assists        int       `db:"assists"`
	CleanSheets    int       `db:"clean_sheets"`
	YellowCards    int       `db:"yellow_cards"`
	RedCards       int       `db:"red_cards"`
	Saves          int       `db:"saves"`
	Bonus          int       `db:"bonus"`
	Minutes        int       `db:"minutes_played"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
