package postgres

import "time"

type teamSnapshotTableModel struct {
	ID            int64      `db:"id"`
	UserID        string     `db:"user_id"`
	Gameweek      int        `db:"gameweek"`
	Season        string     `db:"season"`
	Picks         string     `db:"picks"`
	ChipUsed      string     `db:"chip_used"`
	TransfersMade int        `db:"transfers_made"`
	Source        string     `db:"source"`
	CapturedAt    time.Time  `db:"captured_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type teamSnapshotInsertModel struct {
	UserID        string    `db:"user_id"`
	Gameweek      int       `db:"gameweek"`
	Season        string    `db:"season"`
	Picks         string    `db:"picks"`
	ChipUsed      string    `db:"chip_used"`
	TransfersMade int       `db:"transfers_made"`
	Source        string    `db:"source"`
	CapturedAt    time.Time `db:"captured_at"`
}

type userGameweekScoreTableModel struct {
	ID                int64      `db:"id"`
	UserID            string     `db:"user_id"`
	Gameweek          int        `db:"gameweek"`
	Season            string     `db:"season"`
	TotalPoints       float64    `db:"total_points"`
	StartingPoints    float64    `db:"starting_points"`
	CaptainPoints     float64    `db:"captain_points"`
	ViceCaptainPoints float64    `db:"vice_captain_points"`
	BenchPoints       float64    `db:"bench_points"`
	ChipUsed          string     `db:"chip_used"`
	ChipPoints        float64    `db:"chip_points"`
	CalculatedAt      time.Time  `db:"calculated_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}

type userGameweekScoreInsertModel struct {
	UserID            string    `db:"user_id"`
	Gameweek          int       `db:"gameweek"`
	Season            string    `db:"season"`
	TotalPoints       float64   `db:"total_points"`
	StartingPoints    float64   `db:"starting_points"`
	CaptainPoints     float64   `db:"captain_points"`
	ViceCaptainPoints float64   `db:"vice_captain_points"`
	BenchPoints       float64   `db:"bench_points"`
	ChipUsed          string    `db:"chip_used"`
	ChipPoints        float64   `db:"chip_points"`
	CalculatedAt      time.Time `db:"calculated_at"`
}
