package postgres

import "time"

type gameweekRankingTableModel struct {
	ID         int64     `db:"id"`
	Gameweek   int       `db:"gameweek"`
	Season     string    `db:"season"`
	UserID     string    `db:"user_id"`
	Rank       int       `db:"rank"`
	Points     float64   `db:"points"`
	RankChange int       `db:"rank_change"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type gameweekRankingInsertModel struct {
	Gameweek   int     `db:"gameweek"`
	Season     string  `db:"season"`
	UserID     string  `db:"user_id"`
	Rank       int     `db:"rank"`
	Points     float64 `db:"points"`
	RankChange int     `db:"rank_change"`
}

type seasonTotalTableModel struct {
	ID                   int64     `db:"id"`
	UserID               string    `db:"user_id"`
	Season               string    `db:"season"`
	TotalPoints          float64   `db:"total_points"`
	GameweeksPlayed      int       `db:"gameweeks_played"`
	AveragePoints        float64   `db:"average_points"`
	BestRank             int       `db:"best_rank"`
	WorstRank            int       `db:"worst_rank"`
	HighestGameweekScore float64   `db:"highest_gameweek_score"`
	LowestGameweekScore  float64   `db:"lowest_gameweek_score"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type seasonTotalInsertModel struct {
	UserID               string    `db:"user_id"`
	Season               string    `db:"season"`
	TotalPoints          float64   `db:"total_points"`
	GameweeksPlayed      int       `db:"gameweeks_played"`
	AveragePoints        float64   `db:"average_points"`
	BestRank             int       `db:"best_rank"`
	WorstRank            int       `db:"worst_rank"`
	HighestGameweekScore float64   `db:"highest_gameweek_score"`
	LowestGameweekScore  float64   `db:"lowest_gameweek_score"`
	UpdatedAt            time.Time `db:"updated_at"`
}
