package ranking

import "time"

// GameweekRanking is one user's position in a gameweek table.
type GameweekRanking struct {
	Gameweek   int     `json:"gameweek" validate:"gt=0"`
	Season     string  `json:"season" validate:"notblank"`
	UserID     string  `json:"user_id" validate:"notblank"`
	Rank       int     `json:"rank" validate:"gt=0"`
	Points     float64 `json:"points" validate:"gte=0"`
	RankChange int     `json:"rank_change"`
}

// SeasonTotal is a materialized aggregation of a user's season.
type SeasonTotal struct {
	UserID               string    `json:"user_id" validate:"notblank"`
	Season               string    `json:"season" validate:"notblank"`
	TotalPoints          float64   `json:"total_points" validate:"gte=0"`
	GameweeksPlayed      int       `json:"gameweeks_played" validate:"gte=0"`
	AveragePoints        float64   `json:"average_points" validate:"gte=0"`
	BestRank             int       `json:"best_rank" validate:"gte=0"`
	WorstRank            int       `json:"worst_rank" validate:"gte=0"`
	HighestGameweekScore float64   `json:"highest_gameweek_score" validate:"gte=0"`
	LowestGameweekScore  float64   `json:"lowest_gameweek_score" validate:"gte=0"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// LeaderboardEntry is a season total with its read-time position.
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	SeasonTotal
}
