package performance

// PlayerGameweekPerformance is one player's raw stat line for a gameweek.
type PlayerGameweekPerformance struct {
	PlayerID    string `json:"player_id" validate:"notblank"`
	Gameweek    int    `json:"gameweek" validate:"gt=0"`
	Points      int    `json:"points" validate:"gte=0"`
	Goals       int    `json:"goals" validate:"gte=0"`
	Assists     int    `json:"assists" validate:"gte=0"`
	CleanSheets int    `json:"clean_sheets" validate:"gte=0"`
	YellowCards int    `json:"yellow_cards" validate:"gte=0"`
	RedCards    int    `json:"red_cards" validate:"gte=0"`
	Saves       int    `json:"saves" validate:"gte=0"`
	Bonus       int    `json:"bonus" validate:"gte=0"`
	Minutes     int    `json:"minutes" validate:"gte=0,lte=90"`
}
