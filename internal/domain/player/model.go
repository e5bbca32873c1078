package player

import (
	"fmt"
	"strings"
)

// Position represents football position categories used in fantasy rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// ParsePosition accepts the short codes case-insensitively.
func ParsePosition(raw string) (Position, error) {
	pos := Position(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := AllPositions[pos]; !ok {
		return "", fmt.Errorf("unknown player position %q", raw)
	}
	return pos, nil
}

// Player is a draftable athlete. The pool is owned by the external data
// source and does not change within a gameweek cycle.
type Player struct {
	ID        string   `validate:"notblank"`
	Name      string   `validate:"notblank"`
	TeamName  string
	Position  Position `validate:"oneof=GK DEF MID FWD"`
	Price     int64    `validate:"gte=0"`
	Available bool
}
