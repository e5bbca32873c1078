package simulation

import "time"

// State is the simulation status. It is passed into and returned from each
// orchestration call instead of living in a shared row.
type State struct {
	Active          bool
	Season          string
	Seed            uint64
	CurrentGameweek int
	StartedAt       time.Time
	LastRunAt       time.Time
}

// Advance records a completed gameweek run.
func (s State) Advance(gameweek int, now time.Time) State {
	next := s
	if gameweek > next.CurrentGameweek {
		next.CurrentGameweek = gameweek
	}
	next.LastRunAt = now
	return next
}
