package app

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

// DemoReport is what a full demo season run produces.
type DemoReport struct {
	Season      string                      `json:"season"`
	Seed        uint64                      `json:"seed"`
	Drafted     int                         `json:"drafted"`
	StartedAt   time.Time                   `json:"started_at"`
	Gameweeks   []usecase.GameweekRunResult `json:"gameweeks"`
	Leaderboard []ranking.LeaderboardEntry  `json:"leaderboard"`
}

// RunDemo drafts the users in snake order, fields their squads, starts the
// season and plays the configured number of gameweeks.
func (a *App) RunDemo(ctx context.Context, userIDs []string) (DemoReport, error) {
	cfg := a.Config
	report := DemoReport{Season: cfg.Season, Seed: cfg.SimSeed}

	drafted, err := a.Draft.SnakeDraft(ctx, usecase.SnakeDraftInput{
		UserIDs: userIDs,
		Rounds:  allocation.MaxPerUser,
	})
	if err != nil {
		return report, errors.Wrap(err, "snake draft")
	}
	report.Drafted = len(drafted)

	for _, userID := range userIDs {
		if _, err := a.Lineups.AutoPick(ctx, userID); err != nil {
			if errors.Is(err, usecase.ErrInvalidInput) {
				continue
			}
			return report, errors.Wrapf(err, "auto pick lineup user=%s", userID)
		}
	}

	state, err := a.Simulation.StartSimulation(ctx, usecase.StartSimulationInput{
		Season: cfg.Season,
		Seed:   cfg.SimSeed,
	})
	if err != nil {
		return report, errors.Wrap(err, "start simulation")
	}
	report.StartedAt = state.StartedAt

	for gw := 1; gw <= cfg.SimGameweeks; gw++ {
		result, next, err := a.Simulation.SimulateGameweek(ctx, state, usecase.SimulateGameweekInput{Gameweek: gw})
		if err != nil {
			return report, errors.Wrapf(err, "simulate gameweek %d", gw)
		}
		state = next
		report.Gameweeks = append(report.Gameweeks, result)
	}

	report.Leaderboard, err = a.Simulation.GetLeaderboard(ctx, cfg.Season)
	if err != nil {
		return report, errors.Wrap(err, "get leaderboard")
	}
	return report, nil
}
