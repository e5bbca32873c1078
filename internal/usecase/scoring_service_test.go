package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	performancemock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/performance"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedScenarioSnapshot(t *testing.T, repo scoring.Repository, chip lineup.Chip) {
	t.Helper()

	err := repo.UpsertSnapshot(t.Context(), scoring.TeamSnapshot{
		UserID:   "user-andi",
		Gameweek: 3,
		Season:   testSeason,
		Picks: []scoring.SnapshotPick{
			{PlayerID: "A", IsCaptain: true},
			{PlayerID: "B", IsViceCaptain: true},
			{PlayerID: "C"},
			{PlayerID: "D"},
			{PlayerID: "E"},
		},
		ChipUsed: chip,
		Source:   scoring.SourceCaptured,
	})
	require.NoError(t, err)
}

func seedScenarioPerformances(t *testing.T, repo performance.Repository) {
	t.Helper()

	err := repo.UpsertMany(t.Context(), []performance.PlayerGameweekPerformance{
		{PlayerID: "A", Gameweek: 3, Points: 10, Minutes: 90},
		{PlayerID: "B", Gameweek: 3, Points: 6, Minutes: 90},
		{PlayerID: "C", Gameweek: 3, Points: 2, Minutes: 90},
		{PlayerID: "D", Gameweek: 3, Points: 5, Minutes: 90},
		{PlayerID: "E", Gameweek: 3, Points: 3, Minutes: 90},
		{PlayerID: "X", Gameweek: 3, Points: 12, Minutes: 90},
	})
	require.NoError(t, err)
}

func TestScoringService_ScoreGameweek_CaptainAndVice(t *testing.T) {
	env := newTestEnv(t)
	seedScenarioSnapshot(t, env.scores, "")
	seedScenarioPerformances(t, env.performances)

	score, err := env.scoringSvc.ScoreGameweek(t.Context(), ScoreInput{UserID: "user-andi", Gameweek: 3, Season: testSeason})
	require.NoError(t, err)
	require.Equal(t, 26.0, score.StartingPoints)
	require.Equal(t, 39.0, score.TotalPoints)
	require.Equal(t, 20.0, score.CaptainPoints)
	require.Equal(t, 9.0, score.ViceCaptainPoints)
	require.True(t, score.CalculatedAt.Equal(testNow))
}

func TestScoringService_ScoreGameweek_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	seedScenarioSnapshot(t, env.scores, lineup.ChipTripleCaptain)
	seedScenarioPerformances(t, env.performances)

	input := ScoreInput{UserID: "user-andi", Gameweek: 3, Season: testSeason}
	first, err := env.scoringSvc.ScoreGameweek(t.Context(), input)
	require.NoError(t, err)
	second, err := env.scoringSvc.ScoreGameweek(t.Context(), input)
	require.NoError(t, err)
	require.Equal(t, first, second)

	stored, exists, err := env.scores.GetUserScore(t.Context(), "user-andi", 3, testSeason)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, first, stored)
	require.Equal(t, 26.0+20+3, stored.TotalPoints)
	require.Equal(t, 10.0, stored.ChipPoints)
	require.Equal(t, lineup.ChipTripleCaptain, stored.ChipUsed)

	rows, err := env.scores.ListUserScoresByUserSeason(t.Context(), "user-andi", testSeason)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestScoringService_ScoreGameweek_RerunKeepsStoredRow(t *testing.T) {
	env := newTestEnv(t)
	seedScenarioSnapshot(t, env.scores, "")
	seedScenarioPerformances(t, env.performances)

	input := ScoreInput{UserID: "user-andi", Gameweek: 3, Season: testSeason}
	first, err := env.scoringSvc.ScoreGameweek(t.Context(), input)
	require.NoError(t, err)

	later := testNow.Add(6 * time.Hour)
	env.scoringSvc.now = func() time.Time { return later }

	second, err := env.scoringSvc.ScoreGameweek(t.Context(), input)
	require.NoError(t, err)
	require.Equal(t, first, second)

	stored, exists, err := env.scores.GetUserScore(t.Context(), "user-andi", 3, testSeason)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, first, stored)
	require.True(t, stored.CalculatedAt.Equal(testNow))

	require.NoError(t, env.performances.UpsertMany(t.Context(), []performance.PlayerGameweekPerformance{
		{PlayerID: "C", Gameweek: 3, Points: 7, Minutes: 90},
	}))
	third, err := env.scoringSvc.ScoreGameweek(t.Context(), input)
	require.NoError(t, err)
	require.Equal(t, 44.0, third.TotalPoints)
	require.True(t, third.CalculatedAt.Equal(later))

	stored, _, err = env.scores.GetUserScore(t.Context(), "user-andi", 3, testSeason)
	require.NoError(t, err)
	require.Equal(t, third, stored)
}

func TestScoringService_ScoreGameweek_FreeHitOverride(t *testing.T) {
	env := newTestEnv(t)
	seedScenarioSnapshot(t, env.scores, lineup.ChipFreeHit)
	seedScenarioPerformances(t, env.performances)

	override := lineup.Lineup{ActivePlayerIDs: []string{"X", "C"}, CaptainID: "X"}
	score, err := env.scoringSvc.ScoreGameweek(t.Context(), ScoreInput{
		UserID:        "user-andi",
		Gameweek:      3,
		Season:        testSeason,
		FreeHitLineup: &override,
	})
	require.NoError(t, err)
	require.Equal(t, 14.0, score.StartingPoints)
	require.Equal(t, 26.0, score.TotalPoints)

	snapshot, _, err := env.scores.GetSnapshot(t.Context(), "user-andi", 3, testSeason)
	require.NoError(t, err)
	require.Len(t, snapshot.Picks, 5)
	require.Equal(t, "A", snapshot.Picks[0].PlayerID)
}

func TestScoringService_ScoreGameweek_FreeHitIgnoredWithoutChip(t *testing.T) {
	env := newTestEnv(t)
	seedScenarioSnapshot(t, env.scores, "")
	seedScenarioPerformances(t, env.performances)

	override := lineup.Lineup{ActivePlayerIDs: []string{"X"}, CaptainID: "X"}
	score, err := env.scoringSvc.ScoreGameweek(t.Context(), ScoreInput{
		UserID:        "user-andi",
		Gameweek:      3,
		Season:        testSeason,
		FreeHitLineup: &override,
	})
	require.NoError(t, err)
	require.Equal(t, 39.0, score.TotalPoints)
}

func TestScoringService_ScoreGameweek_MissingPerformanceIsZero(t *testing.T) {
	env := newTestEnv(t)
	seedScenarioSnapshot(t, env.scores, "")

	score, err := env.scoringSvc.ScoreGameweek(t.Context(), ScoreInput{UserID: "user-andi", Gameweek: 3, Season: testSeason})
	require.NoError(t, err)
	require.Zero(t, score.TotalPoints)
}

func TestScoringService_ScoreGameweek_NoTeamIsSkippable(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.scoringSvc.ScoreGameweek(t.Context(), ScoreInput{UserID: "user-ghost", Gameweek: 3, Season: testSeason})
	requireErrorIs(t, err, ErrSkippableUserState)
	requireErrorIs(t, err, scoring.ErrNoSnapshotAndNoLiveTeam)
}

func TestScoringService_ScoreGameweek_PerformanceStoreDownUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scores := memory.NewScoringRepository()
	lineups := memory.NewLineupRepository()
	performanceRepo := performancemock.NewRepository(t)
	logger := logging.NewNop()

	snapshots := NewSnapshotService(lineups, scores, logger)
	svc := NewScoringService(snapshots, performanceRepo, scores, logger)
	svc.now = func() time.Time { return testNow }
	seedScenarioSnapshot(t, scores, "")

	performanceRepo.
		On("GetMany", mock.MatchedBy(func(v context.Context) bool { return v != nil }), 3, []string{"A", "B", "C", "D", "E"}).
		Return(nil, errors.New("timeout")).
		Once()

	_, err := svc.ScoreGameweek(ctx, ScoreInput{UserID: "user-andi", Gameweek: 3, Season: testSeason})
	requireErrorIs(t, err, ErrDependencyUnavailable)

	_, exists, err := scores.GetUserScore(ctx, "user-andi", 3, testSeason)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestScoringService_ScoreGameweek_FetchesPerformancesInOneCall(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scores := memory.NewScoringRepository()
	lineups := memory.NewLineupRepository()
	performanceRepo := performancemock.NewRepository(t)
	logger := logging.NewNop()

	snapshots := NewSnapshotService(lineups, scores, logger)
	svc := NewScoringService(snapshots, performanceRepo, scores, logger)
	svc.now = func() time.Time { return testNow }
	seedScenarioSnapshot(t, scores, "")

	performanceRepo.
		On("GetMany", mock.Anything, 3, []string{"A", "B", "C", "D", "E"}).
		Return([]performance.PlayerGameweekPerformance{
			{PlayerID: "A", Gameweek: 3, Points: 10},
			{PlayerID: "B", Gameweek: 3, Points: 6},
			{PlayerID: "D", Gameweek: 3, Points: 5},
		}, nil).
		Once()

	score, err := svc.ScoreGameweek(ctx, ScoreInput{UserID: "user-andi", Gameweek: 3, Season: testSeason})
	require.NoError(t, err)
	require.Equal(t, 21.0, score.StartingPoints)
	require.Equal(t, 20.0, score.CaptainPoints)
	performanceRepo.AssertNumberOfCalls(t, "GetMany", 1)
}
