package scoring

import "context"

type Repository interface {
	GetSnapshot(ctx context.Context, userID string, gameweek int, season string) (TeamSnapshot, bool, error)
	UpsertSnapshot(ctx context.Context, snapshot TeamSnapshot) error
	ListSnapshotsByUserSeason(ctx context.Context, userID, season string) ([]TeamSnapshot, error)

	GetUserScore(ctx context.Context, userID string, gameweek int, season string) (UserGameweekScore, bool, error)
	UpsertUserScore(ctx context.Context, score UserGameweekScore) error
	ListUserScoresByGameweek(ctx context.Context, gameweek int, season string) ([]UserGameweekScore, error)
	ListUserScoresByUserSeason(ctx context.Context, userID, season string) ([]UserGameweekScore, error)
}
