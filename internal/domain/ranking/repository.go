package ranking

import "context"

type Repository interface {
	ListByGameweek(ctx context.Context, gameweek int, season string) ([]GameweekRanking, error)
	UpsertMany(ctx context.Context, items []GameweekRanking) error
	ListByUserSeason(ctx context.Context, userID, season string) ([]GameweekRanking, error)

	GetSeasonTotal(ctx context.Context, userID, season string) (SeasonTotal, bool, error)
	UpsertSeasonTotal(ctx context.Context, total SeasonTotal) error
	ListSeasonTotals(ctx context.Context, season string) ([]SeasonTotal, error)
}
