package performance

import "context"

type Repository interface {
	// GetMany returns the stored rows for the given players in one gameweek.
	// Players without a row are omitted.
	GetMany(ctx context.Context, gameweek int, playerIDs []string) ([]PlayerGameweekPerformance, error)
	UpsertMany(ctx context.Context, items []PlayerGameweekPerformance) error
	ListByGameweek(ctx context.Context, gameweek int) ([]PlayerGameweekPerformance, error)
	// List returns every stored row ordered by gameweek then player.
	List(ctx context.Context) ([]PlayerGameweekPerformance, error)
}
