package lineup

import "context"

// Repository exposes live lineup persistence operations.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (Lineup, bool, error)
	List(ctx context.Context) ([]Lineup, error)
	Upsert(ctx context.Context, item Lineup) error
	// RemovePlayer strips the player from the user's lineup, if any.
	RemovePlayer(ctx context.Context, userID, playerID string) error
}
