package allocation

import "context"

// Repository is the ledger store. Create must check exclusivity and quota
// atomically with the insert and report ErrAlreadyAllocated or
// ErrQuotaExceeded without writing anything.
type Repository interface {
	Create(ctx context.Context, item Allocation, quota int) error
	GetByID(ctx context.Context, allocationID string) (Allocation, bool, error)
	Delete(ctx context.Context, allocationID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]Allocation, error)
	GetByPlayer(ctx context.Context, playerID string) (Allocation, bool, error)
	ListUserIDs(ctx context.Context) ([]string, error)
}
