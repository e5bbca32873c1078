package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
)

type AllocationRepository struct {
	mu       sync.RWMutex
	byID     map[string]allocation.Allocation
	byPlayer map[string]string
}

func NewAllocationRepository() *AllocationRepository {
	return &AllocationRepository{
		byID:     make(map[string]allocation.Allocation),
		byPlayer: make(map[string]string),
	}
}

func (r *AllocationRepository) Create(_ context.Context, item allocation.Allocation, quota int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existingID, taken := r.byPlayer[item.PlayerID]; taken {
		return errors.Wrapf(allocation.ErrAlreadyAllocated, "player=%s allocation=%s", item.PlayerID, existingID)
	}
	owned := 0
	for _, existing := range r.byID {
		if existing.UserID == item.UserID {
			owned++
		}
	}
	if owned >= quota {
		return errors.Wrapf(allocation.ErrQuotaExceeded, "user=%s owns=%d quota=%d", item.UserID, owned, quota)
	}
	if _, dup := r.byID[item.ID]; dup {
		return errors.Newf("allocation id %s already exists", item.ID)
	}

	r.byID[item.ID] = item
	r.byPlayer[item.PlayerID] = item.ID
	return nil
}

func (r *AllocationRepository) GetByID(_ context.Context, allocationID string) (allocation.Allocation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[allocationID]
	return item, ok, nil
}

func (r *AllocationRepository) Delete(_ context.Context, allocationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[allocationID]
	if !ok {
		return false, nil
	}
	delete(r.byID, allocationID)
	delete(r.byPlayer, item.PlayerID)
	return true, nil
}

func (r *AllocationRepository) ListByUser(_ context.Context, userID string) ([]allocation.Allocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]allocation.Allocation, 0, allocation.MaxPerUser)
	for _, item := range r.byID {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sortAllocations(out)
	return out, nil
}

func (r *AllocationRepository) GetByPlayer(_ context.Context, playerID string) (allocation.Allocation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPlayer[playerID]
	if !ok {
		return allocation.Allocation{}, false, nil
	}
	return r.byID[id], true, nil
}

func (r *AllocationRepository) ListUserIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range r.byID {
		if _, ok := seen[item.UserID]; ok {
			continue
		}
		seen[item.UserID] = struct{}{}
		out = append(out, item.UserID)
	}
	sort.Strings(out)
	return out, nil
}

func sortAllocations(items []allocation.Allocation) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Round != items[j].Round {
			return items[i].Round < items[j].Round
		}
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
}
