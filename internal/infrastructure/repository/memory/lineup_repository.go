package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
)

type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Lineup
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{items: make(map[string]lineup.Lineup)}
}

func (r *LineupRepository) GetByUser(_ context.Context, userID string) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	if !ok {
		return lineup.Lineup{}, false, nil
	}

	return cloneLineup(item), true, nil
}

func (r *LineupRepository) List(_ context.Context) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Lineup, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneLineup(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *LineupRepository) Upsert(_ context.Context, item lineup.Lineup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.UserID] = cloneLineup(item)
	return nil
}

func (r *LineupRepository) RemovePlayer(_ context.Context, userID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[userID]
	if !ok {
		return nil
	}
	r.items[userID] = item.WithoutPlayer(playerID)
	return nil
}

func cloneLineup(item lineup.Lineup) lineup.Lineup {
	copied := item
	copied.ActivePlayerIDs = append([]string(nil), item.ActivePlayerIDs...)
	return copied
}
