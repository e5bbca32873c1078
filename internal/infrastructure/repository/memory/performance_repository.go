package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
)

type performanceKey struct {
	playerID string
	gameweek int
}

type PerformanceRepository struct {
	mu    sync.RWMutex
	items map[performanceKey]performance.PlayerGameweekPerformance
}

func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{items: make(map[performanceKey]performance.PlayerGameweekPerformance)}
}

func (r *PerformanceRepository) GetMany(_ context.Context, gameweek int, playerIDs []string) ([]performance.PlayerGameweekPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]performance.PlayerGameweekPerformance, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, playerID := range playerIDs {
		if _, dup := seen[playerID]; dup {
			continue
		}
		seen[playerID] = struct{}{}
		if item, ok := r.items[performanceKey{playerID: playerID, gameweek: gameweek}]; ok {
			out = append(out, item)
		}
	}
	sortPerformances(out)
	return out, nil
}

func (r *PerformanceRepository) UpsertMany(_ context.Context, items []performance.PlayerGameweekPerformance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.items[performanceKey{playerID: item.PlayerID, gameweek: item.Gameweek}] = item
	}
	return nil
}

func (r *PerformanceRepository) ListByGameweek(_ context.Context, gameweek int) ([]performance.PlayerGameweekPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]performance.PlayerGameweekPerformance, 0)
	for key, item := range r.items {
		if key.gameweek == gameweek {
			out = append(out, item)
		}
	}
	sortPerformances(out)
	return out, nil
}

func (r *PerformanceRepository) List(_ context.Context) ([]performance.PlayerGameweekPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]performance.PlayerGameweekPerformance, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sortPerformances(out)
	return out, nil
}

func sortPerformances(items []performance.PlayerGameweekPerformance) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Gameweek != items[j].Gameweek {
			return items[i].Gameweek < items[j].Gameweek
		}
		return items[i].PlayerID < items[j].PlayerID
	})
}
