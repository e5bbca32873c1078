package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items []player.Player
	index map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := append([]player.Player(nil), players...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	index := make(map[string]player.Player, len(items))
	for _, p := range items {
		index[p.ID] = p
	}

	return &PlayerRepository{items: items, index: index}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]player.Player(nil), r.items...), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}
