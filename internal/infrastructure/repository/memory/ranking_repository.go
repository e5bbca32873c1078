package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/ranking"
)

type seasonUserKey struct {
	userID string
	season string
}

type RankingRepository struct {
	mu       sync.RWMutex
	rankings map[userGameweekKey]ranking.GameweekRanking
	totals   map[seasonUserKey]ranking.SeasonTotal
}

func NewRankingRepository() *RankingRepository {
	return &RankingRepository{
		rankings: make(map[userGameweekKey]ranking.GameweekRanking),
		totals:   make(map[seasonUserKey]ranking.SeasonTotal),
	}
}

func (r *RankingRepository) ListByGameweek(_ context.Context, gameweek int, season string) ([]ranking.GameweekRanking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ranking.GameweekRanking, 0)
	for key, item := range r.rankings {
		if key.gameweek == gameweek && key.season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (r *RankingRepository) UpsertMany(_ context.Context, items []ranking.GameweekRanking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.rankings[userGameweekKey{userID: item.UserID, gameweek: item.Gameweek, season: item.Season}] = item
	}
	return nil
}

func (r *RankingRepository) ListByUserSeason(_ context.Context, userID, season string) ([]ranking.GameweekRanking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ranking.GameweekRanking, 0)
	for key, item := range r.rankings {
		if key.userID == userID && key.season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })
	return out, nil
}

func (r *RankingRepository) GetSeasonTotal(_ context.Context, userID, season string) (ranking.SeasonTotal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.totals[seasonUserKey{userID: userID, season: season}]
	return item, ok, nil
}

func (r *RankingRepository) UpsertSeasonTotal(_ context.Context, total ranking.SeasonTotal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totals[seasonUserKey{userID: total.UserID, season: total.Season}] = total
	return nil
}

func (r *RankingRepository) ListSeasonTotals(_ context.Context, season string) ([]ranking.SeasonTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ranking.SeasonTotal, 0)
	for key, item := range r.totals {
		if key.season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}
