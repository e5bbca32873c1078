package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
)

type userGameweekKey struct {
	userID   string
	gameweek int
	season   string
}

type ScoringRepository struct {
	mu        sync.RWMutex
	snapshots map[userGameweekKey]scoring.TeamSnapshot
	scores    map[userGameweekKey]scoring.UserGameweekScore
}

func NewScoringRepository() *ScoringRepository {
	return &ScoringRepository{
		snapshots: make(map[userGameweekKey]scoring.TeamSnapshot),
		scores:    make(map[userGameweekKey]scoring.UserGameweekScore),
	}
}

func (r *ScoringRepository) GetSnapshot(_ context.Context, userID string, gameweek int, season string) (scoring.TeamSnapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.snapshots[userGameweekKey{userID: userID, gameweek: gameweek, season: season}]
	if !ok {
		return scoring.TeamSnapshot{}, false, nil
	}
	return cloneSnapshot(item), true, nil
}

func (r *ScoringRepository) UpsertSnapshot(_ context.Context, snapshot scoring.TeamSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userGameweekKey{userID: snapshot.UserID, gameweek: snapshot.Gameweek, season: snapshot.Season}
	r.snapshots[key] = cloneSnapshot(snapshot)
	return nil
}

func (r *ScoringRepository) ListSnapshotsByUserSeason(_ context.Context, userID, season string) ([]scoring.TeamSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.TeamSnapshot, 0)
	for key, item := range r.snapshots {
		if key.userID == userID && key.season == season {
			out = append(out, cloneSnapshot(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })
	return out, nil
}

func (r *ScoringRepository) GetUserScore(_ context.Context, userID string, gameweek int, season string) (scoring.UserGameweekScore, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.scores[userGameweekKey{userID: userID, gameweek: gameweek, season: season}]
	return item, ok, nil
}

func (r *ScoringRepository) UpsertUserScore(_ context.Context, score scoring.UserGameweekScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scores[userGameweekKey{userID: score.UserID, gameweek: score.Gameweek, season: score.Season}] = score
	return nil
}

func (r *ScoringRepository) ListUserScoresByGameweek(_ context.Context, gameweek int, season string) ([]scoring.UserGameweekScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.UserGameweekScore, 0)
	for key, item := range r.scores {
		if key.gameweek == gameweek && key.season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *ScoringRepository) ListUserScoresByUserSeason(_ context.Context, userID, season string) ([]scoring.UserGameweekScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.UserGameweekScore, 0)
	for key, item := range r.scores {
		if key.userID == userID && key.season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })
	return out, nil
}

func cloneSnapshot(item scoring.TeamSnapshot) scoring.TeamSnapshot {
	copied := item
	copied.Picks = append([]scoring.SnapshotPick(nil), item.Picks...)
	return copied
}
