package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/validation"
)

// autoPickActiveSize leaves one allocated player for the bench.
const autoPickActiveSize = allocation.MaxPerUser - 1

type SaveLineupInput struct {
	UserID          string   `validate:"notblank"`
	ActivePlayerIDs []string `validate:"min=1,dive,notblank"`
	BenchPlayerID   string
	CaptainID       string
	ViceCaptainID   string
	ActiveChip      lineup.Chip `validate:"omitempty,oneof=wildcard free_hit bench_boost triple_captain"`
}

// LineupService is the minimal team management surface: it fields players
// the user owns in the ledger.
type LineupService struct {
	playerRepo     player.Repository
	allocationRepo allocation.Repository
	lineupRepo     lineup.Repository
	logger         *logging.Logger
	now            func() time.Time
}

func NewLineupService(
	playerRepo player.Repository,
	allocationRepo allocation.Repository,
	lineupRepo lineup.Repository,
	logger *logging.Logger,
) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		playerRepo:     playerRepo,
		allocationRepo: allocationRepo,
		lineupRepo:     lineupRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *LineupService) Get(ctx context.Context, userID string) (lineup.Lineup, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return lineup.Lineup{}, false, invalidInput("user_id is required")
	}

	item, exists, err := s.lineupRepo.GetByUser(ctx, userID)
	if err != nil {
		return lineup.Lineup{}, false, dependencyErr(err, "get lineup user=%s", userID)
	}
	return item, exists, nil
}

// Save replaces the user's live lineup. Every fielded player must be
// allocated to the user; transfers count players new to the lineup.
func (s *LineupService) Save(ctx context.Context, input SaveLineupInput) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.BenchPlayerID = strings.TrimSpace(input.BenchPlayerID)
	input.CaptainID = strings.TrimSpace(input.CaptainID)
	input.ViceCaptainID = strings.TrimSpace(input.ViceCaptainID)
	for i := range input.ActivePlayerIDs {
		input.ActivePlayerIDs[i] = strings.TrimSpace(input.ActivePlayerIDs[i])
	}
	if err := validation.Struct(input); err != nil {
		return lineup.Lineup{}, invalidInput("save lineup: %s", validation.Describe(err))
	}

	item := lineup.Lineup{
		UserID:          input.UserID,
		ActivePlayerIDs: append([]string(nil), input.ActivePlayerIDs...),
		BenchPlayerID:   input.BenchPlayerID,
		CaptainID:       input.CaptainID,
		ViceCaptainID:   input.ViceCaptainID,
		ActiveChip:      input.ActiveChip,
	}
	if err := item.Validate(); err != nil {
		return lineup.Lineup{}, invalidInput("save lineup: %v", err)
	}

	activeSet := make(map[string]struct{}, len(item.ActivePlayerIDs))
	for _, playerID := range item.ActivePlayerIDs {
		activeSet[playerID] = struct{}{}
	}
	if _, ok := activeSet[item.CaptainID]; item.CaptainID != "" && !ok {
		return lineup.Lineup{}, invalidInput("captain must be an active player")
	}
	if _, ok := activeSet[item.ViceCaptainID]; item.ViceCaptainID != "" && !ok {
		return lineup.Lineup{}, invalidInput("vice captain must be an active player")
	}

	owned, err := s.allocationRepo.ListByUser(ctx, item.UserID)
	if err != nil {
		return lineup.Lineup{}, dependencyErr(err, "list allocations user=%s", item.UserID)
	}
	ownedSet := make(map[string]struct{}, len(owned))
	for _, a := range owned {
		ownedSet[a.PlayerID] = struct{}{}
	}
	for _, playerID := range item.PlayerIDs() {
		if _, ok := ownedSet[playerID]; !ok {
			return lineup.Lineup{}, invalidInput("player %s is not allocated to user %s", playerID, item.UserID)
		}
	}

	existing, exists, err := s.lineupRepo.GetByUser(ctx, item.UserID)
	if err != nil {
		return lineup.Lineup{}, dependencyErr(err, "get lineup user=%s", item.UserID)
	}
	if exists {
		item.TransfersMade = existing.TransfersMade + countTransfers(existing, item)
	}
	item.UpdatedAt = s.now().UTC()

	if err := s.lineupRepo.Upsert(ctx, item); err != nil {
		return lineup.Lineup{}, dependencyErr(err, "save lineup user=%s", item.UserID)
	}

	s.logger.DebugContext(ctx, "lineup saved",
		"user_id", item.UserID,
		"players", len(item.PlayerIDs()),
		"transfers_made", item.TransfersMade,
	)
	return item, nil
}

// AutoPick fields the user's allocated players by price: the most expensive
// starts as captain, the next as vice-captain and the cheapest sits on the
// bench once the active slots are full.
func (s *LineupService) AutoPick(ctx context.Context, userID string) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.AutoPick")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return lineup.Lineup{}, invalidInput("user_id is required")
	}

	owned, err := s.allocationRepo.ListByUser(ctx, userID)
	if err != nil {
		return lineup.Lineup{}, dependencyErr(err, "list allocations user=%s", userID)
	}
	if len(owned) == 0 {
		return lineup.Lineup{}, invalidInput("user %s has no allocated players", userID)
	}

	playerIDs := make([]string, 0, len(owned))
	for _, a := range owned {
		playerIDs = append(playerIDs, a.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return lineup.Lineup{}, dependencyErr(err, "get players for user=%s", userID)
	}
	if len(players) == 0 {
		return lineup.Lineup{}, invalidInput("user %s has no available allocated players", userID)
	}
	sortPlayersByValue(players)

	input := SaveLineupInput{UserID: userID}
	for idx, p := range players {
		if idx < autoPickActiveSize {
			input.ActivePlayerIDs = append(input.ActivePlayerIDs, p.ID)
			continue
		}
		input.BenchPlayerID = p.ID
	}
	input.CaptainID = input.ActivePlayerIDs[0]
	if len(input.ActivePlayerIDs) > 1 {
		input.ViceCaptainID = input.ActivePlayerIDs[1]
	}

	return s.Save(ctx, input)
}

func countTransfers(before, after lineup.Lineup) int {
	previous := make(map[string]struct{}, len(before.PlayerIDs()))
	for _, playerID := range before.PlayerIDs() {
		previous[playerID] = struct{}{}
	}
	count := 0
	for _, playerID := range after.PlayerIDs() {
		if _, ok := previous[playerID]; !ok {
			count++
		}
	}
	return count
}

// sortPlayersByValue orders by price desc, then id asc.
func sortPlayersByValue(players []player.Player) {
	sort.Slice(players, func(i, j int) bool {
		if players[i].Price != players[j].Price {
			return players[i].Price > players[j].Price
		}
		return players[i].ID < players[j].ID
	})
}
