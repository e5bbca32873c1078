package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/validation"
)

type SnakeDraftInput struct {
	UserIDs []string `validate:"min=1,dive,notblank"`
	Rounds  int      `validate:"gte=1"`
}

// DraftService runs a snake draft on top of the allocation ledger.
type DraftService struct {
	playerRepo  player.Repository
	allocations *AllocationService
	logger      *logging.Logger
}

func NewDraftService(playerRepo player.Repository, allocations *AllocationService, logger *logging.Logger) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftService{
		playerRepo:  playerRepo,
		allocations: allocations,
		logger:      logger,
	}
}

// SnakeDraft lets each user take the most valuable free player in turn,
// reversing the order every round. Players already allocated elsewhere are
// passed over and users at quota sit out the rest of the draft.
func (s *DraftService) SnakeDraft(ctx context.Context, input SnakeDraftInput) ([]allocation.Allocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SnakeDraft")
	defer span.End()

	userIDs := make([]string, 0, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		userIDs = append(userIDs, strings.TrimSpace(userID))
	}
	input.UserIDs = userIDs
	if err := validation.Struct(input); err != nil {
		return nil, invalidInput("snake draft: %s", validation.Describe(err))
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, dependencyErr(err, "list players")
	}
	pool := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.Available {
			pool = append(pool, p)
		}
	}
	sortPlayersByValue(pool)

	out := make([]allocation.Allocation, 0, len(userIDs)*input.Rounds)
	full := make(map[string]bool, len(userIDs))
	cursor := 0
	pick := 0
	for round := 1; round <= input.Rounds; round++ {
		order := slices.Clone(userIDs)
		if round%2 == 0 {
			slices.Reverse(order)
		}

		for _, userID := range order {
			if full[userID] {
				continue
			}
			for cursor < len(pool) {
				candidate := pool[cursor]
				cursor++

				item, err := s.allocations.Allocate(ctx, AllocateInput{
					UserID:   userID,
					PlayerID: candidate.ID,
					Round:    round,
					Order:    pick,
				})
				switch {
				case err == nil:
					out = append(out, item)
					pick++
				case errors.Is(err, allocation.ErrAlreadyAllocated):
					continue
				case errors.Is(err, allocation.ErrQuotaExceeded):
					full[userID] = true
					cursor--
				default:
					return out, err
				}
				break
			}
		}
	}

	s.logger.InfoContext(ctx, "snake draft completed",
		"users", len(userIDs),
		"rounds", input.Rounds,
		"allocations", len(out),
	)
	return out, nil
}
