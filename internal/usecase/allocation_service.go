package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/allocation"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/validation"
)

type AllocateInput struct {
	UserID   string `validate:"notblank"`
	PlayerID string `validate:"notblank"`
	Round    int    `validate:"gte=0"`
	Order    int    `validate:"gte=0"`
}

type AllocationService struct {
	playerRepo     player.Repository
	allocationRepo allocation.Repository
	lineupRepo     lineup.Repository
	idGen          id.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewAllocationService(
	playerRepo player.Repository,
	allocationRepo allocation.Repository,
	lineupRepo lineup.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *AllocationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AllocationService{
		playerRepo:     playerRepo,
		allocationRepo: allocationRepo,
		lineupRepo:     lineupRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// Allocate hands a player to a user. The repository checks exclusivity and
// the quota atomically with the insert.
func (s *AllocationService) Allocate(ctx context.Context, input AllocateInput) (allocation.Allocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AllocationService.Allocate")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if err := validation.Struct(input); err != nil {
		return allocation.Allocation{}, invalidInput("allocate: %s", validation.Describe(err))
	}

	p, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return allocation.Allocation{}, dependencyErr(err, "get player %s", input.PlayerID)
	}
	if !exists {
		return allocation.Allocation{}, notFound("player %s not found", input.PlayerID)
	}
	if !p.Available {
		return allocation.Allocation{}, invalidInput("player %s is not available for the draft", input.PlayerID)
	}

	allocationID, err := s.idGen.NewID()
	if err != nil {
		return allocation.Allocation{}, errors.Wrap(err, "generate allocation id")
	}

	item := allocation.Allocation{
		ID:        allocationID,
		UserID:    input.UserID,
		PlayerID:  input.PlayerID,
		Round:     input.Round,
		Order:     input.Order,
		CreatedAt: s.now().UTC(),
	}
	if err := s.allocationRepo.Create(ctx, item, allocation.MaxPerUser); err != nil {
		if errors.Is(err, allocation.ErrAlreadyAllocated) || errors.Is(err, allocation.ErrQuotaExceeded) {
			return allocation.Allocation{}, errors.Mark(err, ErrConflict)
		}
		return allocation.Allocation{}, dependencyErr(err, "create allocation user=%s player=%s", input.UserID, input.PlayerID)
	}

	s.logger.InfoContext(ctx, "player allocated",
		"allocation_id", item.ID,
		"user_id", item.UserID,
		"player_id", item.PlayerID,
		"round", item.Round,
		"order", item.Order,
	)
	return item, nil
}

// Deallocate removes an allocation and strips the player from the owner's
// live lineup. The lineup goes first so a failed call can be retried.
func (s *AllocationService) Deallocate(ctx context.Context, allocationID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AllocationService.Deallocate")
	defer span.End()

	allocationID = strings.TrimSpace(allocationID)
	if allocationID == "" {
		return invalidInput("allocation_id is required")
	}

	item, exists, err := s.allocationRepo.GetByID(ctx, allocationID)
	if err != nil {
		return dependencyErr(err, "get allocation %s", allocationID)
	}
	if !exists {
		return notFound("allocation %s not found", allocationID)
	}

	if err := s.lineupRepo.RemovePlayer(ctx, item.UserID, item.PlayerID); err != nil {
		return dependencyErr(err, "remove player %s from lineup of %s", item.PlayerID, item.UserID)
	}

	deleted, err := s.allocationRepo.Delete(ctx, allocationID)
	if err != nil {
		return dependencyErr(err, "delete allocation %s", allocationID)
	}
	if !deleted {
		return notFound("allocation %s not found", allocationID)
	}

	s.logger.InfoContext(ctx, "player deallocated",
		"allocation_id", item.ID,
		"user_id", item.UserID,
		"player_id", item.PlayerID,
	)
	return nil
}

func (s *AllocationService) AllocationsFor(ctx context.Context, userID string) ([]allocation.Allocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AllocationService.AllocationsFor")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidInput("user_id is required")
	}

	items, err := s.allocationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dependencyErr(err, "list allocations for %s", userID)
	}
	return items, nil
}

// OwnerOf returns the user holding the player, or false when nobody does.
func (s *AllocationService) OwnerOf(ctx context.Context, playerID string) (string, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AllocationService.OwnerOf")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return "", false, invalidInput("player_id is required")
	}

	item, exists, err := s.allocationRepo.GetByPlayer(ctx, playerID)
	if err != nil {
		return "", false, dependencyErr(err, "get allocation for player %s", playerID)
	}
	if !exists {
		return "", false, nil
	}
	return item.UserID, true, nil
}
