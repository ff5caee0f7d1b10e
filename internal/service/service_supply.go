package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/units"
	"github.com/avoronova/craft-stash/models"
)

// supplyService is the concrete implementation of SupplyService.
type supplyService struct {
	supplyRepository store.SupplyRepository
	logger           *logger.Logger
}

// NewSupplyService constructs a SupplyService wired to the given repository.
func NewSupplyService(supplyRepository store.SupplyRepository, logger *logger.Logger) SupplyService {
	return &supplyService{
		supplyRepository: supplyRepository,
		logger:           logger,
	}
}

// validateSupply enforces inventory invariants: name, category, and unit are
// required, the category and unit must be known, and the quantity must not
// be negative. Each violation is wrapped in ErrInvalidDataProvided so
// callers can match the whole family at once.
func validateSupply(supply models.Supply) error {
	if strings.TrimSpace(supply.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNameRequired)
	}
	if supply.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationCategoryRequired)
	}
	if !models.IsKnownCategory(supply.Category) {
		return fmt.Errorf("%w: %w %q", ErrInvalidDataProvided, ErrValidationUnknownCategory, supply.Category)
	}
	if strings.TrimSpace(supply.Unit) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationUnitRequired)
	}
	if !units.IsKnown(supply.Unit) {
		return fmt.Errorf("%w: %w %q", ErrInvalidDataProvided, ErrValidationUnknownUnit, supply.Unit)
	}
	if supply.Quantity < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNegativeQuantity)
	}
	if supply.MinQuantity < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNegativeQuantity)
	}
	return nil
}

// List returns one page of the user's supplies matching the query.
func (s *supplyService) List(ctx context.Context, userID int64, query models.SupplyQuery) (models.SupplyList, error) {
	log := logger.FromContext(ctx)
	query.Normalize()

	items, total, err := s.supplyRepository.ListSupplies(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("supply listing failed")
		return models.SupplyList{}, fmt.Errorf("supply listing failed: %w", err)
	}

	if items == nil {
		items = []models.Supply{}
	}

	return models.SupplyList{
		Items:    items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// Create validates and persists a new supply.
func (s *supplyService) Create(ctx context.Context, supply models.Supply) (models.Supply, error) {
	log := logger.FromContext(ctx)

	supply.Name = strings.TrimSpace(supply.Name)
	if err := validateSupply(supply); err != nil {
		log.Error().Err(err).Int64("user_id", supply.UserID).Msg("supply validation failed")
		return models.Supply{}, err
	}

	created, err := s.supplyRepository.CreateSupply(ctx, supply)
	if err != nil {
		log.Err(err).Int64("user_id", supply.UserID).Msg("supply creation failed")
		return models.Supply{}, fmt.Errorf("supply creation failed: %w", err)
	}

	return created, nil
}

// Get returns one supply.
func (s *supplyService) Get(ctx context.Context, userID, supplyID int64) (models.Supply, error) {
	supply, err := s.supplyRepository.GetSupply(ctx, userID, supplyID)
	if err != nil {
		return models.Supply{}, fmt.Errorf("supply lookup failed: %w", err)
	}

	return supply, nil
}

// Update validates and overwrites an existing supply.
func (s *supplyService) Update(ctx context.Context, supply models.Supply) (models.Supply, error) {
	log := logger.FromContext(ctx)

	supply.Name = strings.TrimSpace(supply.Name)
	if err := validateSupply(supply); err != nil {
		log.Error().Err(err).Int64("user_id", supply.UserID).Int64("id", supply.ID).Msg("supply validation failed")
		return models.Supply{}, err
	}

	updated, err := s.supplyRepository.UpdateSupply(ctx, supply)
	if err != nil {
		log.Err(err).Int64("user_id", supply.UserID).Int64("id", supply.ID).Msg("supply update failed")
		return models.Supply{}, fmt.Errorf("supply update failed: %w", err)
	}

	return updated, nil
}

// Delete removes one supply.
func (s *supplyService) Delete(ctx context.Context, userID, supplyID int64) error {
	if err := s.supplyRepository.DeleteSupply(ctx, userID, supplyID); err != nil {
		return fmt.Errorf("supply deletion failed: %w", err)
	}

	return nil
}
