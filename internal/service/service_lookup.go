package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/models"
)

// lookupService resolves barcodes against the seeded product catalog.
type lookupService struct {
	catalogRepository store.CatalogRepository
	logger            *logger.Logger
}

// NewLookupService constructs a LookupService over the catalog repository.
func NewLookupService(catalogRepository store.CatalogRepository, logger *logger.Logger) LookupService {
	return &lookupService{
		catalogRepository: catalogRepository,
		logger:            logger,
	}
}

// Lookup returns the catalog product for the given barcode. Whitespace
// around the barcode is ignored; an empty barcode is invalid data rather
// than a miss.
func (s *lookupService) Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error) {
	log := logger.FromContext(ctx)

	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return models.CatalogProduct{}, ErrInvalidDataProvided
	}

	product, err := s.catalogRepository.FindByBarcode(ctx, barcode)
	if err != nil {
		log.Debug().Err(err).Str("barcode", barcode).Msg("barcode lookup missed")
		return models.CatalogProduct{}, fmt.Errorf("barcode lookup failed: %w", err)
	}

	return product, nil
}
