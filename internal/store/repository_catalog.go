package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/models"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository]. The catalog is read-only at runtime; its rows are
// seeded by migrations.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{db: db, logger: logger}
}

// FindByBarcode returns the catalog product for the given barcode.
func (r *catalogRepository) FindByBarcode(ctx context.Context, barcode string) (models.CatalogProduct, error) {
	log := logger.FromContext(ctx)

	var product models.CatalogProduct
	err := r.db.QueryRowContext(ctx, findProductByBarcode, barcode).Scan(
		&product.Barcode,
		&product.Name,
		&product.Brand,
		&product.Category,
		&product.Unit,
		&product.DefaultQuantity,
		&product.Color,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CatalogProduct{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*catalogRepository.FindByBarcode").Str("barcode", barcode).Msg("failed to look up barcode")
		return models.CatalogProduct{}, fmt.Errorf("failed to look up barcode: %w", err)
	}

	return product, nil
}
