package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/models"
)

// supplyCacheRepository is the SQLite-backed implementation of
// [SupplyCacheRepository].
type supplyCacheRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSupplyCacheRepository constructs a [SupplyCacheRepository] backed by
// the client's SQLite database.
func NewSupplyCacheRepository(db *DB, logger *logger.Logger) SupplyCacheRepository {
	logger.Debug().Msg("creating supply cache repository")
	return &supplyCacheRepository{db: db, logger: logger}
}

// ReplaceAll swaps the user's cached supplies for the given set inside a
// single transaction, so readers never observe a half-refreshed cache.
func (r *supplyCacheRepository) ReplaceAll(ctx context.Context, userID int64, supplies []models.Supply) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, cacheDeleteAll, userID); err != nil {
		return fmt.Errorf("failed to clear supply cache: %w", err)
	}

	for _, s := range supplies {
		_, err = tx.ExecContext(ctx, cacheInsert,
			s.ID, userID, s.Name, s.Category, s.Quantity, s.Unit,
			s.Color, s.Brand, s.Barcode, joinTags(s.Tags), s.Notes,
			s.MinQuantity, s.CreatedAt, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cached supply: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache refresh: %w", err)
	}

	r.logger.Debug().Int64("user_id", userID).Int("count", len(supplies)).Msg("supply cache refreshed")
	return nil
}

// List returns all cached supplies of the user ordered by name.
func (r *supplyCacheRepository) List(ctx context.Context, userID int64) ([]models.Supply, error) {
	rows, err := r.db.QueryContext(ctx, cacheSelectAll, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "*supplyCacheRepository.List").Int64("user_id", userID).Msg("failed to query supply cache")
		return nil, fmt.Errorf("failed to query supply cache: %w", err)
	}
	defer rows.Close()

	return scanSupplies(rows)
}

// Get returns one cached supply.
func (r *supplyCacheRepository) Get(ctx context.Context, userID, supplyID int64) (models.Supply, error) {
	row := r.db.QueryRowContext(ctx, cacheSelectOne, userID, supplyID)

	supply, err := scanSupplyRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Supply{}, ErrSupplyNotFound
		}

		r.logger.Err(err).Str("func", "*supplyCacheRepository.Get").Int64("user_id", userID).Int64("id", supplyID).Msg("failed to read cached supply")
		return models.Supply{}, fmt.Errorf("failed to read cached supply: %w", err)
	}

	return supply, nil
}
