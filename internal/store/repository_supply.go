// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/models"
)

// supplyRepository is the PostgreSQL-backed implementation of
// [SupplyRepository]. List queries are built dynamically with squirrel
// because the search, filter, and sort combinations of the inventory screen
// do not map onto a fixed set of prepared statements.
type supplyRepository struct {
	logger *logger.Logger
	db     *DB
	psql   sq.StatementBuilderType
}

// NewSupplyRepository constructs a [SupplyRepository] backed by the provided
// database connection and logger.
func NewSupplyRepository(db *DB, logger *logger.Logger) SupplyRepository {
	logger.Debug().Msg("creating supply repository")
	return &supplyRepository{
		db:     db,
		logger: logger,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var supplyColumns = []string{
	"id", "user_id", "name", "category", "quantity", "unit",
	"color", "brand", "barcode", "tags", "notes", "min_quantity",
	"created_at", "updated_at",
}

// listConditions translates the query's search and filter parameters into a
// squirrel conjunction scoped to the given user. Shared between the page
// query and the total-count query so the two can never disagree.
func (r *supplyRepository) listConditions(userID int64, query models.SupplyQuery) sq.And {
	conditions := sq.And{sq.Eq{"user_id": userID}}

	if q := strings.TrimSpace(query.Q); q != "" {
		needle := "%" + strings.ToLower(q) + "%"
		conditions = append(conditions,
			sq.Expr("LOWER(name || ' ' || category || ' ' || tags) LIKE ?", needle))
	}
	if len(query.Categories) > 0 {
		conditions = append(conditions, sq.Eq{"category": query.Categories})
	}
	if len(query.Units) > 0 {
		conditions = append(conditions, sq.Eq{"unit": query.Units})
	}
	if query.Color != "" {
		conditions = append(conditions, sq.ILike{"color": "%" + query.Color + "%"})
	}
	if query.Tag != "" {
		conditions = append(conditions, sq.ILike{"tags": "%" + query.Tag + "%"})
	}

	return conditions
}

// orderClause maps the query's sort parameters onto an ORDER BY expression.
// Name ordering is case-insensitive, matching how the inventory screen
// displays its rows.
func orderClause(query models.SupplyQuery) string {
	var column string
	switch query.SortBy {
	case models.SortByQuantity:
		column = "quantity"
	case models.SortByUpdated:
		column = "updated_at"
	default:
		column = "LOWER(name)"
	}

	direction := "ASC"
	if query.SortDir == models.SortDesc {
		direction = "DESC"
	}

	return column + " " + direction
}

// ListSupplies returns one page of the user's supplies matching the query
// and the total number of matches across all pages.
func (r *supplyRepository) ListSupplies(ctx context.Context, userID int64, query models.SupplyQuery) ([]models.Supply, int, error) {
	log := logger.FromContext(ctx)
	query.Normalize()

	conditions := r.listConditions(userID, query)

	countSQL, countArgs, err := r.psql.
		Select("COUNT(*)").
		From("supplies").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build supply count query: %w", err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*supplyRepository.ListSupplies").Int64("user_id", userID).Msg("failed to count supplies")
		return nil, 0, fmt.Errorf("failed to count supplies: %w", err)
	}

	pageSQL, pageArgs, err := r.psql.
		Select(supplyColumns...).
		From("supplies").
		Where(conditions).
		OrderBy(orderClause(query)).
		Limit(uint64(query.PageSize)).
		Offset(uint64(query.Page * query.PageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build supply list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "*supplyRepository.ListSupplies").Int64("user_id", userID).Msg("failed to query supplies")
		return nil, 0, fmt.Errorf("failed to query supplies: %w", err)
	}
	defer rows.Close()

	supplies, err := scanSupplies(rows)
	if err != nil {
		log.Err(err).Str("func", "*supplyRepository.ListSupplies").Int64("user_id", userID).Msg("failed to scan supplies")
		return nil, 0, err
	}

	return supplies, total, nil
}

// AllSupplies returns every supply of the user ordered by name.
func (r *supplyRepository) AllSupplies(ctx context.Context, userID int64) ([]models.Supply, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllSupplies, userID)
	if err != nil {
		log.Err(err).Str("func", "*supplyRepository.AllSupplies").Int64("user_id", userID).Msg("failed to query all supplies")
		return nil, fmt.Errorf("failed to query all supplies: %w", err)
	}
	defer rows.Close()

	supplies, err := scanSupplies(rows)
	if err != nil {
		log.Err(err).Str("func", "*supplyRepository.AllSupplies").Int64("user_id", userID).Msg("failed to scan supplies")
		return nil, err
	}

	return supplies, nil
}

// CreateSupply inserts a supply and returns it with server-assigned fields
// populated.
func (r *supplyRepository) CreateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSupply,
		supply.UserID,
		supply.Name,
		supply.Category,
		supply.Quantity,
		supply.Unit,
		supply.Color,
		supply.Brand,
		supply.Barcode,
		joinTags(supply.Tags),
		supply.Notes,
		supply.MinQuantity,
	)

	if err := row.Scan(&supply.ID, &supply.CreatedAt, &supply.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*supplyRepository.CreateSupply").Int64("user_id", supply.UserID).Msg("failed to insert supply")
		return models.Supply{}, fmt.Errorf("failed to insert supply: %w", err)
	}

	return supply, nil
}

// GetSupply returns one supply by id scoped to its owner.
func (r *supplyRepository) GetSupply(ctx context.Context, userID, supplyID int64) (models.Supply, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSupply, userID, supplyID)

	supply, err := scanSupplyRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Supply{}, ErrSupplyNotFound
		}

		log.Err(err).Str("func", "*supplyRepository.GetSupply").Int64("user_id", userID).Int64("id", supplyID).Msg("failed to get supply")
		return models.Supply{}, fmt.Errorf("failed to get supply: %w", err)
	}

	return supply, nil
}

// UpdateSupply overwrites all editable fields of the supply and bumps
// updated_at.
func (r *supplyRepository) UpdateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateSupply,
		supply.UserID,
		supply.ID,
		supply.Name,
		supply.Category,
		supply.Quantity,
		supply.Unit,
		supply.Color,
		supply.Brand,
		supply.Barcode,
		joinTags(supply.Tags),
		supply.Notes,
		supply.MinQuantity,
	)

	if err := row.Scan(&supply.CreatedAt, &supply.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Supply{}, ErrSupplyNotFound
		}

		log.Err(err).Str("func", "*supplyRepository.UpdateSupply").Int64("user_id", supply.UserID).Int64("id", supply.ID).Msg("failed to update supply")
		return models.Supply{}, fmt.Errorf("failed to update supply: %w", err)
	}

	return supply, nil
}

// DeleteSupply removes one supply scoped to its owner.
func (r *supplyRepository) DeleteSupply(ctx context.Context, userID, supplyID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSupply, userID, supplyID)
	if err != nil {
		log.Err(err).Str("func", "*supplyRepository.DeleteSupply").Int64("user_id", userID).Int64("id", supplyID).Msg("failed to delete supply")
		return fmt.Errorf("failed to delete supply: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSupplyNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSupplyRow(row rowScanner) (models.Supply, error) {
	var s models.Supply
	var tags string

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Category,
		&s.Quantity,
		&s.Unit,
		&s.Color,
		&s.Brand,
		&s.Barcode,
		&tags,
		&s.Notes,
		&s.MinQuantity,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return models.Supply{}, err
	}

	s.Tags = splitTags(tags)
	return s, nil
}

func scanSupplies(rows *sql.Rows) ([]models.Supply, error) {
	var supplies []models.Supply

	for rows.Next() {
		supply, err := scanSupplyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supply row: %w", err)
		}
		supplies = append(supplies, supply)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("supply rows iteration error: %w", err)
	}

	return supplies, nil
}
