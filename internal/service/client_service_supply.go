// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/avoronova/craft-stash/internal/adapter"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/models"
)

// clientSupplyService implements ClientSupplyService. Writes go to the
// server and trigger a cache refresh; cached reads replay the server's
// search, filter, sort, and pagination semantics locally.
type clientSupplyService struct {
	serverAdapter adapter.ServerAdapter
	supplyCache   store.SupplyCacheRepository
	sessions      store.SessionRepository
	logger        *logger.Logger
}

// NewClientSupplyService wires the client inventory flow to the server
// adapter and the local cache.
func NewClientSupplyService(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, logger *logger.Logger) ClientSupplyService {
	return &clientSupplyService{
		serverAdapter: serverAdapter,
		supplyCache:   storages.SupplyCacheRepository,
		sessions:      storages.SessionRepository,
		logger:        logger,
	}
}

// List fetches one page of supplies from the server.
func (s *clientSupplyService) List(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error) {
	return s.serverAdapter.ListSupplies(ctx, query)
}

// ListCached reads the local cache and applies the query locally, so the
// inventory screen keeps working offline with the same controls.
func (s *clientSupplyService) ListCached(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return models.SupplyList{}, err
	}

	supplies, err := s.supplyCache.List(ctx, userID)
	if err != nil {
		return models.SupplyList{}, fmt.Errorf("cached supply listing failed: %w", err)
	}

	query.Normalize()
	filtered := filterSupplies(supplies, query)
	sortSupplies(filtered, query)

	total := len(filtered)
	start := query.Page * query.PageSize
	if start > total {
		start = total
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}

	return models.SupplyList{
		Items:    filtered[start:end],
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// Create persists a supply on the server and refreshes the cache.
func (s *clientSupplyService) Create(ctx context.Context, supply models.Supply) (models.Supply, error) {
	created, err := s.serverAdapter.CreateSupply(ctx, supply)
	if err != nil {
		return models.Supply{}, err
	}

	s.refreshQuietly(ctx)
	return created, nil
}

// Get fetches one supply from the server, falling back to the cache when
// the server is unreachable.
func (s *clientSupplyService) Get(ctx context.Context, supplyID int64) (models.Supply, error) {
	supply, err := s.serverAdapter.GetSupply(ctx, supplyID)
	if err == nil {
		return supply, nil
	}

	userID, sessionErr := s.currentUserID(ctx)
	if sessionErr != nil {
		return models.Supply{}, err
	}

	cached, cacheErr := s.supplyCache.Get(ctx, userID, supplyID)
	if cacheErr != nil {
		return models.Supply{}, err
	}

	s.logger.Debug().Int64("id", supplyID).Msg("serving supply from cache")
	return cached, nil
}

// Update overwrites a supply on the server and refreshes the cache.
func (s *clientSupplyService) Update(ctx context.Context, supply models.Supply) (models.Supply, error) {
	updated, err := s.serverAdapter.UpdateSupply(ctx, supply)
	if err != nil {
		return models.Supply{}, err
	}

	s.refreshQuietly(ctx)
	return updated, nil
}

// Delete removes a supply on the server and refreshes the cache.
func (s *clientSupplyService) Delete(ctx context.Context, supplyID int64) error {
	if err := s.serverAdapter.DeleteSupply(ctx, supplyID); err != nil {
		return err
	}

	s.refreshQuietly(ctx)
	return nil
}

// RefreshCache replaces the local cache with the server's supply set.
func (s *clientSupplyService) RefreshCache(ctx context.Context) error {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return err
	}

	supplies, err := s.serverAdapter.AllSupplies(ctx)
	if err != nil {
		return fmt.Errorf("cache refresh fetch failed: %w", err)
	}

	if err = s.supplyCache.ReplaceAll(ctx, userID, supplies); err != nil {
		return fmt.Errorf("cache refresh store failed: %w", err)
	}

	return nil
}

// Lookup resolves a barcode against the server's catalog.
func (s *clientSupplyService) Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error) {
	return s.serverAdapter.Lookup(ctx, barcode)
}

func (s *clientSupplyService) currentUserID(ctx context.Context) (int64, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("no active session: %w", err)
	}
	return session.UserID, nil
}

func (s *clientSupplyService) refreshQuietly(ctx context.Context) {
	if err := s.RefreshCache(ctx); err != nil {
		s.logger.Debug().Err(err).Msg("cache refresh after write failed")
	}
}

// filterSupplies replays the server's list filters over cached rows.
func filterSupplies(supplies []models.Supply, query models.SupplyQuery) []models.Supply {
	q := strings.ToLower(strings.TrimSpace(query.Q))

	out := make([]models.Supply, 0, len(supplies))
	for _, s := range supplies {
		if q != "" {
			haystack := strings.ToLower(s.Name + " " + s.Category + " " + strings.Join(s.Tags, ","))
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		if len(query.Categories) > 0 && !slices.Contains(query.Categories, s.Category) {
			continue
		}
		if len(query.Units) > 0 && !slices.Contains(query.Units, s.Unit) {
			continue
		}
		if query.Color != "" && !strings.Contains(strings.ToLower(s.Color), strings.ToLower(query.Color)) {
			continue
		}
		if query.Tag != "" && !strings.Contains(strings.ToLower(strings.Join(s.Tags, ",")), strings.ToLower(query.Tag)) {
			continue
		}
		out = append(out, s)
	}

	return out
}

func sortSupplies(supplies []models.Supply, query models.SupplyQuery) {
	less := func(a, b models.Supply) bool {
		switch query.SortBy {
		case models.SortByQuantity:
			return a.Quantity < b.Quantity
		case models.SortByUpdated:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(supplies, func(i, j int) bool {
		if query.SortDir == models.SortDesc {
			return less(supplies[j], supplies[i])
		}
		return less(supplies[i], supplies[j])
	})
}
