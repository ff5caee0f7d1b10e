// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/units"
	"github.com/avoronova/craft-stash/models"
)

// shoppingService computes shopping lists on demand. Lists are derived from
// the current inventory and the material requirements of non-finished
// projects and are never persisted.
type shoppingService struct {
	supplyRepository  store.SupplyRepository
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

// NewShoppingService constructs a ShoppingService over the supply and
// project repositories.
func NewShoppingService(supplyRepository store.SupplyRepository, projectRepository store.ProjectRepository, logger *logger.Logger) ShoppingService {
	return &shoppingService{
		supplyRepository:  supplyRepository,
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// requirement accumulates the total quantity of one material demanded
// across projects, keyed by its inventory match target and unit.
type requirement struct {
	name     string
	unit     string
	required float64
	supplyID int64
	projects []string
}

// ShoppingList merges two sources into one list:
//
//  1. Restock entries: supplies whose quantity fell below their restock
//     threshold (min_quantity > 0).
//  2. Project shortfalls: materials of non-finished projects whose required
//     quantity exceeds the matching on-hand stock. Materials link to a
//     supply explicitly via supply_id or implicitly by case-insensitive
//     name; on-hand stock is unit-converted to the material's unit when
//     possible, and counts as zero when the units are incompatible.
//
// Entries with the same name and unit are merged, summing needed amounts
// and accumulating reasons.
func (s *shoppingService) ShoppingList(ctx context.Context, userID int64) ([]models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	supplies, err := s.supplyRepository.AllSupplies(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to load supplies for shopping list")
		return nil, fmt.Errorf("failed to load supplies for shopping list: %w", err)
	}

	materials, err := s.projectRepository.MaterialsForUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to load materials for shopping list")
		return nil, fmt.Errorf("failed to load materials for shopping list: %w", err)
	}

	merged := map[string]*models.ShoppingItem{}

	for _, supply := range supplies {
		if supply.MinQuantity <= 0 || supply.Quantity >= supply.MinQuantity {
			continue
		}
		addShoppingEntry(merged, supply.Name, supply.MinQuantity-supply.Quantity, supply.Unit, models.ReasonRestock)
	}

	for _, req := range groupRequirements(materials) {
		onHand := onHandFor(supplies, req)
		if shortfall := req.required - onHand; shortfall > 0 {
			addShoppingEntry(merged, req.name, shortfall, req.unit, req.projects...)
		}
	}

	items := make([]models.ShoppingItem, 0, len(merged))
	for _, item := range merged {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if a != b {
			return a < b
		}
		return items[i].Unit < items[j].Unit
	})

	return items, nil
}

// groupRequirements sums material quantities demanded across projects. Two
// materials accumulate into one requirement when they resolve to the same
// inventory target (same supply_id, or same lowercased name when unlinked)
// and are measured in the same unit.
func groupRequirements(materials []store.ProjectMaterialRow) []*requirement {
	grouped := map[string]*requirement{}
	var order []string

	for _, row := range materials {
		m := row.Material
		key := fmt.Sprintf("id:%d|%s", m.SupplyID, strings.ToLower(m.Unit))
		if m.SupplyID == 0 {
			key = fmt.Sprintf("name:%s|%s", strings.ToLower(m.Name), strings.ToLower(m.Unit))
		}

		req, ok := grouped[key]
		if !ok {
			req = &requirement{name: m.Name, unit: m.Unit, supplyID: m.SupplyID}
			grouped[key] = req
			order = append(order, key)
		}
		req.required += m.Quantity
		if !slices.Contains(req.projects, row.ProjectName) {
			req.projects = append(req.projects, row.ProjectName)
		}
	}

	out := make([]*requirement, 0, len(order))
	for _, key := range order {
		out = append(out, grouped[key])
	}
	return out
}

// onHandFor sums the matched supplies' quantities expressed in the
// requirement's unit. Every match contributes: all supplies with the linked
// id, or all case-insensitive name matches when unlinked. Matches held in an
// incompatible unit count as zero stock.
func onHandFor(supplies []models.Supply, req *requirement) float64 {
	var total float64

	for _, supply := range supplies {
		if req.supplyID != 0 {
			if supply.ID != req.supplyID {
				continue
			}
		} else if !strings.EqualFold(supply.Name, req.name) {
			continue
		}

		if strings.EqualFold(supply.Unit, req.unit) {
			total += supply.Quantity
			continue
		}

		converted, err := units.Convert(supply.Quantity, supply.Unit, req.unit)
		if err != nil {
			continue
		}
		total += converted
	}

	return total
}

func addShoppingEntry(merged map[string]*models.ShoppingItem, name string, needed float64, unit string, reasons ...string) {
	key := strings.ToLower(name) + "|" + strings.ToLower(unit)

	item, ok := merged[key]
	if !ok {
		item = &models.ShoppingItem{Name: name, Unit: unit}
		merged[key] = item
	}
	item.Needed += needed
	for _, reason := range reasons {
		if !slices.Contains(item.Reasons, reason) {
			item.Reasons = append(item.Reasons, reason)
		}
	}
}
