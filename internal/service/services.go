// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package service

import (
	"fmt"

	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
)

// Services groups all server-side services into a single value handed to
// the HTTP handler layer.
type Services struct {
	AuthService     AuthService
	SupplyService   SupplyService
	ProjectService  ProjectService
	ShoppingService ShoppingService
	LookupService   LookupService
	AppInfoService  AppInfoService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service init failed: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		SupplyService:   NewSupplyService(storages.SupplyRepository, logger),
		ProjectService:  NewProjectService(storages.ProjectRepository, logger),
		ShoppingService: NewShoppingService(storages.SupplyRepository, storages.ProjectRepository, logger),
		LookupService:   NewLookupService(storages.CatalogRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}