// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

// Package service holds the business logic of craft-stash: authentication,
// inventory and project rules, and the shopping-list computation. Handlers
// talk to services; services talk to repositories.
package service

import (
	"context"

	"github.com/avoronova/craft-stash/models"
)

// AuthService handles registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SupplyService applies inventory business rules on top of the supply
// repository.
type SupplyService interface {
	List(ctx context.Context, userID int64, query models.SupplyQuery) (models.SupplyList, error)
	Create(ctx context.Context, supply models.Supply) (models.Supply, error)
	Get(ctx context.Context, userID, supplyID int64) (models.Supply, error)
	Update(ctx context.Context, supply models.Supply) (models.Supply, error)
	Delete(ctx context.Context, userID, supplyID int64) error
}

// ProjectService applies project business rules on top of the project
// repository.
type ProjectService interface {
	List(ctx context.Context, userID int64) ([]models.Project, error)
	Create(ctx context.Context, project models.Project) (models.Project, error)
	Get(ctx context.Context, userID, projectID int64) (models.Project, error)
	Update(ctx context.Context, project models.Project) (models.Project, error)
	SetStatus(ctx context.Context, userID, projectID int64, status models.ProjectStatus) (models.Project, error)
	Delete(ctx context.Context, userID, projectID int64) error
	AddMaterial(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error)
	DeleteMaterial(ctx context.Context, userID, projectID, materialID int64) error
}

// ShoppingService computes shopping lists from the current inventory and the
// material requirements of non-finished projects.
type ShoppingService interface {
	ShoppingList(ctx context.Context, userID int64) ([]models.ShoppingItem, error)
}

// LookupService resolves barcodes against the product catalog.
type LookupService interface {
	Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}