// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

// Package store implements the persistence layer: PostgreSQL repositories
// used by the server and an SQLite cache used by the TUI client.
package store

import (
	"context"

	"github.com/avoronova/craft-stash/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned
	// fields populated. Returns ErrLoginAlreadyExists when the login is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user whose login matches user.Login.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// SupplyRepository persists inventory supplies. All methods are scoped to a
// single owner: a supply owned by another user behaves as if it did not
// exist.
type SupplyRepository interface {
	// ListSupplies returns one page of the user's supplies matching the
	// query, plus the total match count across all pages.
	ListSupplies(ctx context.Context, userID int64, query models.SupplyQuery) ([]models.Supply, int, error)

	// AllSupplies returns every supply of the user, unfiltered. Used by the
	// shopping-list computation and the client cache refresh.
	AllSupplies(ctx context.Context, userID int64) ([]models.Supply, error)

	// CreateSupply inserts a supply and returns it with ID and timestamps
	// populated.
	CreateSupply(ctx context.Context, supply models.Supply) (models.Supply, error)

	// GetSupply returns one supply by id. Returns ErrSupplyNotFound when
	// absent.
	GetSupply(ctx context.Context, userID, supplyID int64) (models.Supply, error)

	// UpdateSupply overwrites all editable fields and bumps updated_at.
	// Returns ErrSupplyNotFound when absent.
	UpdateSupply(ctx context.Context, supply models.Supply) (models.Supply, error)

	// DeleteSupply removes one supply. Returns ErrSupplyNotFound when
	// absent.
	DeleteSupply(ctx context.Context, userID, supplyID int64) error
}

// ProjectRepository persists projects and their material requirements.
type ProjectRepository interface {
	// ListProjects returns all projects of the user, newest first, without
	// materials.
	ListProjects(ctx context.Context, userID int64) ([]models.Project, error)

	// CreateProject inserts a project and returns it with ID and timestamps
	// populated.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// GetProject returns one project with its materials. Returns
	// ErrProjectNotFound when absent.
	GetProject(ctx context.Context, userID, projectID int64) (models.Project, error)

	// UpdateProject overwrites the project's editable fields and bumps
	// updated_at. Returns ErrProjectNotFound when absent.
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)

	// UpdateProjectStatus changes only the status. Returns
	// ErrProjectNotFound when absent.
	UpdateProjectStatus(ctx context.Context, userID, projectID int64, status models.ProjectStatus) error

	// DeleteProject removes a project and its materials. Returns
	// ErrProjectNotFound when absent.
	DeleteProject(ctx context.Context, userID, projectID int64) error

	// AddMaterial inserts a material requirement for the project.
	AddMaterial(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error)

	// DeleteMaterial removes one material requirement. Returns
	// ErrMaterialNotFound when absent.
	DeleteMaterial(ctx context.Context, userID, projectID, materialID int64) error

	// MaterialsForUser returns all materials of the user's non-finished
	// projects, joined with the owning project name. Used by the
	// shopping-list computation.
	MaterialsForUser(ctx context.Context, userID int64) ([]ProjectMaterialRow, error)
}

// ProjectMaterialRow is a material requirement joined with its project's
// name and status, as needed by the shopping-list computation.
type ProjectMaterialRow struct {
	Material    models.ProjectMaterial
	ProjectName string
}

// CatalogRepository looks up barcode catalog records.
type CatalogRepository interface {
	// FindByBarcode returns the catalog product for the given barcode.
	// Returns ErrProductNotFound when absent.
	FindByBarcode(ctx context.Context, barcode string) (models.CatalogProduct, error)
}