// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

// Package adapter provides the transport layer the client uses to talk to
// the craft-stash server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avoronova/craft-stash/models"
)

// ServerAdapter defines transport-agnostic communication with the
// craft-stash server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login,
	// or when restoring a saved session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success the returned bearer token
	// is stored via SetToken and the token (with UserID populated) is
	// returned.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user. On success the returned bearer token is
	// stored via SetToken and the token (with UserID populated) is returned.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ListSupplies fetches one page of supplies matching the query.
	ListSupplies(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error)

	// AllSupplies fetches every supply of the authenticated user, paging
	// through the list endpoint. Used by the cache refresh worker.
	AllSupplies(ctx context.Context) ([]models.Supply, error)

	// CreateSupply persists a new supply on the server.
	CreateSupply(ctx context.Context, supply models.Supply) (models.Supply, error)

	// GetSupply fetches one supply by id.
	GetSupply(ctx context.Context, supplyID int64) (models.Supply, error)

	// UpdateSupply overwrites a supply on the server.
	UpdateSupply(ctx context.Context, supply models.Supply) (models.Supply, error)

	// DeleteSupply removes a supply on the server.
	DeleteSupply(ctx context.Context, supplyID int64) error

	// ListProjects fetches all projects of the authenticated user.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// CreateProject persists a new project on the server.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// GetProject fetches one project with its materials.
	GetProject(ctx context.Context, projectID int64) (models.Project, error)

	// UpdateProject overwrites a project's editable fields.
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)

	// SetProjectStatus changes only the project's status.
	SetProjectStatus(ctx context.Context, projectID int64, status models.ProjectStatus) (models.Project, error)

	// DeleteProject removes a project and its materials.
	DeleteProject(ctx context.Context, projectID int64) error

	// AddMaterial attaches a material requirement to a project.
	AddMaterial(ctx context.Context, material models.ProjectMaterial) (models.ProjectMaterial, error)

	// DeleteMaterial removes one material requirement.
	DeleteMaterial(ctx context.Context, projectID, materialID int64) error

	// ShoppingList fetches the computed shopping list.
	ShoppingList(ctx context.Context) ([]models.ShoppingItem, error)

	// Lookup resolves a barcode against the server's product catalog.
	// Returns [ErrNotFound] (wrapped) when the barcode is unknown.
	Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error)

	// Convert asks the server to convert value between units.
	Convert(ctx context.Context, value float64, from, to string) (models.Conversion, error)
}
