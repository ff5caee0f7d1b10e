package service

import (
	"context"
	"time"

	"github.com/avoronova/craft-stash/models"
)

// ClientAuthService defines the client-side contract for account and
// session management. Implementations talk to the server through the
// adapter and persist the session in the local store.
type ClientAuthService interface {
	// Register creates a new account on the server, stores the returned
	// bearer token in the adapter, and saves the session locally.
	Register(ctx context.Context, login, name, password string) (models.Token, error)

	// Login authenticates against the server, stores the returned bearer
	// token in the adapter, and saves the session locally.
	Login(ctx context.Context, login, password string) (models.Token, error)

	// RestoreSession loads a previously saved session and re-arms the
	// adapter with its token. Returns store.ErrSessionNotFound when no
	// session is saved.
	RestoreSession(ctx context.Context) (models.Token, error)

	// Logout clears the adapter token and deletes the saved session and
	// cached supplies.
	Logout(ctx context.Context) error
}

// ClientSupplyService serves inventory reads and writes for the TUI.
// Writes always go to the server; reads fall back to the local cache when
// the server is unreachable.
type ClientSupplyService interface {
	// List fetches one page of supplies from the server.
	List(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error)

	// ListCached reads the local cache, applying the query's search,
	// filter, sort, and pagination locally. Used when the server is down.
	ListCached(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error)

	// Create persists a new supply on the server and refreshes the cache.
	Create(ctx context.Context, supply models.Supply) (models.Supply, error)

	// Get fetches one supply, falling back to the cache on server errors.
	Get(ctx context.Context, supplyID int64) (models.Supply, error)

	// Update overwrites a supply on the server and refreshes the cache.
	Update(ctx context.Context, supply models.Supply) (models.Supply, error)

	// Delete removes a supply on the server and refreshes the cache.
	Delete(ctx context.Context, supplyID int64) error

	// RefreshCache replaces the local cache with the server's current
	// supply set.
	RefreshCache(ctx context.Context) error

	// Lookup resolves a barcode against the server's catalog.
	Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error)
}

// ClientProjectService proxies project operations to the server.
type ClientProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, project models.Project) (models.Project, error)
	Get(ctx context.Context, projectID int64) (models.Project, error)
	Update(ctx context.Context, project models.Project) (models.Project, error)
	SetStatus(ctx context.Context, projectID int64, status models.ProjectStatus) (models.Project, error)
	Delete(ctx context.Context, projectID int64) error
	AddMaterial(ctx context.Context, material models.ProjectMaterial) (models.ProjectMaterial, error)
	DeleteMaterial(ctx context.Context, projectID, materialID int64) error
}

// ClientShoppingService fetches the computed shopping list.
type ClientShoppingService interface {
	ShoppingList(ctx context.Context) ([]models.ShoppingItem, error)
}

// ClientRefreshJob is a background worker that periodically refreshes the
// local supply cache while a user is logged in.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
