package store

import (
	"context"

	"github.com/avoronova/craft-stash/models"
)

// Session is the locally persisted authentication state of the client. One
// row per user; restoring a session skips the login screen on startup.
type Session struct {
	UserID int64
	Login  string
	Token  string
}

// SupplyCacheRepository is the client's local read cache of the user's
// supplies. The cache is replaced wholesale on every successful refresh and
// serves reads when the server is unreachable.
type SupplyCacheRepository interface {
	// ReplaceAll atomically swaps the user's cached supplies for the given
	// set.
	ReplaceAll(ctx context.Context, userID int64, supplies []models.Supply) error

	// List returns all cached supplies of the user ordered by name.
	List(ctx context.Context, userID int64) ([]models.Supply, error)

	// Get returns one cached supply. Returns ErrSupplyNotFound when absent.
	Get(ctx context.Context, userID, supplyID int64) (models.Supply, error)
}

// SessionRepository persists the client's authentication session between
// runs.
type SessionRepository interface {
	// Save stores the session, replacing any previous one.
	Save(ctx context.Context, session Session) error

	// Load returns the most recently saved session. Returns
	// ErrSessionNotFound when none exists.
	Load(ctx context.Context) (Session, error)

	// Delete removes all stored sessions. Called on logout.
	Delete(ctx context.Context) error
}
