package store

import (
	"context"
	"fmt"

	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// passed to the client service layer.
type ClientStorages struct {
	// SupplyCacheRepository is the SQLite-backed local read cache of
	// supplies.
	SupplyCacheRepository SupplyCacheRepository

	// SessionRepository persists the authentication session between runs.
	SessionRepository SessionRepository
}

// NewClientStorages opens the client's SQLite cache, runs pending
// migrations, and wires the client repositories to the shared connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("client migration failed: %w", err)
	}

	return &ClientStorages{
		SupplyCacheRepository: NewSupplyCacheRepository(db, log),
		SessionRepository:     NewSessionRepository(db, log),
	}, nil
}
