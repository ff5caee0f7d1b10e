package store

import (
	"context"
	"fmt"

	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	SupplyRepository  SupplyRepository
	ProjectRepository ProjectRepository
	CatalogRepository CatalogRepository
}

// NewStorages connects to PostgreSQL, runs pending migrations, and wires all
// repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SupplyRepository:  NewSupplyRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		CatalogRepository: NewCatalogRepository(db, log),
	}, nil
}
