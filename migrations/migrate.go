// Package migrations embeds the goose SQL migrations for both storage
// backends: the server's PostgreSQL schema under server/ and the client's
// SQLite cache schema under client/.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

// Migrate applies all pending server migrations to the given PostgreSQL
// database.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(serverMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "server"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrateClient applies all pending client cache migrations to the given
// SQLite database.
func MigrateClient(db *sql.DB) error {
	goose.SetBaseFS(clientMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for client db: %w", err)
	}

	if err := goose.Up(db, "client"); err != nil {
		return fmt.Errorf("client migration error: %w", err)
	}

	return nil
}
