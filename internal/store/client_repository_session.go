package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronova/craft-stash/internal/logger"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// client's SQLite database.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

// Save stores the session, replacing any previously saved one. The client
// keeps at most one session at a time.
func (r *sessionRepository) Save(ctx context.Context, session Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin session transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, sessionDeleteAll); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sessionUpsert, session.UserID, session.Login, session.Token); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Int64("user_id", session.UserID).Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return tx.Commit()
}

// Load returns the saved session.
func (r *sessionRepository) Load(ctx context.Context) (Session, error) {
	var session Session

	err := r.db.QueryRowContext(ctx, sessionSelect).Scan(&session.UserID, &session.Login, &session.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrSessionNotFound
		}

		r.logger.Err(err).Str("func", "*sessionRepository.Load").Msg("failed to load session")
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

// Delete removes all stored sessions.
func (r *sessionRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sessionDeleteAll); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Delete").Msg("failed to delete sessions")
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}
