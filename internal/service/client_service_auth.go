package service

import (
	"context"
	"fmt"

	"github.com/avoronova/craft-stash/internal/adapter"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/models"
)

// clientAuthService implements ClientAuthService against the server adapter
// and the local session store.
type clientAuthService struct {
	serverAdapter adapter.ServerAdapter
	sessions      store.SessionRepository
	supplyCache   store.SupplyCacheRepository
	logger        *logger.Logger
}

// NewClientAuthService wires the client auth flow to the server adapter and
// the local session and cache repositories.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		serverAdapter: serverAdapter,
		sessions:      storages.SessionRepository,
		supplyCache:   storages.SupplyCacheRepository,
		logger:        logger,
	}
}

// Register creates an account and stores the issued session locally. The
// login and password must both be present; the prototype's login screen
// enforces the same rule before any request is made.
func (s *clientAuthService) Register(ctx context.Context, login, name, password string) (models.Token, error) {
	if login == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := s.serverAdapter.Register(ctx, models.User{Login: login, Name: name, Password: password})
	if err != nil {
		return models.Token{}, fmt.Errorf("registration failed: %w", err)
	}

	if err = s.saveSession(ctx, login, token); err != nil {
		s.logger.Err(err).Str("login", login).Msg("failed to save session after register")
	}

	return token, nil
}

// Login authenticates and stores the issued session locally.
func (s *clientAuthService) Login(ctx context.Context, login, password string) (models.Token, error) {
	if login == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := s.serverAdapter.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.Token{}, fmt.Errorf("login failed: %w", err)
	}

	if err = s.saveSession(ctx, login, token); err != nil {
		s.logger.Err(err).Str("login", login).Msg("failed to save session after login")
	}

	return token, nil
}

// RestoreSession re-arms the adapter with a previously saved token. The
// token may have expired since it was saved; the first authenticated request
// surfaces that as adapter.ErrUnauthorized and the TUI falls back to the
// login screen.
func (s *clientAuthService) RestoreSession(ctx context.Context) (models.Token, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return models.Token{}, err
	}

	s.serverAdapter.SetToken(session.Token)
	s.logger.Debug().Str("login", session.Login).Msg("session restored")

	return models.Token{SignedString: session.Token, UserID: session.UserID}, nil
}

// Logout drops the adapter token and wipes local session and cache state.
func (s *clientAuthService) Logout(ctx context.Context) error {
	session, err := s.sessions.Load(ctx)
	if err == nil {
		if cacheErr := s.supplyCache.ReplaceAll(ctx, session.UserID, nil); cacheErr != nil {
			s.logger.Err(cacheErr).Msg("failed to clear supply cache on logout")
		}
	}

	s.serverAdapter.SetToken("")

	if err := s.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *clientAuthService) saveSession(ctx context.Context, login string, token models.Token) error {
	return s.sessions.Save(ctx, store.Session{
		UserID: token.UserID,
		Login:  login,
		Token:  token.SignedString,
	})
}
