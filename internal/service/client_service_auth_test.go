package service

import (
	"context"
	"testing"
	"time"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLogin_SavesSession(t *testing.T) {
	storages := newTestClientStorages(t)
	adapterMock := &mockServerAdapter{
		loginFn: func(ctx context.Context, user models.User) (models.Token, error) {
			adapterToken := models.Token{SignedString: "signed-token", UserID: 7}
			return adapterToken, nil
		},
	}

	svc := NewClientAuthService(adapterMock, storages, logger.Nop())
	token, err := svc.Login(context.Background(), "anna", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)

	session, err := storages.SessionRepository.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anna", session.Login)
	assert.Equal(t, "signed-token", session.Token)
}

func TestClientLogin_RequiresCredentials(t *testing.T) {
	svc := NewClientAuthService(&mockServerAdapter{}, newTestClientStorages(t), logger.Nop())

	_, err := svc.Login(context.Background(), "anna", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientRestoreSession(t *testing.T) {
	storages := newTestClientStorages(t)
	adapterMock := &mockServerAdapter{}
	svc := NewClientAuthService(adapterMock, storages, logger.Nop())

	_, err := svc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	require.NoError(t, storages.SessionRepository.Save(context.Background(), store.Session{
		UserID: 7, Login: "anna", Token: "saved-token",
	}))

	token, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, "saved-token", adapterMock.Token())
}

func TestClientLogout_ClearsEverything(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, storages.SessionRepository.Save(ctx, store.Session{UserID: 7, Login: "anna", Token: "t"}))
	require.NoError(t, storages.SupplyCacheRepository.ReplaceAll(ctx, 7, []models.Supply{
		{ID: 1, Name: "Buttons", Category: models.CategoryNotion, Quantity: 12, Unit: "pcs", CreatedAt: now, UpdatedAt: now},
	}))

	adapterMock := &mockServerAdapter{}
	adapterMock.SetToken("t")

	svc := NewClientAuthService(adapterMock, storages, logger.Nop())
	require.NoError(t, svc.Logout(ctx))

	assert.Empty(t, adapterMock.Token())

	_, err := storages.SessionRepository.Load(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	cached, err := storages.SupplyCacheRepository.List(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, cached)
}
