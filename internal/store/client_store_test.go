package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	storages, err := NewClientStorages(context.Background(), config.ClientStorage{CachePath: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	return storages
}

func TestSupplyCache_ReplaceAllAndList(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	first := []models.Supply{
		{ID: 1, Name: "Zipper", Category: models.CategoryNotion, Quantity: 3, Unit: "pcs", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "DK Yarn", Category: models.CategoryYarn, Quantity: 6, Unit: "skein", Tags: []string{"winter"}, CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, storages.SupplyCacheRepository.ReplaceAll(ctx, 5, first))

	listed, err := storages.SupplyCacheRepository.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// ordered by name, case-insensitive
	assert.Equal(t, "DK Yarn", listed[0].Name)
	assert.Equal(t, []string{"winter"}, listed[0].Tags)

	// a refresh replaces the previous contents entirely
	second := []models.Supply{
		{ID: 3, Name: "Linen fabric", Category: models.CategoryFabric, Quantity: 1.5, Unit: "m", CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, storages.SupplyCacheRepository.ReplaceAll(ctx, 5, second))

	listed, err = storages.SupplyCacheRepository.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(3), listed[0].ID)
}

func TestSupplyCache_ScopedByUser(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, storages.SupplyCacheRepository.ReplaceAll(ctx, 5, []models.Supply{
		{ID: 1, Name: "Buttons", Category: models.CategoryNotion, Quantity: 12, Unit: "pcs", CreatedAt: now, UpdatedAt: now},
	}))

	_, err := storages.SupplyCacheRepository.Get(ctx, 6, 1)
	assert.True(t, errors.Is(err, ErrSupplyNotFound))

	got, err := storages.SupplyCacheRepository.Get(ctx, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "Buttons", got.Name)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	_, err := storages.SessionRepository.Load(ctx)
	assert.True(t, errors.Is(err, ErrSessionNotFound))

	require.NoError(t, storages.SessionRepository.Save(ctx, Session{UserID: 5, Login: "anna", Token: "token-1"}))

	// saving again replaces the previous session
	require.NoError(t, storages.SessionRepository.Save(ctx, Session{UserID: 9, Login: "mira", Token: "token-2"}))

	session, err := storages.SessionRepository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), session.UserID)
	assert.Equal(t, "mira", session.Login)
	assert.Equal(t, "token-2", session.Token)

	require.NoError(t, storages.SessionRepository.Delete(ctx))
	_, err = storages.SessionRepository.Load(ctx)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
