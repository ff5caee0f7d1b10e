package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/utils"
	"github.com/avoronova/craft-stash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "craft-stash-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "anna", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Empty(t, persisted.Password, "plain-text password must not reach the repository")
	assert.True(t, utils.CheckPassword(persisted.PasswordHash, "secret"))
}

func TestRegisterUser_RequiresCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "anna"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_DuplicateLogin(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.RegisterUser(context.Background(), models.User{Login: "anna", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Login: "anna", PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Login(context.Background(), models.User{Login: "anna", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Login: "anna", PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err = svc.Login(context.Background(), models.User{Login: "anna", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "secret"})
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
