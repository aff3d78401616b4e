package usecase

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/dto/request"
	"moviehub/pkg/auth"
	"moviehub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuth(t *testing.T, store *memStore, config *utils.Config) (AuthService, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return NewAuthService(store.repo(), tokens, config, zap.NewNop()), tokens
}

func TestAuthRegisterAndLogin(t *testing.T) {
	store := newMemStore()
	service, tokens := newTestAuth(t, store, testConfig())

	registered, err := service.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)

	claims, err := tokens.Validate(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)

	loggedIn, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	store := newMemStore()
	service, _ := newTestAuth(t, store, testConfig())

	req := &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}

	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthRegisterValidation(t *testing.T) {
	service, _ := newTestAuth(t, newMemStore(), testConfig())

	cases := []struct {
		name string
		req  request.RegisterRequest
	}{
		{"bad email", request.RegisterRequest{Email: "not-an-email", Password: "long enough pass"}},
		{"short password", request.RegisterRequest{Email: "alice@example.com", Password: "short"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), &tc.req)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	store := newMemStore()
	service, _ := newTestAuth(t, store, testConfig())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthSeedAdmin(t *testing.T) {
	store := newMemStore()
	config := testConfig()
	config.Admin = utils.AdminConfig{
		Email:    "admin@example.com",
		Password: "operator password",
	}

	service, tokens := newTestAuth(t, store, config)

	require.NoError(t, service.SeedAdmin(context.Background()))
	require.Len(t, store.users, 1)

	// Seeding again must not create a second account.
	require.NoError(t, service.SeedAdmin(context.Background()))
	assert.Len(t, store.users, 1)

	loggedIn, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@example.com",
		Password: "operator password",
	})
	require.NoError(t, err)

	claims, err := tokens.Validate(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthSeedAdminSkippedWithoutEmail(t *testing.T) {
	store := newMemStore()
	service, _ := newTestAuth(t, store, testConfig())

	require.NoError(t, service.SeedAdmin(context.Background()))
	assert.Empty(t, store.users)
}
