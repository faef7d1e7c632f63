package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	infraRepo "github.com/fandresena/gereo-server/internal/infrastructure/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
	"github.com/fandresena/gereo-server/pkg/utils"
)

func newAuthService(t *testing.T, env *testEnv) *AuthService {
	t.Helper()

	userRepo := infraRepo.NewUserRepository(env.db)
	hashed, err := utils.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		Username: "admin",
		Password: hashed,
		Role:     entity.RoleAdmin,
	}))

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, jwtManager)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	result, err := auth.Login(context.Background(), &LoginInput{
		Username: "admin",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "admin", result.User.Username)
	assert.True(t, result.User.IsAdmin())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	_, err := auth.Login(context.Background(), &LoginInput{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = auth.Login(context.Background(), &LoginInput{
		Username: "nobody",
		Password: "secret",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	login, err := auth.Login(context.Background(), &LoginInput{
		Username: "admin",
		Password: "secret",
	})
	require.NoError(t, err)

	refreshed, err := auth.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	_, err = auth.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	err := auth.ChangePassword(context.Background(), &ChangePasswordInput{
		Username:        "admin",
		CurrentPassword: "wrong",
		NewPassword:     "newpass",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	err = auth.ChangePassword(context.Background(), &ChangePasswordInput{
		Username:        "admin",
		CurrentPassword: "secret",
		NewPassword:     "newpass",
	})
	require.NoError(t, err)

	// The old password no longer works
	_, err = auth.Login(context.Background(), &LoginInput{Username: "admin", Password: "secret"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = auth.Login(context.Background(), &LoginInput{Username: "admin", Password: "newpass"})
	assert.NoError(t, err)
}
