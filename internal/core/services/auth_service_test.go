package services

import (
	"path/filepath"
	"testing"

	"campus-libsys/internal/adapters/persistence/repositories"
	"campus-libsys/internal/config"
	"campus-libsys/internal/core/domain"
	"campus-libsys/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	repo := repositories.NewUserRepository(filepath.Join(t.TempDir(), "users.txt"))
	require.NoError(t, repo.EnsureDefaults())

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	return NewAuthService(repo, cfg)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	result, err := svc.Login(&LoginInput{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := jwt.ValidateAccessToken(result.AccessToken, "test_secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(&LoginInput{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginInput{Username: "nobody", Password: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterStudent(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.RegisterStudent(&RegisterStudentInput{Username: "s1234", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)

	result, err := svc.Login(&LoginInput{Username: "s1234", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, "s1234", result.User.Username)
}

func TestRegisterStudentValidation(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.RegisterStudent(&RegisterStudentInput{Username: "", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.RegisterStudent(&RegisterStudentInput{Username: "s1", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.RegisterStudent(&RegisterStudentInput{Username: "admin", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newAuthFixture(t)

	login, err := svc.Login(&LoginInput{Username: "lib", Password: "lib"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "lib", refreshed.User.Username)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token is single-use.
	_, err = svc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := newAuthFixture(t)

	login, err := svc.Login(&LoginInput{Username: "std", Password: "std"})
	require.NoError(t, err)

	svc.Logout(login.RefreshToken)

	_, err = svc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
