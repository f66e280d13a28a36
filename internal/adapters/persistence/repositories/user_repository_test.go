package repositories

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"campus-libsys/internal/core/domain"
	"campus-libsys/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultsSeedsThreeRoles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	repo := NewUserRepository(path)

	require.NoError(t, repo.EnsureDefaults())

	admin, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, password.Verify("admin", admin.Password))

	lib, err := repo.GetByUsername("lib")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleLibrarian, lib.Role)

	std, err := repo.GetByUsername("std")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, std.Role)
}

func TestEnsureDefaultsDoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("alice|hash|LIBRARIAN\n"), 0o644))

	repo := NewUserRepository(path)
	require.NoError(t, repo.EnsureDefaults())

	_, err := repo.GetByUsername("admin")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	alice, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleLibrarian, alice.Role)
}

func TestCreateAppendsAccount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	repo := NewUserRepository(path)
	require.NoError(t, repo.EnsureDefaults())

	hash, err := password.Hash("supersecret")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&domain.User{Username: "s1234", Password: hash, Role: domain.RoleStudent}))

	exists, err := repo.ExistsByUsername("s1234")
	require.NoError(t, err)
	assert.True(t, exists)

	u, err := repo.GetByUsername("s1234")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, u.Role)
	assert.True(t, password.Verify("supersecret", u.Password))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimRight(string(data), "\n"), "|STUDENT"))
}

func TestGetByUsernameMissingFile(t *testing.T) {
	repo := NewUserRepository(filepath.Join(t.TempDir(), "users.txt"))

	_, err := repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	exists, err := repo.ExistsByUsername("nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadSkipsMalformedUserLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := "alice|hash|ADMIN\n\n|nouser|STUDENT\nbob|hash\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := NewUserRepository(path)

	alice, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, alice.Role)

	// Missing role tag falls back to STUDENT.
	bob, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, bob.Role)
}
