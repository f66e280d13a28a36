package repositories

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"campus-libsys/internal/core/domain"
	"campus-libsys/internal/pkg/password"
)

// userRepository implements UserRepository over a pipe-delimited flat file:
// username|passwordhash|role, one account per line.
type userRepository struct {
	mu   sync.Mutex
	path string
}

// defaultAccounts are seeded when no users file exists yet, one per role.
var defaultAccounts = []struct {
	username string
	plain    string
	role     domain.Role
}{
	{"admin", "admin", domain.RoleAdmin},
	{"lib", "lib", domain.RoleLibrarian},
	{"std", "std", domain.RoleStudent},
}

// NewUserRepository creates a user repository backed by the file at path.
func NewUserRepository(path string) UserRepository {
	return &userRepository{path: path}
}

// GetByUsername gets a user by username
func (r *userRepository) GetByUsername(username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ExistsByUsername reports whether an account with the username exists
func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadAll()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// Create appends a new account to the users file
func (r *userRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s|%s|%s\n", user.Username, user.Password, user.Role)
	return err
}

// EnsureDefaults seeds one account per role when the users file is absent.
func (r *userRepository) EnsureDefaults() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, acc := range defaultAccounts {
		hash, err := password.Hash(acc.plain)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(f, "%s|%s|%s\n", acc.username, hash, acc.role); err != nil {
			return err
		}
	}

	log.Printf("✅ Created default users file: %s (admin, lib, std)", r.path)
	return nil
}

// loadAll reads every account line. Lines without a username are skipped.
// Callers hold the lock.
func (r *userRepository) loadAll() ([]*domain.User, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var users []*domain.User
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if parts[0] == "" {
			continue
		}
		u := &domain.User{Username: parts[0]}
		if len(parts) > 1 {
			u.Password = parts[1]
		}
		if len(parts) > 2 {
			u.Role = domain.RoleFromString(parts[2])
		} else {
			u.Role = domain.RoleStudent
		}
		users = append(users, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
