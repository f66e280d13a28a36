package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"campus-libsys/internal/adapters/persistence/repositories"
	"campus-libsys/internal/config"
	"campus-libsys/internal/core/domain"
	"campus-libsys/internal/pkg/jwt"
	"campus-libsys/internal/pkg/password"

	"github.com/google/uuid"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)

// storedToken tracks one refresh token until it is rotated or revoked.
type storedToken struct {
	username  string
	expiresAt time.Time
	revoked   bool
}

// AuthService validates operators against the user store and issues tokens.
// Refresh tokens live in memory only, like the wait queues: a restart starts
// a fresh session and everyone logs in again.
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config

	mu     sync.Mutex
	tokens map[string]*storedToken // keyed by SHA-256 token hash
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		tokens:   make(map[string]*storedToken),
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterStudentInput represents student registration input. The username
// doubles as the student's borrower id.
type RegisterStudentInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// Login authenticates an operator
func (s *AuthService) Login(input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}
	s.storeRefreshToken(user.Username, refresh)

	log.Printf("✅ User logged in: %s (%s)", user.Username, user.Role)

	return &AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// RegisterStudent creates a new STUDENT account.
func (s *AuthService) RegisterStudent(input *RegisterStudentInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.userRepo.ExistsByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: input.Username,
		Password: hash,
		Role:     domain.RoleStudent,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	log.Printf("✅ Student registered: %s", user.Username)
	return user, nil
}

// Refresh rotates the refresh token and issues a new token pair.
func (s *AuthService) Refresh(refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	tokenHash := password.HashToken(refreshToken)

	s.mu.Lock()
	stored, ok := s.tokens[tokenHash]
	if !ok {
		s.mu.Unlock()
		return nil, ErrInvalidToken
	}
	if stored.revoked {
		s.mu.Unlock()
		return nil, ErrTokenRevoked
	}
	if time.Now().After(stored.expiresAt) {
		s.mu.Unlock()
		return nil, ErrTokenExpired
	}
	// Token rotation: the presented token is single-use.
	stored.revoked = true
	s.mu.Unlock()

	user, err := s.userRepo.GetByUsername(claims.Username)
	if err != nil {
		return nil, ErrInvalidToken
	}

	access, refresh, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}
	s.storeRefreshToken(user.Username, refresh)

	log.Printf("✅ Token refreshed for user: %s", user.Username)

	return &AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Logout revokes the refresh token.
func (s *AuthService) Logout(refreshToken string) {
	tokenHash := password.HashToken(refreshToken)

	s.mu.Lock()
	if stored, ok := s.tokens[tokenHash]; ok {
		stored.revoked = true
	}
	s.mu.Unlock()

	log.Printf("✅ User logged out")
}

// GetUser returns the operator account for username.
func (s *AuthService) GetUser(username string) (*domain.User, error) {
	return s.userRepo.GetByUsername(username)
}

// generateTokens generates an access and refresh token pair
func (s *AuthService) generateTokens(user *domain.User) (string, string, error) {
	access, err := jwt.GenerateAccessToken(
		user.Username,
		string(user.Role),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return "", "", err
	}

	tokenID := uuid.New().String()
	refresh, err := jwt.GenerateRefreshToken(
		user.Username,
		tokenID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// storeRefreshToken records the hash of a newly issued refresh token
func (s *AuthService) storeRefreshToken(username, refreshToken string) {
	tokenHash := password.HashToken(refreshToken)

	s.mu.Lock()
	s.tokens[tokenHash] = &storedToken{
		username:  username,
		expiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	s.mu.Unlock()
}
