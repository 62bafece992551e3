package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"
	"gym_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest admin password accepted.
const MinPasswordLength = 8

// AuthResponse DTO
type AuthResponse struct {
	Admin       *models.Admin `json:"admin"`
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"` // seconds
}

// --- AuthService Interface ---
type AuthService interface {
	CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error)
	Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error)
}

// --- authService Implementation ---
type authService struct {
	authRepo repositories.AuthRepository
	tokens   *utils.TokenManager
	now      func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, tokens *utils.TokenManager, now func() time.Time) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		authRepo: authRepo,
		tokens:   tokens,
		now:      now,
	}
}

// CreateAdmin stores a new admin account with a bcrypt-hashed password.
func (s *authService) CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError("username cannot be empty")
	}
	if len(password) < MinPasswordLength {
		return nil, validationError("password must be at least %d characters", MinPasswordLength)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hashedPasswordBytes),
		CreatedAt:    s.now().UTC(),
	}
	if _, err := s.authRepo.CreateAdmin(ctx, nil, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, persistenceError("creating admin", err)
	}
	return admin, nil
}

// Login checks the credentials and issues an access token.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error) {
	admin, err := s.authRepo.FindAdminByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, persistenceError("login attempt failed", err)
	}

	// err is bcrypt.ErrMismatchedHashAndPassword for wrong password
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		Admin:       admin,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}
