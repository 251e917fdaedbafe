// Package server provides the HTTP REST API for the report explorer.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/report-explorer/internal/config"
	"github.com/jonathan/report-explorer/internal/db"
	"github.com/jonathan/report-explorer/internal/types"
)

// DBClient is the subset of store operations the user service depends on.
type DBClient interface {
	GetUserByUsername(ctx context.Context, username string) (*db.User, error)
	InsertUser(ctx context.Context, user *db.User) error
	AllowedEmails(ctx context.Context) ([]string, error)
}

// UserService provides business logic for registration and login.
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new user account and returns the authenticated session.
// The email must be on the allow-list (compared case-insensitively) and the
// username must not already exist; uniqueness is enforced by the store's
// unique index, so the insert itself is the atomic guard.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.Session, error) {
	allowed, err := s.db.AllowedEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load allow-list: %w", err)
	}
	if !emailAllowed(allowed, req.Email) {
		return nil, &ErrNotAllowed{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &db.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		MobileNo:     req.MobileNo,
		CreatedAt:    time.Now(),
	}
	if err := s.db.InsertUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return nil, &ErrDuplicateUser{Username: req.Username}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Re-read the stored account: the purpose tag, if any, is assigned
	// externally and lives on the stored document.
	stored, err := s.db.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("created user not found: %s", req.Username)
	}

	return &types.Session{Username: stored.Username, Purpose: stored.Purpose}, nil
}

// Login authenticates a username/password pair and returns the session.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.Session, error) {
	user, err := s.db.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if user == nil || !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		if req.Username != "" {
			log.Printf("Failed login attempt for username: %s", req.Username)
		}
		return nil, &ErrInvalidCredentials{}
	}

	return &types.Session{Username: user.Username, Purpose: user.Purpose}, nil
}

// emailAllowed reports whether the email appears on the allow-list,
// compared case-insensitively.
func emailAllowed(allowed []string, email string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, email) {
			return true
		}
	}
	return false
}
