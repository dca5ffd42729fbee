// Package service provides signup and login business logic,
// delegating persistence to a CredentialRepository.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ashakirin/signup-service/internal/models"
)

// bcryptCost is the bcrypt work factor applied to new passwords.
const bcryptCost = 12

// CredentialRepository defines the persistence operations
// required by the authentication service.
type CredentialRepository interface {
	// CreateUser atomically creates a new user record, returning
	// models.ErrAlreadyExists when the email is already taken.
	CreateUser(ctx context.Context, email string, passwordHash []byte) error
	// FindByEmail returns the user record for the email, or
	// models.ErrNotFound when none exists.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService implements signup and login operations by delegating
// to a CredentialRepository.
type AuthService struct {
	// repo performs the data-layer operations.
	repo CredentialRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo CredentialRepository) *AuthService {
	return &AuthService{repo: repo}
}

// SignUp hashes the password and creates the user record. The existence
// check and the insert are one atomic repository call, so a concurrent
// signup for the same email surfaces as models.ErrAlreadyExists rather
// than a duplicate row.
func (s *AuthService) SignUp(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.CreateUser(ctx, email, hash)
}

// LogIn looks up the user by email and verifies the password against the
// stored bcrypt hash. Unknown email and wrong password both return
// models.ErrInvalidCredentials; the wrapping message records the real
// cause for server-side logs without exposing it to the caller's response.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("unknown email: %w", models.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, fmt.Errorf("password mismatch: %w", models.ErrInvalidCredentials)
	}
	return user, nil
}
