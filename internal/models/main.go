// Package models defines the core data structures and domain errors
// for user credentials.
package models

import "errors"

// User represents an application user stored in the credential table.
type User struct {
	// Email is the unique identifier for the user.
	Email string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// Domain errors returned by the credential store and the auth service.
// Handlers match on these with errors.Is to decide the user-visible outcome.
var (
	// ErrAlreadyExists is returned when a signup targets an email
	// that already has a user record.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrNotFound is returned when no user record exists for an email.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on login when the email is
	// unknown or the password does not match. The two causes are kept
	// indistinguishable to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
