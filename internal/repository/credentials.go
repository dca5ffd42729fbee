// Package repository provides persistence implementations for the credential store.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashakirin/signup-service/internal/models"
)

// PostgresCredentialRepository implements the credential store using a PostgreSQL database.
type PostgresCredentialRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCredentialRepository creates a new PostgresCredentialRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresCredentialRepository(db *sql.DB) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{DB: db}
}

// CountByEmail returns the number of user records with the given email.
// The users table keys on email, so the count is 0 or 1.
func (r *PostgresCredentialRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM users WHERE email = $1`,
		email,
	).Scan(&count)
	return count, err
}

// CreateUser inserts a new user record in a single statement. The insert and
// the uniqueness check are one atomic operation: ON CONFLICT DO NOTHING makes
// a duplicate email insert zero rows, which is reported as
// models.ErrAlreadyExists. Concurrent signups for the same email therefore
// cannot both succeed.
func (r *PostgresCredentialRepository) CreateUser(ctx context.Context, email string, passwordHash []byte) error {
	res, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (email, password) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
		email, string(passwordHash),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if rows == 0 {
		return models.ErrAlreadyExists
	}
	return nil
}

// FindByEmail returns the user record for the given email, or
// models.ErrNotFound if no such record exists.
func (r *PostgresCredentialRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var (
		user     models.User
		password string
	)
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT email, password FROM users WHERE email = $1`,
		email,
	).Scan(&user.Email, &password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}

	user.PasswordHash = []byte(password)
	return &user, nil
}
