package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ashakirin/signup-service/internal/models"
)

func setupCredentialsMock(t *testing.T) (*PostgresCredentialRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresCredentialRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestCountByEmail_Present(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "a@x.com"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE email = $1`)).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCountByEmail_Absent(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "nobody@x.com"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE email = $1`)).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCountByEmail_Error(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "boom@x.com"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE email = $1`)).
		WithArgs(email).
		WillReturnError(errors.New("query failed"))

	_, err := repo.CountByEmail(context.Background(), email)
	if err == nil {
		t.Errorf("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "new@x.com"
	hash := []byte("$2a$12$fakehash")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (email, password) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`)).
		WithArgs(email, string(hash)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateUser(context.Background(), email, hash); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "dup@x.com"
	hash := []byte("$2a$12$fakehash")
	// ON CONFLICT DO NOTHING swallows the conflict: zero rows affected.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (email, password) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`)).
		WithArgs(email, string(hash)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateUser(context.Background(), email, hash)
	if !errors.Is(err, models.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_Error(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "fail@x.com"
	hash := []byte("$2a$12$fakehash")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (email, password) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`)).
		WithArgs(email, string(hash)).
		WillReturnError(errors.New("insert failed"))

	err := repo.CreateUser(context.Background(), email, hash)
	if err == nil {
		t.Errorf("expected error, got nil")
	}
	if errors.Is(err, models.ErrAlreadyExists) {
		t.Errorf("store failure must not be reported as ErrAlreadyExists")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "a@x.com"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT email, password FROM users WHERE email = $1`)).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"email", "password"}).AddRow(email, "$2a$12$fakehash"))

	user, err := repo.FindByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != email {
		t.Errorf("expected email %q, got %q", email, user.Email)
	}
	if string(user.PasswordHash) != "$2a$12$fakehash" {
		t.Errorf("unexpected password hash %q", user.PasswordHash)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "ghost@x.com"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT email, password FROM users WHERE email = $1`)).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"email", "password"}))

	_, err := repo.FindByEmail(context.Background(), email)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestFindByEmail_Error(t *testing.T) {
	repo, mock, cleanup := setupCredentialsMock(t)
	defer cleanup()

	email := "boom@x.com"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT email, password FROM users WHERE email = $1`)).
		WithArgs(email).
		WillReturnError(errors.New("query failed"))

	_, err := repo.FindByEmail(context.Background(), email)
	if err == nil {
		t.Errorf("expected error, got nil")
	}
	if errors.Is(err, models.ErrNotFound) {
		t.Errorf("store failure must not be reported as ErrNotFound")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
