package auth

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGStoreCreateCredentialMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_credentials")).
		WithArgs("user-1", "ada@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	store := &PGStore{DB: db}
	err = store.CreateCredential(context.Background(), Credential{UserID: "user-1", Email: "Ada@Example.com", PasswordHash: "hash"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreCredentialByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_credentials")).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "password_hash"}).AddRow("user-1", "ada@example.com", "hash"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_credentials")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	store := &PGStore{DB: db}
	cred, err := store.CredentialByEmail(context.Background(), "ADA@example.com")
	if err != nil {
		t.Fatalf("CredentialByEmail: %v", err)
	}
	if cred.UserID != "user-1" || cred.PasswordHash != "hash" {
		t.Fatalf("unexpected credential %+v", cred)
	}
	if _, err := store.CredentialByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreIdentities(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_identities")).
		WithArgs("google", "g-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_identities")).
		WithArgs("google", "g-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_identities")).
		WithArgs("google", "g-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))

	store := &PGStore{DB: db}
	ctx := context.Background()
	if _, err := store.IdentityUser(ctx, "google", "g-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.LinkIdentity(ctx, "google", "g-1", "user-1"); err != nil {
		t.Fatalf("LinkIdentity: %v", err)
	}
	userID, err := store.IdentityUser(ctx, "google", "g-1")
	if err != nil || userID != "user-1" {
		t.Fatalf("IdentityUser = %q, %v", userID, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
