package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PGStore struct {
	DB *sql.DB
}

func (s *PGStore) CreateCredential(ctx context.Context, cred Credential) error {
	const query = `
INSERT INTO user_credentials (user_id, email, password_hash, created_at)
VALUES ($1, $2, $3, now())`
	_, err := s.DB.ExecContext(ctx, query, cred.UserID, strings.ToLower(cred.Email), cred.PasswordHash)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailTaken
	}
	return err
}

func (s *PGStore) CredentialByEmail(ctx context.Context, email string) (Credential, error) {
	const query = `
SELECT user_id, email, password_hash
FROM user_credentials
WHERE email = $1
LIMIT 1`
	var cred Credential
	err := s.DB.QueryRowContext(ctx, query, strings.ToLower(email)).Scan(&cred.UserID, &cred.Email, &cred.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return Credential{}, ErrNotFound
	}
	if err != nil {
		return Credential{}, err
	}
	return cred, nil
}

func (s *PGStore) IdentityUser(ctx context.Context, provider, subject string) (string, error) {
	const query = `
SELECT user_id
FROM user_identities
WHERE provider = $1 AND subject = $2`
	var userID string
	err := s.DB.QueryRowContext(ctx, query, provider, subject).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return userID, err
}

func (s *PGStore) LinkIdentity(ctx context.Context, provider, subject, userID string) error {
	const query = `
INSERT INTO user_identities (provider, subject, user_id, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (provider, subject) DO NOTHING`
	_, err := s.DB.ExecContext(ctx, query, provider, subject, userID)
	return err
}
