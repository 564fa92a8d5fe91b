package auth

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Credential is a password login for one user.
type Credential struct {
	UserID       string
	Email        string
	PasswordHash string
}

// Store persists password credentials and linked OAuth identities.
type Store interface {
	CreateCredential(ctx context.Context, cred Credential) error
	CredentialByEmail(ctx context.Context, email string) (Credential, error)
	IdentityUser(ctx context.Context, provider, subject string) (string, error)
	LinkIdentity(ctx context.Context, provider, subject, userID string) error
}
