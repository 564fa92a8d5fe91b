package auth

import (
	"context"
	"strings"
	"sync"
)

type MemoryStore struct {
	mu          sync.RWMutex
	credentials map[string]Credential
	identities  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		credentials: make(map[string]Credential),
		identities:  make(map[string]string),
	}
}

func (s *MemoryStore) CreateCredential(ctx context.Context, cred Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.ToLower(cred.Email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.credentials[key]; ok {
		return ErrEmailTaken
	}
	cred.Email = key
	s.credentials[key] = cred
	return nil
}

func (s *MemoryStore) CredentialByEmail(ctx context.Context, email string) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.credentials[strings.ToLower(email)]
	if !ok {
		return Credential{}, ErrNotFound
	}
	return cred, nil
}

func (s *MemoryStore) IdentityUser(ctx context.Context, provider, subject string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.identities[provider+"|"+subject]
	if !ok {
		return "", ErrNotFound
	}
	return userID, nil
}

func (s *MemoryStore) LinkIdentity(ctx context.Context, provider, subject, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[provider+"|"+subject] = userID
	return nil
}
