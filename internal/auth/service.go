package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fedventura-backend/internal/profiles"
	sharedauth "fedventura-backend/internal/shared/auth"
	"fedventura-backend/internal/shared/telemetry"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72
)

var (
	ErrInvalidInput       = errors.New("invalid sign-in input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Session is an issued sign-in.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Identity is the profile an OAuth provider reports.
type Identity struct {
	Provider string
	Subject  string
	Email    string
	Name     string
}

type Service struct {
	Store    Store
	Profiles *profiles.Service
	Signer   *sharedauth.Signer
	Cost     int
	now      func() time.Time
}

func NewService(store Store, profileSvc *profiles.Service, signer *sharedauth.Signer) *Service {
	return &Service{
		Store:    store,
		Profiles: profileSvc,
		Signer:   signer,
		Cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// SignUp registers a password account and signs it in.
func (s *Service) SignUp(ctx context.Context, email, password, fullName string) (Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Session{}, err
	}
	if n := len(password); n < minPasswordLength || n > maxPasswordLength {
		return Session{}, fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}
	if _, err := s.Store.CredentialByEmail(ctx, email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, err
	}
	if _, err := s.Profiles.GetByEmail(ctx, email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, profiles.ErrNotFound) {
		return Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return Session{}, err
	}
	userID := uuid.NewString()
	fullName = strings.TrimSpace(fullName)
	if err := s.Profiles.Ensure(ctx, profiles.Profile{ID: userID, Email: email, FullName: fullName}); err != nil {
		return Session{}, err
	}
	if err := s.Store.CreateCredential(ctx, Credential{UserID: userID, Email: email, PasswordHash: string(hash)}); err != nil {
		return Session{}, err
	}
	telemetry.Info("auth.signup", map[string]any{"user_id": userID})
	return s.issue(userID, email, fullName)
}

// SignIn checks a password and issues a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Session{}, err
	}
	if password == "" {
		return Session{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	cred, err := s.Store.CredentialByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	name := ""
	if profile, err := s.Profiles.GetByID(ctx, cred.UserID); err == nil {
		name = profile.FullName
	}
	return s.issue(cred.UserID, cred.Email, name)
}

// SignInIdentity resolves an OAuth identity to a user, creating or linking
// the profile by email on first sign-in.
func (s *Service) SignInIdentity(ctx context.Context, id Identity) (Session, error) {
	if id.Provider == "" || id.Subject == "" {
		return Session{}, fmt.Errorf("%w: provider identity is incomplete", ErrInvalidInput)
	}
	id.Email = strings.ToLower(strings.TrimSpace(id.Email))

	userID, err := s.Store.IdentityUser(ctx, id.Provider, id.Subject)
	switch {
	case errors.Is(err, ErrNotFound):
		userID = ""
		if id.Email != "" {
			if existing, err := s.Profiles.GetByEmail(ctx, id.Email); err == nil {
				userID = existing.ID
			}
		}
		if userID == "" {
			userID = uuid.NewString()
		}
	case err != nil:
		return Session{}, err
	}

	if err := s.Profiles.Ensure(ctx, profiles.Profile{ID: userID, Email: id.Email, FullName: id.Name}); err != nil {
		return Session{}, err
	}
	if err := s.Store.LinkIdentity(ctx, id.Provider, id.Subject, userID); err != nil {
		return Session{}, err
	}
	telemetry.Info("auth.oauth_signin", map[string]any{"user_id": userID, "provider": id.Provider})
	return s.issue(userID, id.Email, id.Name)
}

func (s *Service) issue(userID, email, name string) (Session, error) {
	token, err := s.Signer.Sign(userID, email, name)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:     token,
		UserID:    userID,
		Email:     email,
		Name:      name,
		ExpiresAt: s.now().UTC().Add(s.Signer.TTL()),
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	return email, nil
}
