package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const maxLocationLength = 200

var ErrInvalidLocation = errors.New("invalid location")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Ensure creates or refreshes the profile row for a signed-in user.
func (s *Service) Ensure(ctx context.Context, profile Profile) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	if strings.TrimSpace(profile.ID) == "" {
		return errors.New("profile id is required")
	}
	profile.Email = strings.TrimSpace(profile.Email)
	profile.FullName = strings.TrimSpace(profile.FullName)
	return s.Repo.Upsert(ctx, profile)
}

func (s *Service) GetByID(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	return s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
}

// SaveLocation stores the display location and optional coordinates.
func (s *Service) SaveLocation(ctx context.Context, userID, location string, coords *Coords) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	location = strings.TrimSpace(location)
	if location == "" || len([]rune(location)) > maxLocationLength {
		return fmt.Errorf("%w: location must be 1-%d characters", ErrInvalidLocation, maxLocationLength)
	}
	if coords != nil && (coords.Lat < -90 || coords.Lat > 90 || coords.Lng < -180 || coords.Lng > 180) {
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidLocation)
	}
	return s.Repo.UpdateLocation(ctx, userID, location, coords)
}

// LocationFor returns the saved location, or "" when none is set.
func (s *Service) LocationFor(ctx context.Context, userID string) (string, error) {
	profile, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.Location, nil
}
