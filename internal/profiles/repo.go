package profiles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Repo interface {
	Upsert(ctx context.Context, profile Profile) error
	GetByID(ctx context.Context, userID string) (Profile, error)
	GetByEmail(ctx context.Context, email string) (Profile, error)
	UpdateLocation(ctx context.Context, userID, location string, coords *Coords) error
}
