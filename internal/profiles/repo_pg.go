package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (id, email, full_name, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = COALESCE(EXCLUDED.email, profiles.email),
  full_name = COALESCE(EXCLUDED.full_name, profiles.full_name),
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		profile.ID,
		nullableString(strings.ToLower(profile.Email)),
		nullableString(profile.FullName),
	)
	return err
}

const selectProfile = `
SELECT id, email, full_name, location, location_coords, created_at, updated_at
FROM profiles`

func (r *PGRepo) GetByID(ctx context.Context, userID string) (Profile, error) {
	return scanProfile(r.DB.QueryRowContext(ctx, selectProfile+`
WHERE id = $1
LIMIT 1`, userID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Profile, error) {
	return scanProfile(r.DB.QueryRowContext(ctx, selectProfile+`
WHERE email = $1
LIMIT 1`, strings.ToLower(email)))
}

func (r *PGRepo) UpdateLocation(ctx context.Context, userID, location string, coords *Coords) error {
	var rawCoords any
	if coords != nil {
		data, err := json.Marshal(coords)
		if err != nil {
			return err
		}
		rawCoords = string(data)
	}
	const query = `
UPDATE profiles
SET location = $2, location_coords = $3::jsonb, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID, nullableString(location), rawCoords)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProfile(row *sql.Row) (Profile, error) {
	var profile Profile
	var email, fullName, location sql.NullString
	var coords []byte
	err := row.Scan(
		&profile.ID,
		&email,
		&fullName,
		&location,
		&coords,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	profile.Email = email.String
	profile.FullName = fullName.String
	profile.Location = location.String
	if len(coords) > 0 {
		var c Coords
		if err := json.Unmarshal(coords, &c); err == nil {
			profile.LocationCoords = &c
		}
	}
	return profile, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
