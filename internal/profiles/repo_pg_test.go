package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertLowercasesEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("user-1", "ada@example.com", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Upsert(context.Background(), Profile{ID: "user-1", Email: "Ada@Example.com"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesCoords(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "location", "location_coords", "created_at", "updated_at"}).
		AddRow("user-1", "ada@example.com", nil, "Austin, TX", []byte(`{"lat":30.27,"lng":-97.74}`), now, now)
	mock.ExpectQuery("SELECT id, email, full_name, location, location_coords").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	profile, err := repo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if profile.Location != "Austin, TX" || profile.FullName != "" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.LocationCoords == nil || profile.LocationCoords.Lat != 30.27 || profile.LocationCoords.Lng != -97.74 {
		t.Fatalf("unexpected coords: %+v", profile.LocationCoords)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, email").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("UPDATE profiles").
		WithArgs("user-1", "Austin, TX", `{"lat":1.5,"lng":2.5}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE profiles").
		WithArgs("ghost", "Austin, TX", nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.UpdateLocation(context.Background(), "user-1", "Austin, TX", &Coords{Lat: 1.5, Lng: 2.5}); err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if err := repo.UpdateLocation(context.Background(), "ghost", "Austin, TX", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
