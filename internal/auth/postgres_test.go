package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func userColumns() []string {
	return []string{"id", "email", "password_hash", "first_name", "last_name", "role", "band_id", "created_at", "updated_at"}
}

func TestPGStoreCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("insert into users").
		WithArgs("u1", "alice@x.com", "hash", "Alice", "Archer", "BAND_MANAGER", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	store := NewPGStore(db)
	now := time.Now().UTC()
	err = store.Create(context.Background(), &User{
		ID: "u1", Email: "alice@x.com", PasswordHash: "hash",
		FirstName: "Alice", LastName: "Archer", Role: RoleBandManager,
		CreatedAt: now, UpdatedAt: now,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("select .* from users where email=").
		WithArgs("alice@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("u1", "alice@x.com", "hash", "Alice", "Archer", "BAND_MANAGER", nil, now, now))

	store := NewPGStore(db)
	user, err := store.FindByEmail(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user.ID != "u1" || user.Role != RoleBandManager {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.BandID != nil {
		t.Fatalf("expected nil band id, got %v", *user.BandID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select .* from users where id=").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	store := NewPGStore(db)
	if _, err := store.FindByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreUpdatePasswordMissingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("update users set password_hash").
		WithArgs("missing", "newhash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewPGStore(db)
	if err := store.UpdatePassword(context.Background(), "missing", "newhash"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
