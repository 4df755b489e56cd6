package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var _ UserStore = (*PGStore)(nil)

const uniqueViolation = "23505"

// PGStore implements UserStore using PostgreSQL. The users table carries a
// unique constraint on email; that constraint, not application logic, is what
// makes duplicate registration impossible under race.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, u *User) error {
	_, err := s.db.ExecContext(ctx,
		`insert into users(id, email, password_hash, first_name, last_name, role, band_id, created_at, updated_at)
		 values($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, string(u.Role), u.BandID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *PGStore) FindByID(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, email, password_hash, first_name, last_name, role, band_id, created_at, updated_at
		 from users where id=$1`, id)
	return scanUser(row)
}

func (s *PGStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, email, password_hash, first_name, last_name, role, band_id, created_at, updated_at
		 from users where email=$1`, email)
	return scanUser(row)
}

func (s *PGStore) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		`update users set password_hash=$2, updated_at=$3 where id=$1`,
		userID, passwordHash, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) List(ctx context.Context) ([]*User, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, email, password_hash, first_name, last_name, role, band_id, created_at, updated_at
		 from users order by created_at asc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*User
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row *sql.Row) (*User, error) {
	u, err := scanUserRows(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func scanUserRows(row rowScanner) (*User, error) {
	var (
		u    User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&role, &u.BandID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = Role(role)
	return &u, nil
}
