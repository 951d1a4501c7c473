package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumenarts/school-be/internal/models"
	"github.com/lumenarts/school-be/internal/storage"
)

// Ensure Store satisfies the storage.AccountStore interface at compile time.
var _ storage.AccountStore = (*Store)(nil)

// Store provides Postgres-backed persistence for accounts.
type Store struct {
	pool *pgxpool.Pool
}

// NewAccountStore creates a new Store and runs migrations.
func NewAccountStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			dob TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			street1 TEXT NOT NULL DEFAULT '',
			street2 TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			pin_code TEXT NOT NULL DEFAULT '',
			centre TEXT NOT NULL DEFAULT '',
			level TEXT NOT NULL DEFAULT '',
			stream TEXT NOT NULL DEFAULT '',
			scholarship BOOLEAN NOT NULL DEFAULT FALSE,
			comments TEXT NOT NULL DEFAULT '',
			comm_email BOOLEAN NOT NULL DEFAULT FALSE,
			comm_post BOOLEAN NOT NULL DEFAULT FALSE,
			comm_sms BOOLEAN NOT NULL DEFAULT FALSE,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_unique_idx ON accounts (email);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS accounts_username_unique_idx ON accounts (username);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

const accountColumns = `id, username, email, password_hash, first_name, last_name, phone,
	dob, country, street1, street2, city, state, pin_code,
	centre, level, stream, scholarship, comments,
	comm_email, comm_post, comm_sms, is_admin, created_at, updated_at`

// CreateAccount inserts a new account row. The unique indexes on email and
// username are the source of truth under concurrent registration; a
// violation surfaces as storage.ErrAlreadyExists.
func (s *Store) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	const query = `
	INSERT INTO accounts (
		username, email, password_hash, first_name, last_name, phone,
		dob, country, street1, street2, city, state, pin_code,
		centre, level, stream, scholarship, comments,
		comm_email, comm_post, comm_sms
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	RETURNING ` + accountColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		account.Username, account.Email, account.PasswordHash,
		account.FirstName, account.LastName, account.Phone,
		account.DOB, account.Country, account.Street1, account.Street2,
		account.City, account.State, account.PinCode,
		account.Centre, account.Level, account.Stream,
		account.Scholarship, account.Comments,
		account.Communications.ByEmail, account.Communications.ByPost, account.Communications.BySMS,
	)
	created, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Account{}, storage.ErrAlreadyExists
		}
		return models.Account{}, err
	}
	return created, nil
}

// FindByEmail fetches an account by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1;`
	row := s.pool.QueryRow(ctx, query, email)
	return scanAccount(row)
}

// FindByEmailOrUsername fetches the first account matching either value.
// Used as the duplicate pre-check before insert.
func (s *Store) FindByEmailOrUsername(ctx context.Context, email, username string) (models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 OR username = $2 LIMIT 1;`
	row := s.pool.QueryRow(ctx, query, email, username)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash,
		&a.FirstName, &a.LastName, &a.Phone,
		&a.DOB, &a.Country, &a.Street1, &a.Street2,
		&a.City, &a.State, &a.PinCode,
		&a.Centre, &a.Level, &a.Stream,
		&a.Scholarship, &a.Comments,
		&a.Communications.ByEmail, &a.Communications.ByPost, &a.Communications.BySMS,
		&a.IsAdmin, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, storage.ErrNotFound
		}
		return models.Account{}, err
	}
	return a, nil
}
