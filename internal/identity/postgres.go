package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/venue-service/internal/domain"
)

// ErrInvalidCredentials is returned when password verification fails or the
// account is disabled.
var ErrInvalidCredentials = errors.New("invalid credentials")

type postgresStore struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

// NewPostgresStore returns a Postgres-backed identity store.
func NewPostgresStore(pool *pgxpool.Pool, bcryptCost int) Store {
	return &postgresStore{pool: pool, bcryptCost: bcryptCost}
}

func (s *postgresStore) CreateAccount(ctx context.Context, acc NewAccount) (*domain.Account, error) {
	hash, err := HashPassword(acc.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	// Account insert and the blank profile row go in one transaction,
	// mirroring the hosted store's on-signup trigger: a profile row exists
	// for every account id from the moment the account does.
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	account := &domain.Account{
		Email:     acc.Email,
		Confirmed: acc.Confirmed,
	}

	const insertAccount = `
        INSERT INTO accounts (email, password_hash, confirmed)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, insertAccount, acc.Email, hash, acc.Confirmed).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		return nil, err
	}

	const insertProfile = `
        INSERT INTO profiles (id, role) VALUES ($1, 'bartender')
        ON CONFLICT (id) DO NOTHING`
	if _, err := tx.Exec(ctx, insertProfile, account.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	account.PasswordHash = hash
	return account, nil
}

func (s *postgresStore) DeleteAccount(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *postgresStore) SetDisabled(ctx context.Context, id string, disabled bool) error {
	cmd, err := s.pool.Exec(ctx,
		`UPDATE accounts SET disabled=$1, updated_at=NOW() WHERE id=$2`, disabled, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *postgresStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `
        SELECT id, email, password_hash, confirmed, disabled, created_at, updated_at
        FROM accounts WHERE id=$1`
	return s.scanAccount(s.pool.QueryRow(ctx, query, id))
}

func (s *postgresStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `
        SELECT id, email, password_hash, confirmed, disabled, created_at, updated_at
        FROM accounts WHERE email=$1`
	return s.scanAccount(s.pool.QueryRow(ctx, query, email))
}

func (s *postgresStore) VerifyPassword(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if account.Disabled {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (s *postgresStore) scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Confirmed,
		&account.Disabled,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
