// Package identity fronts the hosted identity store. The rest of the service
// only sees the Store interface; the Postgres implementation stands in for
// the hosted product in self-contained deployments and in tests.
package identity

import (
	"context"

	"github.com/spec-kit/venue-service/internal/domain"
)

// NewAccount carries the inputs for account creation.
type NewAccount struct {
	Email    string
	Password string
	// Confirmed marks the address verified up front so staff accounts are
	// usable without an email round trip.
	Confirmed bool
}

// Store is the identity-store contract: account lifecycle plus credential
// verification. Deleting an account is expected to remove the dependent
// profile row (cascade enforced by the store, not by callers).
type Store interface {
	CreateAccount(ctx context.Context, acc NewAccount) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error
	SetDisabled(ctx context.Context, id string, disabled bool) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	VerifyPassword(ctx context.Context, email, password string) (*domain.Account, error)
}
