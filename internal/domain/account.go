package domain

import "time"

// Account is the identity-store record backing a login. The profile row
// shares its identifier.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Confirmed    bool
	Disabled     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
