package domain

import "time"

// Role enumerates back-office roles. The set is closed: every authorization
// decision is an exhaustive match over these values.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleBartender Role = "bartender"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleBartender:
		return true
	}
	return false
}

// Profile holds role and venue assignment for an account. One row per
// account; the row's lifecycle is tied to the account's (cascade on delete).
type Profile struct {
	ID          string
	VenueID     *string
	Role        Role
	FullName    *string
	PhoneNumber *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
