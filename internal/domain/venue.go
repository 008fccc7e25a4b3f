package domain

import "time"

// Venue is a single food/beverage location.
//
// ManagerID is a soft reference: nothing prevents two venues from pointing
// at the same manager, and the referenced profile may have since changed
// role. The schema only guarantees it nulls out when the profile goes away.
type Venue struct {
	ID        string
	Name      string
	Address   *string
	City      string
	State     string
	LogoURL   *string
	ManagerID *string
	CreatedAt time.Time
}
