package domain

import "time"

// Category groups products on a venue's menu.
type Category struct {
	ID           string
	VenueID      string
	Name         string
	Description  *string
	DisplayOrder int
	CreatedAt    time.Time
}
