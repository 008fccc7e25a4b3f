package dto

import "time"

// VenueRequest payload for create/update.
type VenueRequest struct {
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	LogoURL   *string `json:"logo_url"`
	ManagerID *string `json:"manager_id"`
}

// VenueResponse mirrors a venue row.
type VenueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	LogoURL   *string   `json:"logo_url"`
	ManagerID *string   `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}
