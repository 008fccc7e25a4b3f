package dto

import "time"

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ProfileResponse mirrors a profile row.
type ProfileResponse struct {
	ID          string  `json:"id"`
	VenueID     *string `json:"venue_id"`
	Role        string  `json:"role"`
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
}
