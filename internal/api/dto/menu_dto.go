package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest payload for create/update.
type CategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
}

// CategoryResponse mirrors a category row.
type CategoryResponse struct {
	ID           string    `json:"id"`
	VenueID      string    `json:"venue_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductCreateRequest payload.
type ProductCreateRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"category_id"`
	ImageURL    *string         `json:"image_url"`
	StoragePath *string         `json:"storage_path"`
	Available   *bool           `json:"is_available"`
}

// ProductUpdateRequest payload; absent fields stay unchanged. CategoryID
// distinguishes absent (no change) from null (clear the category).
type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  **string         `json:"category_id"`
	ImageURL    *string          `json:"image_url"`
	StoragePath *string          `json:"storage_path"`
	Available   *bool            `json:"is_available"`
}

// ProductResponse mirrors a product row.
type ProductResponse struct {
	ID          string          `json:"id"`
	VenueID     string          `json:"venue_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"category_id"`
	ImageURL    *string         `json:"image_url"`
	StoragePath *string         `json:"storage_path"`
	Available   bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

// UploadResponse returns where an uploaded image landed.
type UploadResponse struct {
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
}
