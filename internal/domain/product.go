package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a menu item owned by exactly one venue. CategoryID is optional;
// deleting a category nulls it rather than removing the product.
type Product struct {
	ID          string
	VenueID     string
	Name        string
	Description *string
	Price       decimal.Decimal
	CategoryID  *string
	ImageURL    *string
	StoragePath *string
	Available   bool
	CreatedAt   time.Time
}
