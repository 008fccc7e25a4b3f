package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductImageKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := ProductImageKey("The Taproom", "Gin & Tonic", ".jpg", now)
	assert.Equal(t, "the-taproom/gin---tonic-1700000000000.jpg", key)
}

func TestVenueLogoKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := VenueLogoKey("Café Röst", ".png", now)
	// Non-ASCII runes collapse to dashes like any other non [a-z0-9] rune.
	assert.Equal(t, "logos/caf--r-st-1700000000000.png", key)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Taproom", "taproom"},
		{"The Taproom 2", "the-taproom-2"},
		{"UPPER lower", "upper-lower"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, slugify(tc.in), tc.in)
	}
}
