package domain

import (
	"encoding/json"
	"time"
)

type Hotel struct {
	ID             int64
	Name           string
	City           string
	Location       string
	Image          string
	Rating         float64
	Price          float64
	Amenities      []string
	Description    string
	RoomsAvailable int
	CreatedAt      time.Time
}

// DecodeAmenities parses the stored JSON text into an ordered list.
// Malformed or empty input yields an empty list rather than an error.
func DecodeAmenities(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var amenities []string
	if err := json.Unmarshal([]byte(raw), &amenities); err != nil {
		return []string{}
	}
	return amenities
}
