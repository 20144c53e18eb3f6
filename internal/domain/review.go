package domain

import "time"

type Review struct {
	ID        int64
	HotelID   int64
	UserID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time

	// Joined reviewer name for display.
	UserName string
}
