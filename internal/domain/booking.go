package domain

import "time"

type Booking struct {
	ID         int64
	Reference  string
	HotelID    int64
	UserID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Rooms      int
	TotalPrice float64
	CreatedAt  time.Time

	// Joined hotel fields for display.
	HotelName     string
	HotelLocation string
}
