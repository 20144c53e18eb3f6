package domain

import (
	"fmt"
	"time"
)

type Flight struct {
	ID             int64
	FlightNumber   string
	DepartureCity  string
	ArrivalCity    string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	Price          float64
	SeatsAvailable int
	CreatedAt      time.Time
}

// Duration renders the scheduled flight time as "2h 15m" for display.
func (f Flight) Duration() string {
	d := f.ArrivalTime.Sub(f.DepartureTime)
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FlightFilter holds optional search criteria combined with AND semantics.
// Zero values mean the criterion is not applied.
type FlightFilter struct {
	DepartureCity string
	ArrivalCity   string
	Date          time.Time
}

func (f FlightFilter) Empty() bool {
	return f.DepartureCity == "" && f.ArrivalCity == "" && f.Date.IsZero()
}
