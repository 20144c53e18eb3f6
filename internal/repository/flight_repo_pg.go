package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	query := `SELECT id, flight_number, departure_city, arrival_city, departure_time, arrival_time, price, seats_available, created_at FROM flights`

	var conds []string
	var args []interface{}
	if filter.DepartureCity != "" {
		args = append(args, filter.DepartureCity)
		conds = append(conds, fmt.Sprintf("departure_city = $%d", len(args)))
	}
	if filter.ArrivalCity != "" {
		args = append(args, filter.ArrivalCity)
		conds = append(conds, fmt.Sprintf("arrival_city = $%d", len(args)))
	}
	if !filter.Date.IsZero() {
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("departure_time::date = $%d::date", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY departure_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.ArrivalTime, &f.Price, &f.SeatsAvailable, &f.CreatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
