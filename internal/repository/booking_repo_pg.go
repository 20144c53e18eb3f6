package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Create reads the hotel price, checks room availability over the requested
// date range and inserts the booking in one transaction. The hotel row is
// locked so concurrent bookings for the same hotel serialize.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var price float64
	var roomsAvailable int
	err = tx.QueryRow(ctx, `SELECT name, location, price, rooms_available FROM hotels WHERE id=$1 FOR UPDATE`, booking.HotelID).
		Scan(&booking.HotelName, &booking.HotelLocation, &price, &roomsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var booked int
	err = tx.QueryRow(ctx, `SELECT COALESCE(SUM(rooms), 0) FROM bookings WHERE hotel_id=$1 AND check_in < $2 AND check_out > $3`,
		booking.HotelID, booking.CheckOut, booking.CheckIn).Scan(&booked)
	if err != nil {
		return err
	}
	if booked+booking.Rooms > roomsAvailable {
		return domain.ErrNoAvailability
	}

	booking.TotalPrice = price * float64(booking.Rooms)
	err = tx.QueryRow(ctx, `INSERT INTO bookings (reference, hotel_id, user_id, check_in, check_out, guests, rooms, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		booking.Reference, booking.HotelID, booking.UserID, booking.CheckIn, booking.CheckOut, booking.Guests, booking.Rooms, booking.TotalPrice).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.reference, b.hotel_id, b.user_id, b.check_in, b.check_out, b.guests, b.rooms, b.total_price, b.created_at, h.name, h.location
		FROM bookings b
		JOIN hotels h ON b.hotel_id = h.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.HotelID, &b.UserID, &b.CheckIn, &b.CheckOut, &b.Guests, &b.Rooms, &b.TotalPrice, &b.CreatedAt, &b.HotelName, &b.HotelLocation); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
