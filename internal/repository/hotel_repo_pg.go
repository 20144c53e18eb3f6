package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelRepository interface {
	Search(ctx context.Context, city string) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type PGHotelRepository struct {
	db *pgxpool.Pool
}

func NewHotelRepository(db *pgxpool.Pool) HotelRepository {
	return &PGHotelRepository{db: db}
}

const hotelColumns = `id, name, city, location, image, rating, price, amenities, description, rooms_available, created_at`

func (r *PGHotelRepository) Search(ctx context.Context, city string) ([]domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels`
	var args []interface{}
	if city != "" {
		query += ` WHERE city = $1`
		args = append(args, city)
	}
	query += ` ORDER BY rating DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *h)
	}
	return hotels, rows.Err()
}

func (r *PGHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id=$1`, id)
	h, err := scanHotel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func scanHotel(row pgx.Row) (*domain.Hotel, error) {
	var h domain.Hotel
	var amenities string
	if err := row.Scan(&h.ID, &h.Name, &h.City, &h.Location, &h.Image, &h.Rating, &h.Price, &amenities, &h.Description, &h.RoomsAvailable, &h.CreatedAt); err != nil {
		return nil, err
	}
	h.Amenities = domain.DecodeAmenities(amenities)
	return &h, nil
}

var _ HotelRepository = (*PGHotelRepository)(nil)
