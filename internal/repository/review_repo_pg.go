package repository

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
}

type PGReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &PGReviewRepository{db: db}
}

func (r *PGReviewRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, `SELECT r.id, r.hotel_id, r.user_id, r.rating, r.comment, r.created_at, u.name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.hotel_id = $1
		ORDER BY r.created_at DESC`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.HotelID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UserName); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *PGReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO reviews (hotel_id, user_id, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		review.HotelID, review.UserID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt); err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `SELECT name FROM users WHERE id=$1`, review.UserID).Scan(&review.UserName)
}

var _ ReviewRepository = (*PGReviewRepository)(nil)
