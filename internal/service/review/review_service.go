package review

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
)

type ReviewUseCase interface {
	ListReviews(ctx context.Context, hotelID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
}

type CreateReviewInput struct {
	UserID  int64
	HotelID int64
	Rating  int
	Comment string
}

type ReviewService struct {
	reviews repository.ReviewRepository
	hotels  repository.HotelRepository
}

func NewReviewService(reviews repository.ReviewRepository, hotels repository.HotelRepository) *ReviewService {
	return &ReviewService{reviews: reviews, hotels: hotels}
}

func (s *ReviewService) ListReviews(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	if hotelID <= 0 {
		return nil, domain.Validation("hotelId parameter is required")
	}
	return s.reviews.ListByHotel(ctx, hotelID)
}

func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if input.HotelID <= 0 {
		return nil, domain.Validation("hotelId is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.Validation("rating must be between 1 and 5")
	}
	if input.Comment == "" {
		return nil, domain.Validation("comment is required")
	}

	if _, err := s.hotels.GetByID(ctx, input.HotelID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		HotelID: input.HotelID,
		UserID:  input.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

var _ ReviewUseCase = (*ReviewService)(nil)
