package review

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	if args.Error(0) == nil {
		review.ID = 1
		review.UserName = "Alice"
		review.CreatedAt = time.Now()
	}
	return args.Error(0)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Search(ctx context.Context, city string) ([]domain.Hotel, error) {
	args := m.Called(ctx, city)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func TestReviewService_CreateReview_RatingBounds(t *testing.T) {
	mockReviews := &MockReviewRepository{}
	mockHotels := &MockHotelRepository{}
	service := NewReviewService(mockReviews, mockHotels)

	ctx := context.Background()
	hotel := &domain.Hotel{ID: 1, Name: "Taj Mahal Palace"}
	var verr *domain.ValidationError

	// 0 and 6 rejected before any lookup.
	_, err := service.CreateReview(ctx, CreateReviewInput{UserID: 7, HotelID: 1, Rating: 0, Comment: "meh"})
	assert.ErrorAs(t, err, &verr)
	_, err = service.CreateReview(ctx, CreateReviewInput{UserID: 7, HotelID: 1, Rating: 6, Comment: "wow"})
	assert.ErrorAs(t, err, &verr)
	mockHotels.AssertNotCalled(t, "GetByID")

	// 1 and 5 accepted.
	mockHotels.On("GetByID", ctx, int64(1)).Return(hotel, nil).Twice()
	mockReviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil).Twice()

	review, err := service.CreateReview(ctx, CreateReviewInput{UserID: 7, HotelID: 1, Rating: 1, Comment: "bad stay"})
	assert.NoError(t, err)
	assert.Equal(t, 1, review.Rating)

	review, err = service.CreateReview(ctx, CreateReviewInput{UserID: 7, HotelID: 1, Rating: 5, Comment: "great stay"})
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Alice", review.UserName)

	mockHotels.AssertExpectations(t)
	mockReviews.AssertExpectations(t)
}

func TestReviewService_CreateReview_CommentRequired(t *testing.T) {
	mockReviews := &MockReviewRepository{}
	mockHotels := &MockHotelRepository{}
	service := NewReviewService(mockReviews, mockHotels)

	_, err := service.CreateReview(context.Background(), CreateReviewInput{UserID: 7, HotelID: 1, Rating: 3, Comment: ""})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	mockReviews.AssertNotCalled(t, "Create")
}

func TestReviewService_CreateReview_HotelNotFound(t *testing.T) {
	mockReviews := &MockReviewRepository{}
	mockHotels := &MockHotelRepository{}
	service := NewReviewService(mockReviews, mockHotels)

	ctx := context.Background()
	mockHotels.On("GetByID", ctx, int64(999)).Return(nil, domain.ErrNotFound).Once()

	_, err := service.CreateReview(ctx, CreateReviewInput{UserID: 7, HotelID: 999, Rating: 4, Comment: "nice"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mockReviews.AssertNotCalled(t, "Create")
	mockHotels.AssertExpectations(t)
}

func TestReviewService_ListReviews(t *testing.T) {
	mockReviews := &MockReviewRepository{}
	service := NewReviewService(mockReviews, &MockHotelRepository{})

	ctx := context.Background()
	reviews := []domain.Review{
		{ID: 2, HotelID: 1, UserID: 8, Rating: 5, Comment: "amazing", UserName: "Bob"},
		{ID: 1, HotelID: 1, UserID: 7, Rating: 4, Comment: "good", UserName: "Alice"},
	}

	mockReviews.On("ListByHotel", ctx, int64(1)).Return(reviews, nil).Once()

	result, err := service.ListReviews(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, reviews, result)

	mockReviews.AssertExpectations(t)
}

func TestReviewService_ListReviews_MissingHotelID(t *testing.T) {
	service := NewReviewService(&MockReviewRepository{}, &MockHotelRepository{})

	_, err := service.ListReviews(context.Background(), 0)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
