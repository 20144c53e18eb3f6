package booking

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	UserID   int64
	Email    string
	HotelID  int64
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Rooms    int
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the request and delegates the transactional
// price-lookup-and-insert to the repository. The total price is always
// computed server-side from the stored hotel price.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.HotelID <= 0 {
		return nil, domain.Validation("hotelId is required")
	}
	if input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return nil, domain.Validation("checkIn and checkOut are required")
	}
	if !input.CheckOut.After(input.CheckIn) {
		return nil, domain.Validation("checkOut must be after checkIn")
	}
	if input.Guests < 1 {
		return nil, domain.Validation("guests must be at least 1")
	}
	if input.Rooms < 1 {
		return nil, domain.Validation("rooms must be at least 1")
	}

	booking := &domain.Booking{
		Reference: uuid.NewString(),
		HotelID:   input.HotelID,
		UserID:    input.UserID,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		Guests:    input.Guests,
		Rooms:     input.Rooms,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking, input.Email); err != nil {
		log.Printf("publish booking_created for booking %s: %v", booking.Reference, err)
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, email string) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		Reference:  booking.Reference,
		HotelID:    booking.HotelID,
		HotelName:  booking.HotelName,
		UserID:     booking.UserID,
		Email:      email,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Rooms:      booking.Rooms,
		TotalPrice: booking.TotalPrice,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
