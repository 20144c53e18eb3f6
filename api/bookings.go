package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	HotelID  int64  `json:"hotelId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
	Rooms    int    `json:"rooms"`
}

type bookingResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	HotelID       int64   `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	HotelLocation string  `json:"hotel_location"`
	UserID        int64   `json:"user_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Guests        int     `json:"guests"`
	Rooms         int     `json:"rooms"`
	TotalPrice    float64 `json:"total_price"`
	CreatedAt     string  `json:"created_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.POST("/bookings", authMW, h.create)
	router.GET("/bookings", authMW, h.list)
}

func (h *BookingHandler) create(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:   ident.UserID,
		Email:    ident.Email,
		HotelID:  req.HotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
		Rooms:    req.Rooms,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(*created))
}

func (h *BookingHandler) list(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	if checkIn == "" || checkOut == "" {
		return time.Time{}, time.Time{}, domain.Validation("checkIn and checkOut are required")
	}
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Validation("checkIn must be formatted as YYYY-MM-DD")
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Validation("checkOut must be formatted as YYYY-MM-DD")
	}
	return in, out, nil
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		HotelID:       b.HotelID,
		HotelName:     b.HotelName,
		HotelLocation: b.HotelLocation,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn.Format("2006-01-02"),
		CheckOut:      b.CheckOut.Format("2006-01-02"),
		Guests:        b.Guests,
		Rooms:         b.Rooms,
		TotalPrice:    b.TotalPrice,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
