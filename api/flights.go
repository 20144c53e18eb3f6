package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service catalog.CatalogUseCase
}

type flightResponse struct {
	ID             int64   `json:"id"`
	FlightNumber   string  `json:"flight_number"`
	DepartureCity  string  `json:"departure_city"`
	ArrivalCity    string  `json:"arrival_city"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seats_available"`
}

func NewFlightHandler(service catalog.CatalogUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.search)
	router.GET("/cities", h.cities)
}

func (h *FlightHandler) search(c *gin.Context) {
	filter := domain.FlightFilter{
		DepartureCity: c.Query("departure_city"),
		ArrivalCity:   c.Query("arrival_city"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		filter.Date = date
	}

	flights, err := h.service.SearchFlights(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		resp = append(resp, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, resp)
}

type cityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func (h *FlightHandler) cities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]cityResponse, 0, len(cities))
	for _, city := range cities {
		resp = append(resp, cityResponse{ID: city.ID, Name: city.Name, Code: city.Code})
	}
	c.JSON(http.StatusOK, resp)
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		ID:             f.ID,
		FlightNumber:   f.FlightNumber,
		DepartureCity:  f.DepartureCity,
		ArrivalCity:    f.ArrivalCity,
		DepartureTime:  f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:    f.ArrivalTime.Format(time.RFC3339),
		Duration:       f.Duration(),
		Price:          f.Price,
		SeatsAvailable: f.SeatsAvailable,
	}
}
