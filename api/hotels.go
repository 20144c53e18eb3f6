package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	service catalog.CatalogUseCase
}

type hotelResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Location       string   `json:"location"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating"`
	Price          float64  `json:"price"`
	Amenities      []string `json:"amenities"`
	Description    string   `json:"description"`
	RoomsAvailable int      `json:"rooms_available"`
}

func NewHotelHandler(service catalog.CatalogUseCase) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Register(router *gin.RouterGroup) {
	router.GET("/hotels", h.search)
	router.GET("/hotels/:id", h.get)
}

func (h *HotelHandler) search(c *gin.Context) {
	hotels, err := h.service.SearchHotels(c.Request.Context(), c.Query("city"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]hotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		resp = append(resp, toHotelResponse(hotel))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HotelHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHotelResponse(*hotel))
}

func toHotelResponse(h domain.Hotel) hotelResponse {
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return hotelResponse{
		ID:             h.ID,
		Name:           h.Name,
		City:           h.City,
		Location:       h.Location,
		Image:          h.Image,
		Rating:         h.Rating,
		Price:          h.Price,
		Amenities:      amenities,
		Description:    h.Description,
		RoomsAvailable: h.RoomsAvailable,
	}
}
