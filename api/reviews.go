package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/review"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service review.ReviewUseCase
}

type createReviewRequest struct {
	HotelID int64  `json:"hotelId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ID        int64  `json:"id"`
	HotelID   int64  `json:"hotel_id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

func NewReviewHandler(service review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Register(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.GET("/reviews", h.list)
	router.POST("/reviews", authMW, h.create)
}

func (h *ReviewHandler) list(c *gin.Context) {
	raw := c.Query("hotelId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hotelId parameter is required"})
		return
	}
	hotelID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotelId"})
		return
	}

	reviews, err := h.service.ListReviews(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, toReviewResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) create(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.CreateReview(c.Request.Context(), review.CreateReviewInput{
		UserID:  ident.UserID,
		HotelID: req.HotelID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReviewResponse(*created))
}

func toReviewResponse(r domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		HotelID:   r.HotelID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
