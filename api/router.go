package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every handler under /api and applies the auth middleware
// to the mutating booking and review routes.
func NewRouter(authH *AuthHandler, flightH *FlightHandler, hotelH *HotelHandler, bookingH *BookingHandler, reviewH *ReviewHandler, authMW gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	group := router.Group("/api")
	authH.Register(group)
	flightH.Register(group)
	hotelH.Register(group)
	bookingH.Register(group, authMW)
	reviewH.Register(group, authMW)

	return router
}
