package handlers

import (
	"net/http"

	"tripplanner/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/trips
func (a API) ListTrips(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	trips, err := a.bookingService(c).ListForUser(s.UserID, c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if trips == nil {
		trips = []models.TripBooking{}
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:id
func (a API) GetTrip(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	trip, err := a.bookingService(c).Get(s.UserID, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /api/trips
func (a API) CreateTrip(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var draft models.BookingDraft
	if !BindJSONOrError(c, &draft) {
		return
	}
	trip, err := a.bookingService(c).Create(s.UserID, draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// PUT /api/trips/:id/cancel
func (a API) CancelTrip(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	trip, err := a.bookingService(c).Cancel(s.UserID, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
