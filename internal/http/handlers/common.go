package handlers

import (
	"net/http"

	"tripplanner/internal/config"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// API bundles the injected collaborators for all handlers. Services are
// built per request so the request id flows into the log lines.
type API struct {
	Env      config.Env
	Store    services.ItineraryStore
	Listings services.ListingSource
	Bookings services.BookingStore
	Users    repositories.UserRepository
}

func (a API) itineraries(c *gin.Context) services.ItineraryService {
	return services.ItineraryService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a API) listingService(c *gin.Context) services.ListingService {
	return services.ListingService{Source: a.Listings, RequestID: middleware.GetRequestID(c)}
}

func (a API) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{Store: a.Bookings, Listings: a.Listings, RequestID: middleware.GetRequestID(c)}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "bad_request", "empty body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid payload: "+err.Error())
		return false
	}
	return true
}

// session aborts with 401 when RequireAuth did not run.
func session(c *gin.Context) (middleware.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "missing session")
		return s, false
	}
	return s, true
}
