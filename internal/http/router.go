package http

import (
	"time"

	"tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes onto a fresh engine.
func NewRouter(api handlers.API) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     api.Env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "route not found", "code": "not_found"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.Health)
		apiGroup.GET("/db-check", api.DBCheck)

		auth := apiGroup.Group("/auth")
		{
			auth.POST("/register", api.Register)
			auth.POST("/login", api.Login)
		}

		listings := apiGroup.Group("/listings")
		{
			listings.GET("", api.SearchListings)
			listings.GET("/:id", api.GetListing)
		}

		secured := apiGroup.Group("")
		secured.Use(middleware.RequireAuth([]byte(api.Env.JWTSecret)))
		{
			itineraries := secured.Group("/itineraries")
			{
				itineraries.GET("", api.ListItineraries)
				itineraries.POST("", api.CreateItinerary)
				itineraries.GET("/:id", api.GetItinerary)
				itineraries.PUT("/:id", api.UpdateItinerary)
				itineraries.DELETE("/:id", api.DeleteItinerary)
				itineraries.GET("/:id/days", api.GetItineraryDays)
				itineraries.GET("/:id/summary", api.GetItinerarySummaryPDF)

				itineraries.POST("/:id/activities", api.AddActivity)
				itineraries.PUT("/:id/activities/:activityId", api.UpdateActivity)
				itineraries.DELETE("/:id/activities/:activityId", api.DeleteActivity)

				itineraries.POST("/:id/accommodations", api.AddAccommodation)
				itineraries.PUT("/:id/accommodations/:accommodationId", api.UpdateAccommodation)
				itineraries.DELETE("/:id/accommodations/:accommodationId", api.DeleteAccommodation)

				itineraries.POST("/:id/transportation", api.AddTransportation)
				itineraries.PUT("/:id/transportation/:transportId", api.UpdateTransportation)
				itineraries.DELETE("/:id/transportation/:transportId", api.DeleteTransportation)
			}

			trips := secured.Group("/trips")
			{
				trips.GET("", api.ListTrips)
				trips.POST("", api.CreateTrip)
				trips.GET("/:id", api.GetTrip)
				trips.PUT("/:id/cancel", api.CancelTrip)
			}
		}
	}

	return r
}
