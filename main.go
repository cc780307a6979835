package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripplanner/internal/config"
	"tripplanner/internal/http/handlers"
	"tripplanner/internal/repositories"

	apihttp "tripplanner/internal/http"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	api := handlers.API{Env: env}
	switch env.StoreMode {
	case config.StoreModeFixture:
		log.Println("store mode: fixture (no database)")
		api.Store = repositories.NewFixtureStore()
		api.Listings = repositories.NewFixtureListings()
		api.Bookings = repositories.NewMemoryBookings()
	default:
		db := config.ConnectDB(env.DBDSN)
		defer config.CloseDB()
		api.Store = repositories.ItineraryRepository{DB: db}
		api.Listings = repositories.ListingRepository{DB: db}
		api.Bookings = repositories.BookingRepository{DB: db}
		api.Users = repositories.UserRepository{DB: db}
	}

	r := apihttp.NewRouter(api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
