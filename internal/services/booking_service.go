package services

import (
	"fmt"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/google/uuid"
)

type BookingStore interface {
	ListByUser(userID, status string) ([]models.TripBooking, error)
	Get(userID, id string) (models.TripBooking, error)
	Insert(b models.TripBooking) error
	UpdateStatus(userID, id, status string) error
}

type BookingService struct {
	Store     BookingStore
	Listings  ListingSource
	RequestID string
}

func (s BookingService) ListForUser(userID, status string) ([]models.TripBooking, error) {
	out, err := s.Store.ListByUser(userID, status)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s BookingService) Get(userID, id string) (models.TripBooking, error) {
	b, err := s.Store.Get(userID, id)
	if err != nil {
		return b, storeErr(err)
	}
	return b, nil
}

// Create books a stay. The listing must exist; its title, image and
// location are copied onto the booking.
func (s BookingService) Create(userID string, draft models.BookingDraft) (models.TripBooking, error) {
	if strings.TrimSpace(draft.ListingID) == "" {
		return models.TripBooking{}, domain.ValidationError{Field: "listingId", Msg: "required"}
	}
	if _, err := requireDate("checkIn", draft.CheckIn); err != nil {
		return models.TripBooking{}, err
	}
	if _, err := requireDate("checkOut", draft.CheckOut); err != nil {
		return models.TripBooking{}, err
	}
	if draft.Guests < 1 {
		return models.TripBooking{}, domain.ValidationError{Field: "guests", Msg: "must be at least 1"}
	}
	if draft.TotalPrice <= 0 {
		return models.TripBooking{}, domain.ValidationError{Field: "totalPrice", Msg: "must be positive"}
	}

	listing, err := s.Listings.GetByID(draft.ListingID)
	if err != nil {
		return models.TripBooking{}, storeErr(err)
	}

	b := models.TripBooking{
		ID:              uuid.NewString(),
		UserID:          userID,
		ListingID:       listing.ID,
		ListingTitle:    listing.Title,
		ListingImage:    listing.PictureURL,
		Location:        listing.Location,
		CheckIn:         strings.TrimSpace(draft.CheckIn),
		CheckOut:        strings.TrimSpace(draft.CheckOut),
		Guests:          draft.Guests,
		TotalPrice:      draft.TotalPrice,
		Status:          models.BookingUpcoming,
		BookedAt:        utils.FormatDateTime(utils.NowUTC()),
		SpecialRequests: draft.SpecialRequests,
	}

	if err := s.Store.Insert(b); err != nil {
		return models.TripBooking{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("id=%s listing=%s user=%s", b.ID, b.ListingID, userID))
	return b, nil
}

// Cancel moves an upcoming booking to cancelled. Anything else conflicts.
func (s BookingService) Cancel(userID, id string) (models.TripBooking, error) {
	b, err := s.Store.Get(userID, id)
	if err != nil {
		return b, storeErr(err)
	}
	if b.Status != models.BookingUpcoming {
		return b, domain.ConflictError{Resource: "trip", Msg: "only upcoming trips can be cancelled"}
	}
	if err := s.Store.UpdateStatus(userID, id, models.BookingCancelled); err != nil {
		return b, storeErr(err)
	}
	b.Status = models.BookingCancelled
	utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("id=%s user=%s", id, userID))
	return b, nil
}
