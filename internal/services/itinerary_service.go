package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/google/uuid"
)

// ItineraryStore is the persistence collaborator behind the itinerary
// service. Two implementations exist: the MySQL repository and the
// in-memory fixture store.
type ItineraryStore interface {
	ListByUser(userID string) ([]models.Itinerary, error)
	Get(userID, id string) (models.Itinerary, error)
	Insert(it models.Itinerary) error
	Update(it models.Itinerary) error
	Delete(userID, id string) error

	PutActivity(itineraryID string, a models.Activity) error
	DeleteActivity(itineraryID, activityID string) error
	PutAccommodation(itineraryID string, a models.Accommodation) error
	DeleteAccommodation(itineraryID, accommodationID string) error
	PutTransportation(itineraryID string, t models.Transportation) error
	DeleteTransportation(itineraryID, transportID string) error
}

// ItineraryService validates and scopes every operation by the calling
// user. Identifiers are assigned here, never taken from the caller.
type ItineraryService struct {
	Store     ItineraryStore
	RequestID string
}

func (s ItineraryService) ListForUser(userID string) ([]models.Itinerary, error) {
	out, err := s.Store.ListByUser(userID)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s ItineraryService) Get(userID, id string) (models.Itinerary, error) {
	it, err := s.Store.Get(userID, id)
	if err != nil {
		return it, storeErr(err)
	}
	return it, nil
}

func (s ItineraryService) Create(userID string, draft models.ItineraryDraft) (models.Itinerary, error) {
	if err := validateDates(draft.Name, draft.Destination, draft.StartDate, draft.EndDate); err != nil {
		return models.Itinerary{}, err
	}

	it := models.Itinerary{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           strings.TrimSpace(draft.Name),
		Destination:    strings.TrimSpace(draft.Destination),
		StartDate:      strings.TrimSpace(draft.StartDate),
		EndDate:        strings.TrimSpace(draft.EndDate),
		Activities:     []models.Activity{},
		Accommodations: []models.Accommodation{},
		Transportation: []models.Transportation{},
		TotalBudget:    draft.TotalBudget,
		Notes:          draft.Notes,
	}

	if err := s.Store.Insert(it); err != nil {
		return models.Itinerary{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "itinerary", "create", fmt.Sprintf("id=%s user=%s", it.ID, userID))
	return it, nil
}

func (s ItineraryService) Update(userID, id string, patch models.ItineraryPatch) (models.Itinerary, error) {
	existing, err := s.Store.Get(userID, id)
	if err != nil {
		return models.Itinerary{}, storeErr(err)
	}

	merged := models.ApplyItineraryPatch(existing, patch)
	if err := validateDates(merged.Name, merged.Destination, merged.StartDate, merged.EndDate); err != nil {
		return models.Itinerary{}, err
	}

	if err := s.Store.Update(merged); err != nil {
		return models.Itinerary{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "itinerary", "update", fmt.Sprintf("id=%s user=%s", id, userID))
	return merged, nil
}

func (s ItineraryService) Delete(userID, id string) error {
	if err := s.Store.Delete(userID, id); err != nil {
		return storeErr(err)
	}
	utils.LogEvent(s.RequestID, "itinerary", "delete", fmt.Sprintf("id=%s user=%s", id, userID))
	return nil
}

// AddActivity assigns a fresh id, then stores and re-sorts the list.
func (s ItineraryService) AddActivity(userID, itineraryID string, a models.Activity) (models.Activity, error) {
	if _, err := s.Store.Get(userID, itineraryID); err != nil {
		return models.Activity{}, storeErr(err)
	}
	if err := validateActivity(a); err != nil {
		return models.Activity{}, err
	}
	a.ID = uuid.NewString()
	a = normalizeActivity(a)
	if err := s.Store.PutActivity(itineraryID, a); err != nil {
		return models.Activity{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "activity", "add", fmt.Sprintf("itinerary=%s id=%s", itineraryID, a.ID))
	return a, nil
}

func (s ItineraryService) UpdateActivity(userID, itineraryID, activityID string, a models.Activity) (models.Activity, error) {
	it, err := s.Store.Get(userID, itineraryID)
	if err != nil {
		return models.Activity{}, storeErr(err)
	}
	if !activityExists(it, activityID) {
		return models.Activity{}, domain.NotFoundError{Resource: "activity"}
	}
	if err := validateActivity(a); err != nil {
		return models.Activity{}, err
	}
	a.ID = activityID
	a = normalizeActivity(a)
	if err := s.Store.PutActivity(itineraryID, a); err != nil {
		return models.Activity{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "activity", "update", fmt.Sprintf("itinerary=%s id=%s", itineraryID, activityID))
	return a, nil
}

func (s ItineraryService) DeleteActivity(userID, itineraryID, activityID string) error {
	if _, err := s.Store.Get(userID, itineraryID); err != nil {
		return storeErr(err)
	}
	if err := s.Store.DeleteActivity(itineraryID, activityID); err != nil {
		return storeErr(err)
	}
	utils.LogEvent(s.RequestID, "activity", "delete", fmt.Sprintf("itinerary=%s id=%s", itineraryID, activityID))
	return nil
}

func (s ItineraryService) AddAccommodation(userID, itineraryID string, a models.Accommodation) (models.Accommodation, error) {
	if _, err := s.Store.Get(userID, itineraryID); err != nil {
		return models.Accommodation{}, storeErr(err)
	}
	if err := validateAccommodation(a); err != nil {
		return models.Accommodation{}, err
	}
	a.ID = uuid.NewString()
	if err := s.Store.PutAccommodation(itineraryID, a); err != nil {
		return models.Accommodation{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "accommodation", "add", fmt.Sprintf("itinerary=%s id=%s", itineraryID, a.ID))
	return a, nil
}

func (s ItineraryService) UpdateAccommodation(userID, itineraryID, accommodationID string, a models.Accommodation) (models.Accommodation, error) {
	it, err := s.Store.Get(userID, itineraryID)
	if err != nil {
		return models.Accommodation{}, storeErr(err)
	}
	if !accommodationExists(it, accommodationID) {
		return models.Accommodation{}, domain.NotFoundError{Resource: "accommodation"}
	}
	if err := validateAccommodation(a); err != nil {
		return models.Accommodation{}, err
	}
	a.ID = accommodationID
	if err := s.Store.PutAccommodation(itineraryID, a); err != nil {
		return models.Accommodation{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "accommodation", "update", fmt.Sprintf("itinerary=%s id=%s", itineraryID, accommodationID))
	return a, nil
}

func (s ItineraryService) DeleteAccommodation(userID, itineraryID, accommodationID string) error {
	if _, err := s.Store.Get(userID, itineraryID); err != nil {
		return storeErr(err)
	}
	if err := s.Store.DeleteAccommodation(itineraryID, accommodationID); err != nil {
		return storeErr(err)
	}
	utils.LogEvent(s.RequestID, "accommodation", "delete", fmt.Sprintf("itinerary=%s id=%s", itineraryID, accommodationID))
	return nil
}

func (s ItineraryService) AddTransportation(userID, itineraryID string, t models.Transportation) (models.Transportation, error) {
	if _, err := s.Store.Get(userID, itineraryID); err != nil {
		return models.Transportation{}, storeErr(err)
	}
	if err := validateTransportation(t); err != nil {
		return models.Transportation{}, err
	}
	t.ID = uuid.NewString()
	t = normalizeTransportation(t)
	if err := s.Store.PutTransportation(itineraryID, t); err != nil {
		return models.Transportation{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "transportation", "add", fmt.Sprintf("itinerary=%s id=%s", itineraryID, t.ID))
	return t, nil
}

func (s ItineraryService) UpdateTransportation(userID, itineraryID, transportID string, t models.Transportation) (models.Transportation, error) {
	it, err := s.Store.Get(userID, itineraryID)
	if err != nil {
		return models.Transportation{}, storeErr(err)
	}
	if !transportationExists(it, transportID) {
		return models.Transportation{}, domain.NotFoundError{Resource: "transportation"}
	}
	if err := validateTransportation(t); err != nil {
		return models.Transportation{}, err
	}
	t.ID = transportID
	t = normalizeTransportation(t)
	if err := s.Store.PutTransportation(itineraryID, t); err != nil {
		return models.Transportation{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "transportation", "update", fmt.Sprintf("itinerary=%s id=%s", itineraryID, transportID))
	return t, nil
}

func (s ItineraryService) DeleteTransportation(userID, itineraryID, transportID string) error {
	if _, err := s.Store.Get(userID, itineraryID); err != nil {
		return storeErr(err)
	}
	if err := s.Store.DeleteTransportation(itineraryID, transportID); err != nil {
		return storeErr(err)
	}
	utils.LogEvent(s.RequestID, "transportation", "delete", fmt.Sprintf("itinerary=%s id=%s", itineraryID, transportID))
	return nil
}

// validateDates covers the required itinerary fields plus the date-order
// rule: a reversed range is rejected here so the derived views never have
// to reconcile their disagreement over it.
func validateDates(name, destination, startDate, endDate string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	if strings.TrimSpace(destination) == "" {
		return domain.ValidationError{Field: "destination", Msg: "required"}
	}
	start, err := requireDate("startDate", startDate)
	if err != nil {
		return err
	}
	end, err := requireDate("endDate", endDate)
	if err != nil {
		return err
	}
	if start.After(end) {
		return domain.ValidationError{Field: "endDate", Msg: "must not be before startDate"}
	}
	return nil
}

func validateActivity(a models.Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	if _, err := requireDate("date", a.Date); err != nil {
		return err
	}
	return nil
}

func validateAccommodation(a models.Accommodation) error {
	if strings.TrimSpace(a.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	if _, err := requireDate("checkIn", a.CheckIn); err != nil {
		return err
	}
	if _, err := requireDate("checkOut", a.CheckOut); err != nil {
		return err
	}
	return nil
}

func validateTransportation(t models.Transportation) error {
	if !models.ValidTransportType(t.Type) {
		return domain.ValidationError{Field: "type", Msg: "must be flight, train, car, bus or other"}
	}
	if strings.TrimSpace(t.From) == "" {
		return domain.ValidationError{Field: "from", Msg: "required"}
	}
	if strings.TrimSpace(t.To) == "" {
		return domain.ValidationError{Field: "to", Msg: "required"}
	}
	if _, err := requireDate("departureDate", t.DepartureDate); err != nil {
		return err
	}
	if _, err := requireDate("arrivalDate", t.ArrivalDate); err != nil {
		return err
	}
	return nil
}

func requireDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, domain.ValidationError{Field: field, Msg: "required"}
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, domain.ValidationError{Field: field, Msg: "must be YYYY-MM-DD", Err: err}
	}
	return t, nil
}

func normalizeActivity(a models.Activity) models.Activity {
	if strings.TrimSpace(a.Time) == "" {
		a.Time = "00:00"
	}
	return a
}

func normalizeTransportation(t models.Transportation) models.Transportation {
	if strings.TrimSpace(t.DepartureTime) == "" {
		t.DepartureTime = "00:00"
	}
	if strings.TrimSpace(t.ArrivalTime) == "" {
		t.ArrivalTime = "00:00"
	}
	return t
}

func activityExists(it models.Itinerary, id string) bool {
	for _, a := range it.Activities {
		if a.ID == id {
			return true
		}
	}
	return false
}

func accommodationExists(it models.Itinerary, id string) bool {
	for _, a := range it.Accommodations {
		if a.ID == id {
			return true
		}
	}
	return false
}

func transportationExists(it models.Itinerary, id string) bool {
	for _, t := range it.Transportation {
		if t.ID == id {
			return true
		}
	}
	return false
}

// storeErr passes typed domain errors through and wraps everything else as
// a transient persistence failure.
func storeErr(err error) error {
	var nf domain.NotFoundError
	var val domain.ValidationError
	var conf domain.ConflictError
	if errors.As(err, &nf) || errors.As(err, &val) || errors.As(err, &conf) {
		return err
	}
	return domain.TransientError{Msg: "itinerary store unavailable", Err: err}
}
