package repositories

import (
	"sync"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// MemoryStore is the in-memory itinerary data source. It backs tests and
// the fixture store mode, replacing the old implicit mock-data fallback
// with an explicit strategy implementation. It also carries the
// "currently selected" pointer from the store contract; the SQL store is
// stateless per request and has no equivalent.
type MemoryStore struct {
	mu          sync.Mutex
	itineraries []models.Itinerary
	selectedID  string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListByUser(userID string) ([]models.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Itinerary{}
	for _, it := range s.itineraries {
		if it.UserID == userID {
			out = append(out, cloneItinerary(it))
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(userID, id string) (models.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(userID, id)
	if idx < 0 {
		return models.Itinerary{}, domain.NotFoundError{Resource: "itinerary"}
	}
	return cloneItinerary(s.itineraries[idx]), nil
}

func (s *MemoryStore) Insert(it models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.itineraries = append(s.itineraries, cloneItinerary(it))
	return nil
}

func (s *MemoryStore) Update(it models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(it.UserID, it.ID)
	if idx < 0 {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	cur := &s.itineraries[idx]
	cur.Name = it.Name
	cur.Destination = it.Destination
	cur.StartDate = it.StartDate
	cur.EndDate = it.EndDate
	cur.TotalBudget = it.TotalBudget
	cur.Notes = it.Notes
	return nil
}

func (s *MemoryStore) Delete(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(userID, id)
	if idx < 0 {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	s.itineraries = append(s.itineraries[:idx], s.itineraries[idx+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	return nil
}

// Select marks an itinerary as the current one. Deleting it clears the
// pointer again.
func (s *MemoryStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

func (s *MemoryStore) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

func (s *MemoryStore) PutActivity(itineraryID string, a models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.byID(itineraryID)
	if it == nil {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	replaced := false
	for i := range it.Activities {
		if it.Activities[i].ID == a.ID {
			it.Activities[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		it.Activities = append(it.Activities, a)
	}
	models.SortActivities(it.Activities)
	return nil
}

func (s *MemoryStore) DeleteActivity(itineraryID, activityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.byID(itineraryID)
	if it == nil {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	for i := range it.Activities {
		if it.Activities[i].ID == activityID {
			it.Activities = append(it.Activities[:i], it.Activities[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "activity"}
}

func (s *MemoryStore) PutAccommodation(itineraryID string, a models.Accommodation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.byID(itineraryID)
	if it == nil {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	replaced := false
	for i := range it.Accommodations {
		if it.Accommodations[i].ID == a.ID {
			it.Accommodations[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		it.Accommodations = append(it.Accommodations, a)
	}
	models.SortAccommodations(it.Accommodations)
	return nil
}

func (s *MemoryStore) DeleteAccommodation(itineraryID, accommodationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.byID(itineraryID)
	if it == nil {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	for i := range it.Accommodations {
		if it.Accommodations[i].ID == accommodationID {
			it.Accommodations = append(it.Accommodations[:i], it.Accommodations[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "accommodation"}
}

func (s *MemoryStore) PutTransportation(itineraryID string, t models.Transportation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.byID(itineraryID)
	if it == nil {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	replaced := false
	for i := range it.Transportation {
		if it.Transportation[i].ID == t.ID {
			it.Transportation[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		it.Transportation = append(it.Transportation, t)
	}
	models.SortTransportation(it.Transportation)
	return nil
}

func (s *MemoryStore) DeleteTransportation(itineraryID, transportID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.byID(itineraryID)
	if it == nil {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	for i := range it.Transportation {
		if it.Transportation[i].ID == transportID {
			it.Transportation = append(it.Transportation[:i], it.Transportation[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "transportation"}
}

func (s *MemoryStore) indexOf(userID, id string) int {
	for i, it := range s.itineraries {
		if it.ID == id && it.UserID == userID {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) byID(id string) *models.Itinerary {
	for i := range s.itineraries {
		if s.itineraries[i].ID == id {
			return &s.itineraries[i]
		}
	}
	return nil
}

func cloneItinerary(it models.Itinerary) models.Itinerary {
	out := it
	out.Activities = append([]models.Activity{}, it.Activities...)
	out.Accommodations = append([]models.Accommodation{}, it.Accommodations...)
	out.Transportation = append([]models.Transportation{}, it.Transportation...)
	return out
}
