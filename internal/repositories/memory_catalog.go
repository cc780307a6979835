package repositories

import (
	"sort"
	"strings"
	"sync"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// MemoryListings serves listings from a fixed slice. Fixture mode and the
// search tests run against it instead of the listings table.
type MemoryListings struct {
	listings []models.Listing
}

func NewMemoryListings(listings []models.Listing) *MemoryListings {
	return &MemoryListings{listings: listings}
}

func (m *MemoryListings) List(city string, limit int) ([]models.Listing, error) {
	out := []models.Listing{}
	needle := strings.ToLower(strings.TrimSpace(city))
	for _, l := range m.listings {
		if needle != "" && !strings.Contains(strings.ToLower(l.Location), needle) {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryListings) GetByID(id string) (models.Listing, error) {
	for _, l := range m.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, domain.NotFoundError{Resource: "listing"}
}

// MemoryBookings is the in-memory trip booking store.
type MemoryBookings struct {
	mu       sync.Mutex
	bookings []models.TripBooking
}

func NewMemoryBookings() *MemoryBookings {
	return &MemoryBookings{}
}

func (m *MemoryBookings) ListByUser(userID, status string) ([]models.TripBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.TripBooking{}
	for _, b := range m.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].BookedAt > out[j].BookedAt })
	return out, nil
}

func (m *MemoryBookings) Get(userID, id string) (models.TripBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.UserID == userID && b.ID == id {
			return b, nil
		}
	}
	return models.TripBooking{}, domain.NotFoundError{Resource: "trip"}
}

func (m *MemoryBookings) Insert(b models.TripBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings = append(m.bookings, b)
	return nil
}

func (m *MemoryBookings) UpdateStatus(userID, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.bookings {
		if m.bookings[i].UserID == userID && m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return domain.NotFoundError{Resource: "trip"}
}
