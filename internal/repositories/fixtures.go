package repositories

import "tripplanner/internal/domain/models"

// FixtureUserID owns the demo data seeded in fixture store mode.
const FixtureUserID = "demo"

// NewFixtureStore returns a memory store pre-seeded with a demo trip so the
// API has something to show without a database behind it.
func NewFixtureStore() *MemoryStore {
	s := NewMemoryStore()
	_ = s.Insert(models.Itinerary{
		ID:          "fixture-italy",
		UserID:      FixtureUserID,
		Name:        "Summer in Italy",
		Destination: "Rome, Florence, Venice",
		StartDate:   "2025-06-10",
		EndDate:     "2025-06-24",
		Activities: []models.Activity{
			{
				ID: "a1", Name: "Colosseum Tour", Date: "2025-06-11", Time: "10:00",
				Location: "Rome, Italy", Cost: 45, Notes: "Meet guide at south entrance", Booked: true,
			},
			{
				ID: "a2", Name: "Vatican Museums", Date: "2025-06-12", Time: "09:00",
				Location: "Vatican City", Cost: 35, Notes: "Skip the line tickets", Booked: true,
			},
		},
		Accommodations: []models.Accommodation{
			{
				ID: "ac1", Name: "Hotel Roma", CheckIn: "2025-06-10", CheckOut: "2025-06-15",
				Location: "Rome, Italy", Cost: 650, Confirmation: "HR-123456", Notes: "Breakfast included",
			},
			{
				ID: "ac2", Name: "Florence Apartment", CheckIn: "2025-06-15", CheckOut: "2025-06-20",
				Location: "Florence, Italy", Cost: 580, Confirmation: "FL-789012", Notes: "Key pickup at agency next door",
			},
		},
		Transportation: []models.Transportation{
			{
				ID: "t1", Type: models.TransportFlight, From: "JFK Airport", To: "Rome Fiumicino Airport",
				DepartureDate: "2025-06-10", DepartureTime: "18:30", ArrivalDate: "2025-06-11", ArrivalTime: "08:45",
				Carrier: "Alitalia", Confirmation: "AL-345678", Cost: 950, Notes: "Economy Plus",
			},
			{
				ID: "t2", Type: models.TransportTrain, From: "Rome", To: "Florence",
				DepartureDate: "2025-06-15", DepartureTime: "10:15", ArrivalDate: "2025-06-15", ArrivalTime: "11:45",
				Carrier: "Trenitalia", Confirmation: "TI-901234", Cost: 65, Notes: "First class",
			},
		},
		TotalBudget: 3500,
		Notes:       "Family vacation, focus on history and food",
	})
	return s
}

// NewFixtureListings returns a small scraped-style listing set for fixture
// store mode.
func NewFixtureListings() *MemoryListings {
	return NewMemoryListings([]models.Listing{
		{
			ID: "lst-001", Title: "Trastevere loft with terrace",
			URL:        "https://example.com/listings/lst-001",
			PictureURL: "https://example.com/img/lst-001.jpg",
			Price:      "$140/night", Rating: 4.8,
			Location: "Rome, Italy", Country: "Italy",
			Features: []string{"wifi", "kitchen", "air conditioning"},
		},
		{
			ID: "lst-002", Title: "Oltrarno studio near Ponte Vecchio",
			URL:        "https://example.com/listings/lst-002",
			PictureURL: "https://example.com/img/lst-002.jpg",
			Price:      "$95/night", Rating: 4.6,
			Location: "Florence, Italy", Country: "Italy",
			Features: []string{"wifi", "washer"},
		},
		{
			ID: "lst-003", Title: "Canal-view apartment in Dorsoduro",
			URL:        "https://example.com/listings/lst-003",
			PictureURL: "https://example.com/img/lst-003.jpg",
			Price:      "$210/night", Rating: 4.9,
			Location: "Venice, Italy", Country: "Italy",
			Features: []string{"wifi", "kitchen", "balcony"},
		},
	})
}
