package domain

import (
	"testing"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

func sampleTrip() models.Itinerary {
	return models.Itinerary{
		ID:          "it-1",
		Name:        "Summer in Italy",
		Destination: "Rome, Florence, Venice",
		StartDate:   "2025-06-10",
		EndDate:     "2025-06-24",
		Activities: []models.Activity{
			{ID: "a1", Name: "Colosseum Tour", Date: "2025-06-11", Time: "10:00", Cost: 45},
			{ID: "a2", Name: "Vatican Museums", Date: "2025-06-12", Time: "09:00", Cost: 35},
		},
		Accommodations: []models.Accommodation{
			{ID: "ac1", Name: "Hotel Roma", CheckIn: "2025-06-10", CheckOut: "2025-06-15", Cost: 650},
		},
		Transportation: []models.Transportation{
			{ID: "t1", Type: models.TransportFlight, DepartureDate: "2025-06-10", ArrivalDate: "2025-06-11", Cost: 950},
		},
		TotalBudget: 3500,
	}
}

func TestTripDaysInclusiveRange(t *testing.T) {
	days := TripDays(sampleTrip())
	if len(days) != 15 {
		t.Fatalf("expected 15 days, got %d", len(days))
	}
	if got := utils.FormatDate(days[0]); got != "2025-06-10" {
		t.Fatalf("first day = %s", got)
	}
	if got := utils.FormatDate(days[len(days)-1]); got != "2025-06-24" {
		t.Fatalf("last day = %s", got)
	}
}

func TestTripDaysReversedRangeIsEmpty(t *testing.T) {
	it := sampleTrip()
	it.StartDate, it.EndDate = it.EndDate, it.StartDate
	if days := TripDays(it); len(days) != 0 {
		t.Fatalf("reversed range produced %d days", len(days))
	}
}

func TestTripDaysBadDateIsEmpty(t *testing.T) {
	it := sampleTrip()
	it.StartDate = "not-a-date"
	if days := TripDays(it); len(days) != 0 {
		t.Fatalf("bad date produced %d days", len(days))
	}
}

func TestAccommodationsOnExcludesCheckOutDay(t *testing.T) {
	it := sampleTrip()

	checkIn, err := utils.ParseDate("2025-06-10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := AccommodationsOn(it, checkIn); len(got) != 1 {
		t.Fatalf("check-in day: expected 1 stay, got %d", len(got))
	}

	lastNight, err := utils.ParseDate("2025-06-14")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := AccommodationsOn(it, lastNight); len(got) != 1 {
		t.Fatalf("last night: expected 1 stay, got %d", len(got))
	}

	checkOut, err := utils.ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := AccommodationsOn(it, checkOut); len(got) != 0 {
		t.Fatalf("check-out day: expected no stays, got %d", len(got))
	}
}

func TestTransportationOnMatchesDepartureAndArrival(t *testing.T) {
	it := sampleTrip()

	dep, _ := utils.ParseDate("2025-06-10")
	if got := TransportationOn(it, dep); len(got) != 1 {
		t.Fatalf("departure day: got %d legs", len(got))
	}
	arr, _ := utils.ParseDate("2025-06-11")
	if got := TransportationOn(it, arr); len(got) != 1 {
		t.Fatalf("arrival day: got %d legs", len(got))
	}
	off, _ := utils.ParseDate("2025-06-13")
	if got := TransportationOn(it, off); len(got) != 0 {
		t.Fatalf("off day: got %d legs", len(got))
	}
}

func TestTotalSpentSumsEveryCost(t *testing.T) {
	if got := TotalSpent(sampleTrip()); got != 45+35+650+950 {
		t.Fatalf("TotalSpent = %v", got)
	}
}

func TestDuration(t *testing.T) {
	it := sampleTrip()
	if got := Duration(it); got != 15 {
		t.Fatalf("Duration = %d", got)
	}

	it.StartDate, it.EndDate = it.EndDate, it.StartDate
	if got := Duration(it); got != 15 {
		t.Fatalf("reversed Duration = %d", got)
	}

	it.StartDate = "garbage"
	if got := Duration(it); got != 0 {
		t.Fatalf("bad date Duration = %d", got)
	}
}

func TestDaySchedulesCoversEveryDay(t *testing.T) {
	it := sampleTrip()
	days := DaySchedules(it)
	if len(days) != 15 {
		t.Fatalf("expected 15 entries, got %d", len(days))
	}
	if days[0].Date != "2025-06-10" {
		t.Fatalf("first entry date = %s", days[0].Date)
	}
	// 2025-06-11 has the Colosseum tour, the hotel stay and the flight arrival.
	d := days[1]
	if len(d.Activities) != 1 || len(d.Accommodations) != 1 || len(d.Transportation) != 1 {
		t.Fatalf("2025-06-11 schedule = %d/%d/%d", len(d.Activities), len(d.Accommodations), len(d.Transportation))
	}
	day, _ := utils.ParseDate("2025-06-11")
	if !HasEventsOn(it, day) {
		t.Fatalf("expected events on 2025-06-11")
	}
}
