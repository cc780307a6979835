package models

import "testing"

func TestSortActivitiesByDateThenTime(t *testing.T) {
	list := []Activity{
		{ID: "late", Date: "2025-06-12", Time: "18:00"},
		{ID: "early", Date: "2025-06-11", Time: "09:00"},
		{ID: "noon", Date: "2025-06-12", Time: "12:00"},
	}
	SortActivities(list)

	want := []string{"early", "noon", "late"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, list[i].ID, id)
		}
	}
}

func TestSortAccommodationsByCheckIn(t *testing.T) {
	list := []Accommodation{
		{ID: "b", CheckIn: "2025-06-15"},
		{ID: "a", CheckIn: "2025-06-10"},
	}
	SortAccommodations(list)
	if list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("order = %s, %s", list[0].ID, list[1].ID)
	}
}

func TestSortTransportationByDepartureThenTime(t *testing.T) {
	list := []Transportation{
		{ID: "t3", DepartureDate: "2025-06-15", DepartureTime: "10:15"},
		{ID: "t1", DepartureDate: "2025-06-10", DepartureTime: "18:30"},
		{ID: "t2", DepartureDate: "2025-06-15", DepartureTime: "08:00"},
	}
	SortTransportation(list)

	want := []string{"t1", "t2", "t3"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, list[i].ID, id)
		}
	}
}

func TestApplyItineraryPatchKeepsAbsentFields(t *testing.T) {
	it := Itinerary{
		Name:        "Original",
		Destination: "Rome",
		StartDate:   "2025-06-10",
		EndDate:     "2025-06-24",
		TotalBudget: 3500,
		Notes:       "keep me",
	}

	name := "Renamed"
	budget := 4000.0
	out := ApplyItineraryPatch(it, ItineraryPatch{Name: &name, TotalBudget: &budget})

	if out.Name != "Renamed" || out.TotalBudget != 4000 {
		t.Fatalf("patched fields not applied: %+v", out)
	}
	if out.Destination != "Rome" || out.Notes != "keep me" || out.StartDate != "2025-06-10" {
		t.Fatalf("absent fields clobbered: %+v", out)
	}
}

func TestApplyItineraryPatchAllowsExplicitZero(t *testing.T) {
	notes := ""
	out := ApplyItineraryPatch(Itinerary{Notes: "old"}, ItineraryPatch{Notes: &notes})
	if out.Notes != "" {
		t.Fatalf("explicit empty notes not applied: %q", out.Notes)
	}
}

func TestValidTransportType(t *testing.T) {
	for _, ok := range []string{TransportFlight, TransportTrain, TransportCar, TransportBus, TransportOther} {
		if !ValidTransportType(ok) {
			t.Fatalf("%s rejected", ok)
		}
	}
	if ValidTransportType("boat") {
		t.Fatalf("boat accepted")
	}
}

func TestListingPriceValue(t *testing.T) {
	cases := map[string]int{
		"$120/night":   120,
		"$1,250/night": 1250,
		"free":         0,
		"":             0,
	}
	for price, want := range cases {
		if got := (Listing{Price: price}).PriceValue(); got != want {
			t.Fatalf("PriceValue(%q) = %d, want %d", price, got, want)
		}
	}
}
