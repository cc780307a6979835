package models

import "sort"

// Transportation mode tags accepted on the wire.
const (
	TransportFlight = "flight"
	TransportTrain  = "train"
	TransportCar    = "car"
	TransportBus    = "bus"
	TransportOther  = "other"
)

func ValidTransportType(t string) bool {
	switch t {
	case TransportFlight, TransportTrain, TransportCar, TransportBus, TransportOther:
		return true
	}
	return false
}

// Itinerary aggregates a planned trip. Dates are calendar dates in
// YYYY-MM-DD form, inclusive on both ends. Sub-entity lists are kept in
// their natural order after every mutation.
type Itinerary struct {
	ID             string           `json:"id"`
	UserID         string           `json:"userId"`
	Name           string           `json:"name"`
	Destination    string           `json:"destination"`
	StartDate      string           `json:"startDate"`
	EndDate        string           `json:"endDate"`
	Activities     []Activity       `json:"activities"`
	Accommodations []Accommodation  `json:"accommodations"`
	Transportation []Transportation `json:"transportation"`
	TotalBudget    float64          `json:"totalBudget"`
	Notes          string           `json:"notes"`
}

type Activity struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Location string  `json:"location"`
	Cost     float64 `json:"cost"`
	Notes    string  `json:"notes"`
	Booked   bool    `json:"booked"`
}

type Accommodation struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	Location     string  `json:"location"`
	Cost         float64 `json:"cost"`
	Confirmation string  `json:"confirmation"`
	Notes        string  `json:"notes"`
}

type Transportation struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureDate string  `json:"departureDate"`
	DepartureTime string  `json:"departureTime"`
	ArrivalDate   string  `json:"arrivalDate"`
	ArrivalTime   string  `json:"arrivalTime"`
	Carrier       string  `json:"carrier"`
	Confirmation  string  `json:"confirmation"`
	Cost          float64 `json:"cost"`
	Notes         string  `json:"notes"`
}

// ItineraryDraft carries the caller-supplied fields for create.
type ItineraryDraft struct {
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TotalBudget float64 `json:"totalBudget"`
	Notes       string  `json:"notes"`
}

// ItineraryPatch distinguishes absent fields from zero values so a partial
// update never clobbers what the caller did not send.
type ItineraryPatch struct {
	Name        *string  `json:"name"`
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	TotalBudget *float64 `json:"totalBudget"`
	Notes       *string  `json:"notes"`
}

func ApplyItineraryPatch(it Itinerary, p ItineraryPatch) Itinerary {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Destination != nil {
		it.Destination = *p.Destination
	}
	if p.StartDate != nil {
		it.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		it.EndDate = *p.EndDate
	}
	if p.TotalBudget != nil {
		it.TotalBudget = *p.TotalBudget
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
	return it
}

// ISO dates and HH:MM times order correctly as strings, so the natural
// orderings below are plain lexicographic comparisons.

func SortActivities(list []Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
}

func SortAccommodations(list []Accommodation) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CheckIn < list[j].CheckIn
	})
}

func SortTransportation(list []Transportation) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DepartureDate != list[j].DepartureDate {
			return list[i].DepartureDate < list[j].DepartureDate
		}
		return list[i].DepartureTime < list[j].DepartureTime
	})
}
