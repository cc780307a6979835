package domain

import (
	"math"
	"time"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// Derived views over an itinerary. All of these are pure and synchronous;
// they recompute from the entity on every call.

// TripDays returns every calendar date from start to end inclusive. A
// reversed range yields an empty slice: the loop only walks forward. Bad
// dates that slipped past validation also yield an empty slice.
func TripDays(it models.Itinerary) []time.Time {
	start, err := utils.ParseDate(it.StartDate)
	if err != nil {
		return nil
	}
	end, err := utils.ParseDate(it.EndDate)
	if err != nil {
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ActivitiesOn returns the activities scheduled on exactly the given day.
func ActivitiesOn(it models.Itinerary, day time.Time) []models.Activity {
	dayStr := utils.FormatDate(day)
	var out []models.Activity
	for _, a := range it.Activities {
		if a.Date == dayStr {
			out = append(out, a)
		}
	}
	return out
}

// AccommodationsOn returns the stays covering the given day. The interval
// is [checkIn, checkOut): the check-out day itself is excluded, modeling a
// same-day turnover.
func AccommodationsOn(it models.Itinerary, day time.Time) []models.Accommodation {
	dayStr := utils.FormatDate(day)
	var out []models.Accommodation
	for _, a := range it.Accommodations {
		if dayStr >= a.CheckIn && dayStr < a.CheckOut {
			out = append(out, a)
		}
	}
	return out
}

// TransportationOn returns the legs departing or arriving on the given day.
func TransportationOn(it models.Itinerary, day time.Time) []models.Transportation {
	dayStr := utils.FormatDate(day)
	var out []models.Transportation
	for _, t := range it.Transportation {
		if t.DepartureDate == dayStr || t.ArrivalDate == dayStr {
			out = append(out, t)
		}
	}
	return out
}

func HasEventsOn(it models.Itinerary, day time.Time) bool {
	return len(ActivitiesOn(it, day)) > 0 ||
		len(AccommodationsOn(it, day)) > 0 ||
		len(TransportationOn(it, day)) > 0
}

// TotalSpent sums every sub-entity cost.
func TotalSpent(it models.Itinerary) float64 {
	var total float64
	for _, a := range it.Activities {
		total += a.Cost
	}
	for _, a := range it.Accommodations {
		total += a.Cost
	}
	for _, t := range it.Transportation {
		total += t.Cost
	}
	return total
}

// Duration is the inclusive day count |end-start|+1. The absolute value
// keeps it positive even on a reversed range, which TripDays treats as
// empty; create-time validation rejects reversed ranges so stored data
// never hits the disagreement.
func Duration(it models.Itinerary) int {
	start, err := utils.ParseDate(it.StartDate)
	if err != nil {
		return 0
	}
	end, err := utils.ParseDate(it.EndDate)
	if err != nil {
		return 0
	}
	// Round absorbs the odd-length days a DST transition introduces.
	diff := math.Round(math.Abs(end.Sub(start).Hours() / 24))
	return int(diff) + 1
}

// DaySchedule is one timeline entry of the per-day view.
type DaySchedule struct {
	Date           string                  `json:"date"`
	Activities     []models.Activity       `json:"activities"`
	Accommodations []models.Accommodation  `json:"accommodations"`
	Transportation []models.Transportation `json:"transportation"`
}

// DaySchedules materializes the full trip timeline.
func DaySchedules(it models.Itinerary) []DaySchedule {
	days := TripDays(it)
	out := make([]DaySchedule, 0, len(days))
	for _, day := range days {
		out = append(out, DaySchedule{
			Date:           utils.FormatDate(day),
			Activities:     ActivitiesOn(it, day),
			Accommodations: AccommodationsOn(it, day),
			Transportation: TransportationOn(it, day),
		})
	}
	return out
}
