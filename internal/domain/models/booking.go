package models

// Booking statuses.
const (
	BookingUpcoming  = "upcoming"
	BookingCancelled = "cancelled"
)

// TripBooking is a stay booked against a listing. Listing title, image and
// location are denormalized at create time so the booking survives the
// listing being re-scraped or removed.
type TripBooking struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	ListingID       string  `json:"listingId"`
	ListingTitle    string  `json:"listingTitle"`
	ListingImage    string  `json:"listingImage"`
	Location        string  `json:"location"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	BookedAt        string  `json:"bookedAt"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
}

// BookingDraft carries the caller-supplied fields for create.
type BookingDraft struct {
	ListingID       string  `json:"listingId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"totalPrice"`
	SpecialRequests string  `json:"specialRequests"`
}
