package repositories

import (
	"database/sql"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `id, user_id, listing_id, listing_title, listing_image, location,
	check_in, check_out, guests, total_price, status, booked_at, COALESCE(special_requests, '')`

func (r BookingRepository) ListByUser(userID, status string) ([]models.TripBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM trip_bookings WHERE user_id = ?`
	args := []any{userID}
	if strings.TrimSpace(status) != "" {
		query += ` AND status = ?`
		args = append(args, strings.TrimSpace(status))
	}
	query += ` ORDER BY booked_at DESC, id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TripBooking
	for rows.Next() {
		var b models.TripBooking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ListingID, &b.ListingTitle, &b.ListingImage,
			&b.Location, &b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalPrice, &b.Status,
			&b.BookedAt, &b.SpecialRequests); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) Get(userID, id string) (models.TripBooking, error) {
	var b models.TripBooking
	err := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM trip_bookings WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&b.ID, &b.UserID, &b.ListingID, &b.ListingTitle, &b.ListingImage,
			&b.Location, &b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalPrice, &b.Status,
			&b.BookedAt, &b.SpecialRequests)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "trip"}
	}
	return b, err
}

func (r BookingRepository) Insert(b models.TripBooking) error {
	_, err := r.DB.Exec(`
		INSERT INTO trip_bookings (id, user_id, listing_id, listing_title, listing_image, location,
			check_in, check_out, guests, total_price, status, booked_at, special_requests)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.UserID, b.ListingID, b.ListingTitle, b.ListingImage, b.Location,
		b.CheckIn, b.CheckOut, b.Guests, b.TotalPrice, b.Status, b.BookedAt, b.SpecialRequests)
	return err
}

func (r BookingRepository) UpdateStatus(userID, id, status string) error {
	res, err := r.DB.Exec(`UPDATE trip_bookings SET status = ? WHERE id = ? AND user_id = ?`, status, id, userID)
	if err != nil {
		return err
	}
	return notFoundWhenZero(res, "trip")
}
