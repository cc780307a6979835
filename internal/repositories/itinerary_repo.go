package repositories

import (
	"database/sql"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// ItineraryRepository is the MySQL-backed itinerary store. Sub-entity
// lists are read back ORDER BY their natural ordering, so persisted
// itineraries always come out sorted.
type ItineraryRepository struct {
	DB *sql.DB
}

func (r ItineraryRepository) ListByUser(userID string) ([]models.Itinerary, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, name, destination, start_date, end_date, total_budget, notes
		FROM itineraries
		WHERE user_id = ?
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Itinerary
	for rows.Next() {
		var it models.Itinerary
		if err := rows.Scan(&it.ID, &it.UserID, &it.Name, &it.Destination,
			&it.StartDate, &it.EndDate, &it.TotalBudget, &it.Notes); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.loadSubEntities(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r ItineraryRepository) Get(userID, id string) (models.Itinerary, error) {
	var it models.Itinerary
	err := r.DB.QueryRow(`
		SELECT id, user_id, name, destination, start_date, end_date, total_budget, notes
		FROM itineraries
		WHERE id = ? AND user_id = ?
	`, id, userID).Scan(&it.ID, &it.UserID, &it.Name, &it.Destination,
		&it.StartDate, &it.EndDate, &it.TotalBudget, &it.Notes)
	if err == sql.ErrNoRows {
		return it, domain.NotFoundError{Resource: "itinerary"}
	}
	if err != nil {
		return it, err
	}
	if err := r.loadSubEntities(&it); err != nil {
		return it, err
	}
	return it, nil
}

func (r ItineraryRepository) Insert(it models.Itinerary) error {
	_, err := r.DB.Exec(`
		INSERT INTO itineraries (id, user_id, name, destination, start_date, end_date, total_budget, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, it.ID, it.UserID, it.Name, it.Destination, it.StartDate, it.EndDate, it.TotalBudget, it.Notes)
	return err
}

func (r ItineraryRepository) Update(it models.Itinerary) error {
	res, err := r.DB.Exec(`
		UPDATE itineraries
		SET name = ?, destination = ?, start_date = ?, end_date = ?, total_budget = ?, notes = ?, updated_at = NOW()
		WHERE id = ? AND user_id = ?
	`, it.Name, it.Destination, it.StartDate, it.EndDate, it.TotalBudget, it.Notes, it.ID, it.UserID)
	if err != nil {
		return err
	}
	return notFoundWhenZero(res, "itinerary")
}

func (r ItineraryRepository) Delete(userID, id string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM itineraries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "itinerary"}
	}

	for _, table := range []string{"itinerary_activities", "itinerary_accommodations", "itinerary_transportation"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE itinerary_id = ?`, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r ItineraryRepository) PutActivity(itineraryID string, a models.Activity) error {
	_, err := r.DB.Exec(`
		INSERT INTO itinerary_activities (id, itinerary_id, name, activity_date, activity_time, location, cost, notes, booked)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), activity_date = VALUES(activity_date), activity_time = VALUES(activity_time),
			location = VALUES(location), cost = VALUES(cost), notes = VALUES(notes), booked = VALUES(booked)
	`, a.ID, itineraryID, a.Name, a.Date, a.Time, a.Location, a.Cost, a.Notes, a.Booked)
	return err
}

func (r ItineraryRepository) DeleteActivity(itineraryID, activityID string) error {
	res, err := r.DB.Exec(`DELETE FROM itinerary_activities WHERE id = ? AND itinerary_id = ?`, activityID, itineraryID)
	if err != nil {
		return err
	}
	return notFoundWhenZero(res, "activity")
}

func (r ItineraryRepository) PutAccommodation(itineraryID string, a models.Accommodation) error {
	_, err := r.DB.Exec(`
		INSERT INTO itinerary_accommodations (id, itinerary_id, name, check_in, check_out, location, cost, confirmation, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), check_in = VALUES(check_in), check_out = VALUES(check_out),
			location = VALUES(location), cost = VALUES(cost), confirmation = VALUES(confirmation), notes = VALUES(notes)
	`, a.ID, itineraryID, a.Name, a.CheckIn, a.CheckOut, a.Location, a.Cost, a.Confirmation, a.Notes)
	return err
}

func (r ItineraryRepository) DeleteAccommodation(itineraryID, accommodationID string) error {
	res, err := r.DB.Exec(`DELETE FROM itinerary_accommodations WHERE id = ? AND itinerary_id = ?`, accommodationID, itineraryID)
	if err != nil {
		return err
	}
	return notFoundWhenZero(res, "accommodation")
}

func (r ItineraryRepository) PutTransportation(itineraryID string, t models.Transportation) error {
	_, err := r.DB.Exec(`
		INSERT INTO itinerary_transportation (id, itinerary_id, mode, origin, destination, departure_date, departure_time, arrival_date, arrival_time, carrier, confirmation, cost, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			mode = VALUES(mode), origin = VALUES(origin), destination = VALUES(destination),
			departure_date = VALUES(departure_date), departure_time = VALUES(departure_time),
			arrival_date = VALUES(arrival_date), arrival_time = VALUES(arrival_time),
			carrier = VALUES(carrier), confirmation = VALUES(confirmation), cost = VALUES(cost), notes = VALUES(notes)
	`, t.ID, itineraryID, t.Type, t.From, t.To, t.DepartureDate, t.DepartureTime,
		t.ArrivalDate, t.ArrivalTime, t.Carrier, t.Confirmation, t.Cost, t.Notes)
	return err
}

func (r ItineraryRepository) DeleteTransportation(itineraryID, transportID string) error {
	res, err := r.DB.Exec(`DELETE FROM itinerary_transportation WHERE id = ? AND itinerary_id = ?`, transportID, itineraryID)
	if err != nil {
		return err
	}
	return notFoundWhenZero(res, "transportation")
}

func (r ItineraryRepository) loadSubEntities(it *models.Itinerary) error {
	rows, err := r.DB.Query(`
		SELECT id, name, activity_date, activity_time, location, cost, notes, booked
		FROM itinerary_activities
		WHERE itinerary_id = ?
		ORDER BY activity_date, activity_time, id
	`, it.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	it.Activities = []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Date, &a.Time, &a.Location, &a.Cost, &a.Notes, &a.Booked); err != nil {
			return err
		}
		it.Activities = append(it.Activities, a)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	accRows, err := r.DB.Query(`
		SELECT id, name, check_in, check_out, location, cost, confirmation, notes
		FROM itinerary_accommodations
		WHERE itinerary_id = ?
		ORDER BY check_in, id
	`, it.ID)
	if err != nil {
		return err
	}
	defer accRows.Close()
	it.Accommodations = []models.Accommodation{}
	for accRows.Next() {
		var a models.Accommodation
		if err := accRows.Scan(&a.ID, &a.Name, &a.CheckIn, &a.CheckOut, &a.Location, &a.Cost, &a.Confirmation, &a.Notes); err != nil {
			return err
		}
		it.Accommodations = append(it.Accommodations, a)
	}
	if err := accRows.Err(); err != nil {
		return err
	}

	trRows, err := r.DB.Query(`
		SELECT id, mode, origin, destination, departure_date, departure_time, arrival_date, arrival_time, carrier, confirmation, cost, notes
		FROM itinerary_transportation
		WHERE itinerary_id = ?
		ORDER BY departure_date, departure_time, id
	`, it.ID)
	if err != nil {
		return err
	}
	defer trRows.Close()
	it.Transportation = []models.Transportation{}
	for trRows.Next() {
		var t models.Transportation
		if err := trRows.Scan(&t.ID, &t.Type, &t.From, &t.To, &t.DepartureDate, &t.DepartureTime,
			&t.ArrivalDate, &t.ArrivalTime, &t.Carrier, &t.Confirmation, &t.Cost, &t.Notes); err != nil {
			return err
		}
		it.Transportation = append(it.Transportation, t)
	}
	return trRows.Err()
}

func notFoundWhenZero(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
