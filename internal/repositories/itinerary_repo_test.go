package repositories

import (
	"testing"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestItineraryRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, name, destination").
		WithArgs("it-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := ItineraryRepository{DB: db}
	if _, err := repo.Get("user-1", "it-1"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestItineraryRepoGetLoadsSubEntities(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, name, destination").
		WithArgs("it-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "destination", "start_date", "end_date", "total_budget", "notes"}).
			AddRow("it-1", "user-1", "Summer in Italy", "Rome", "2025-06-10", "2025-06-24", 3500.0, ""))

	mock.ExpectQuery("FROM itinerary_activities").
		WithArgs("it-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "activity_date", "activity_time", "location", "cost", "notes", "booked"}).
			AddRow("a1", "Colosseum Tour", "2025-06-11", "10:00", "Rome", 45.0, "", true))

	mock.ExpectQuery("FROM itinerary_accommodations").
		WithArgs("it-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "check_in", "check_out", "location", "cost", "confirmation", "notes"}))

	mock.ExpectQuery("FROM itinerary_transportation").
		WithArgs("it-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mode", "origin", "destination", "departure_date", "departure_time", "arrival_date", "arrival_time", "carrier", "confirmation", "cost", "notes"}))

	repo := ItineraryRepository{DB: db}
	it, err := repo.Get("user-1", "it-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(it.Activities) != 1 || it.Activities[0].Name != "Colosseum Tour" {
		t.Fatalf("activities not loaded: %+v", it.Activities)
	}
	if it.Accommodations == nil || it.Transportation == nil {
		t.Fatalf("empty sub-entity lists should not be nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestItineraryRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE itineraries").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ItineraryRepository{DB: db}
	err = repo.Update(models.Itinerary{ID: "it-1", UserID: "user-1", Name: "x"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestItineraryRepoPutActivityUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO itinerary_activities").
		WithArgs("a1", "it-1", "Tour", "2025-06-11", "10:00", "Rome", 45.0, "", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := ItineraryRepository{DB: db}
	a := models.Activity{ID: "a1", Name: "Tour", Date: "2025-06-11", Time: "10:00", Location: "Rome", Cost: 45, Booked: true}
	if err := repo.PutActivity("it-1", a); err != nil {
		t.Fatalf("PutActivity: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestItineraryRepoDeleteCascades(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM itineraries").
		WithArgs("it-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM itinerary_activities").
		WithArgs("it-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM itinerary_accommodations").
		WithArgs("it-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM itinerary_transportation").
		WithArgs("it-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := ItineraryRepository{DB: db}
	if err := repo.Delete("user-1", "it-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestItineraryRepoDeleteNotFoundRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM itineraries").
		WithArgs("it-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := ItineraryRepository{DB: db}
	if err := repo.Delete("user-1", "it-1"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
