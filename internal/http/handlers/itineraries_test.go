package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripplanner/internal/config"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/repositories"

	"github.com/gin-gonic/gin"
)

func newTestRouter(store *repositories.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	api := API{Env: config.Env{}, Store: store}

	r := gin.New()
	r.Use(middleware.WithSession(middleware.Session{UserID: repositories.FixtureUserID, Role: "user"}))
	r.GET("/api/itineraries", api.ListItineraries)
	r.POST("/api/itineraries", api.CreateItinerary)
	r.GET("/api/itineraries/:id", api.GetItinerary)
	r.PUT("/api/itineraries/:id", api.UpdateItinerary)
	r.DELETE("/api/itineraries/:id", api.DeleteItinerary)
	r.GET("/api/itineraries/:id/days", api.GetItineraryDays)
	r.GET("/api/itineraries/:id/summary", api.GetItinerarySummaryPDF)
	r.POST("/api/itineraries/:id/activities", api.AddActivity)
	r.DELETE("/api/itineraries/:id/activities/:activityId", api.DeleteActivity)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListItinerariesReturnsFixture(t *testing.T) {
	r := newTestRouter(repositories.NewFixtureStore())

	w := doRequest(t, r, http.MethodGet, "/api/itineraries", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var list []models.Itinerary
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Summer in Italy" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestCreateItinerary(t *testing.T) {
	r := newTestRouter(repositories.NewMemoryStore())

	body := `{"name":"Weekend in Lisbon","destination":"Lisbon","startDate":"2025-09-05","endDate":"2025-09-07","totalBudget":800}`
	w := doRequest(t, r, http.MethodPost, "/api/itineraries", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var it models.Itinerary
	if err := json.Unmarshal(w.Body.Bytes(), &it); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if it.ID == "" || it.UserID != repositories.FixtureUserID {
		t.Fatalf("unexpected itinerary: %+v", it)
	}
}

func TestCreateItineraryValidationError(t *testing.T) {
	r := newTestRouter(repositories.NewMemoryStore())

	body := `{"name":"Backwards","destination":"Lisbon","startDate":"2025-09-07","endDate":"2025-09-05"}`
	w := doRequest(t, r, http.MethodPost, "/api/itineraries", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "validation_error") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestGetItineraryNotFound(t *testing.T) {
	r := newTestRouter(repositories.NewMemoryStore())

	w := doRequest(t, r, http.MethodGet, "/api/itineraries/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestUpdateItineraryPatch(t *testing.T) {
	r := newTestRouter(repositories.NewFixtureStore())

	w := doRequest(t, r, http.MethodPut, "/api/itineraries/fixture-italy", `{"name":"Renamed Trip"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var it models.Itinerary
	if err := json.Unmarshal(w.Body.Bytes(), &it); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if it.Name != "Renamed Trip" || it.Destination != "Rome, Florence, Venice" {
		t.Fatalf("patch result: %+v", it)
	}
}

func TestDeleteItinerary(t *testing.T) {
	r := newTestRouter(repositories.NewFixtureStore())

	w := doRequest(t, r, http.MethodDelete, "/api/itineraries/fixture-italy", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"deleted":true`) {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = doRequest(t, r, http.MethodGet, "/api/itineraries/fixture-italy", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status after delete = %d", w.Code)
	}
}

func TestAddActivityEndpoint(t *testing.T) {
	r := newTestRouter(repositories.NewFixtureStore())

	body := `{"name":"Gondola ride","date":"2025-06-21","time":"17:00","location":"Venice","cost":80}`
	w := doRequest(t, r, http.MethodPost, "/api/itineraries/fixture-italy/activities", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var a models.Activity
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.ID == "" {
		t.Fatalf("no id assigned: %+v", a)
	}
}

func TestDeleteActivityNotFound(t *testing.T) {
	r := newTestRouter(repositories.NewFixtureStore())

	w := doRequest(t, r, http.MethodDelete, "/api/itineraries/fixture-italy/activities/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestItineraryDaysEndpoint(t *testing.T) {
	r := newTestRouter(repositories.NewFixtureStore())

	w := doRequest(t, r, http.MethodGet, "/api/itineraries/fixture-italy/days", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var payload struct {
		Days       []json.RawMessage `json:"days"`
		Duration   int               `json:"duration"`
		TotalSpent float64           `json:"totalSpent"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Duration != 15 || len(payload.Days) != 15 {
		t.Fatalf("duration = %d, days = %d", payload.Duration, len(payload.Days))
	}
	if payload.TotalSpent != 45+35+650+580+950+65 {
		t.Fatalf("totalSpent = %v", payload.TotalSpent)
	}
}

func TestSummaryEndpointReturnsPDF(t *testing.T) {
	r := newTestRouter(repositories.NewFixtureStore())

	w := doRequest(t, r, http.MethodGet, "/api/itineraries/fixture-italy/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %s", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Fatalf("body is not a PDF")
	}
}
