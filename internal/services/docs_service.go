package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable trip summary. The Loader hook lets
// tests feed an itinerary in without a store behind it.
type DocsService struct {
	Itineraries ItineraryService
	RequestID   string
	Loader      func(userID, id string) (models.Itinerary, error)
}

func (s DocsService) GenerateSummary(userID, itineraryID string) ([]byte, string, error) {
	it, err := s.loadItinerary(userID, itineraryID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_summary", fmt.Sprintf("itinerary=%s", itineraryID))
	return buildSummaryPDF(it)
}

func (s DocsService) loadItinerary(userID, id string) (models.Itinerary, error) {
	if s.Loader != nil {
		return s.Loader(userID, id)
	}
	return s.Itineraries.Get(userID, id)
}

func buildSummaryPDF(it models.Itinerary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, it.Name)
	pdf.Ln(12)

	spent := domain.TotalSpent(it)
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Destination : %s", safe(it.Destination, "-")),
		fmt.Sprintf("Dates       : %s - %s (%d days)", it.StartDate, it.EndDate, domain.Duration(it)),
		fmt.Sprintf("Budget      : %s", utils.FormatUSD(it.TotalBudget)),
		fmt.Sprintf("Spent       : %s", utils.FormatUSD(spent)),
		fmt.Sprintf("Remaining   : %s", utils.FormatUSD(it.TotalBudget-spent)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	if strings.TrimSpace(it.Notes) != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, it.Notes, "", "", false)
		pdf.SetFont("Helvetica", "", 12)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, "Timeline")
	pdf.Ln(10)

	for i, day := range domain.TripDays(it) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Day %d - %s", i+1, day.Format("Mon, 02 Jan 2006")))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		events := 0
		for _, t := range domain.TransportationOn(it, day) {
			pdf.Cell(0, 6, fmt.Sprintf("  %s  %s: %s -> %s (%s)", t.DepartureTime, titleCase(t.Type), t.From, t.To, safe(t.Carrier, "-")))
			pdf.Ln(6)
			events++
		}
		for _, a := range domain.AccommodationsOn(it, day) {
			pdf.Cell(0, 6, fmt.Sprintf("  Stay   %s, %s", a.Name, safe(a.Location, "-")))
			pdf.Ln(6)
			events++
		}
		for _, a := range domain.ActivitiesOn(it, day) {
			pdf.Cell(0, 6, fmt.Sprintf("  %s  %s, %s", a.Time, a.Name, safe(a.Location, "-")))
			pdf.Ln(6)
			events++
		}
		if events == 0 {
			pdf.Cell(0, 6, "  (nothing planned)")
			pdf.Ln(6)
		}
		pdf.Ln(1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, "Generated "+time.Now().Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render summary", Err: err}
	}

	filename := fmt.Sprintf("TRIP_%s.pdf", safeFilenamePart(it.Name))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func safeFilenamePart(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "summary"
	}
	return string(out)
}
