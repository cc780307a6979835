package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// ListingRepository reads the scraper-populated listings table. Features
// land there as a JSON array column.
type ListingRepository struct {
	DB *sql.DB
}

const listingColumns = `id, url, title, picture_url, description, price, rating, location,
	COALESCE(features, '[]'), COALESCE(region, ''), COALESCE(country, ''), COALESCE(state, ''), COALESCE(province, '')`

func (r ListingRepository) List(city string, limit int) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings`
	args := []any{}
	if strings.TrimSpace(city) != "" {
		query += ` WHERE location LIKE ?`
		args = append(args, "%"+strings.TrimSpace(city)+"%")
	}
	query += ` ORDER BY id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Listing
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r ListingRepository) GetByID(id string) (models.Listing, error) {
	row := r.DB.QueryRow(`SELECT `+listingColumns+` FROM listings WHERE id = ?`, id)
	l, err := scanListing(row.Scan)
	if err == sql.ErrNoRows {
		return l, domain.NotFoundError{Resource: "listing"}
	}
	return l, err
}

func scanListing(scan func(dest ...any) error) (models.Listing, error) {
	var l models.Listing
	var features string
	err := scan(&l.ID, &l.URL, &l.Title, &l.PictureURL, &l.Description, &l.Price, &l.Rating,
		&l.Location, &features, &l.Region, &l.Country, &l.State, &l.Province)
	if err != nil {
		return l, err
	}
	if err := json.Unmarshal([]byte(features), &l.Features); err != nil {
		// scraped rows occasionally carry malformed feature blobs; treat as none
		l.Features = nil
	}
	return l, nil
}
