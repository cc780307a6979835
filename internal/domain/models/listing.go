package models

import "strconv"

// Listing is a scraped rental listing. Price and rating come straight from
// the scraper, so price is a display string ("$120/night") and numeric
// comparisons have to parse it.
type Listing struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	PictureURL  string   `json:"picture_url"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Location    string   `json:"location"`
	Features    []string `json:"features"`
	Region      string   `json:"region,omitempty"`
	Country     string   `json:"country,omitempty"`
	State       string   `json:"state,omitempty"`
	Province    string   `json:"province,omitempty"`
}

// PriceValue extracts the numeric part of the scraped price string.
// "$1,250/night" -> 1250. Returns 0 when no digits are present.
func (l Listing) PriceValue() int {
	digits := make([]byte, 0, len(l.Price))
	for i := 0; i < len(l.Price); i++ {
		if l.Price[i] >= '0' && l.Price[i] <= '9' {
			digits = append(digits, l.Price[i])
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}

func (l Listing) HasFeature(want string) bool {
	for _, f := range l.Features {
		if f == want {
			return true
		}
	}
	return false
}
