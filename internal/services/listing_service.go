package services

import (
	"sort"
	"strings"

	"tripplanner/internal/domain/models"
)

// ListingSource abstracts the listings table so search can be exercised
// against fixtures.
type ListingSource interface {
	List(city string, limit int) ([]models.Listing, error)
	GetByID(id string) (models.Listing, error)
}

// Sort options accepted by search.
const (
	SortRecommended = "recommended"
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortRatingDesc  = "rating_desc"
)

const defaultPageSize = 12

type SearchOptions struct {
	Location string
	PriceMin int
	PriceMax int
	Features []string
	Sort     string
	Page     int
	PageSize int
}

type SearchResult struct {
	Listings    []models.Listing `json:"listings"`
	TotalCount  int              `json:"totalCount"`
	PageCount   int              `json:"pageCount"`
	CurrentPage int              `json:"currentPage"`
}

type ListingService struct {
	Source    ListingSource
	RequestID string
}

// Search filters, sorts and paginates in memory; the scraped data set is
// small and the predicates (substring location match, feature subset,
// price-string parsing) do not translate into useful SQL.
func (s ListingService) Search(opts SearchOptions) (SearchResult, error) {
	all, err := s.Source.List("", 0)
	if err != nil {
		return SearchResult{}, storeErr(err)
	}

	filtered := make([]models.Listing, 0, len(all))
	for _, l := range all {
		if matchesSearch(l, opts) {
			filtered = append(filtered, l)
		}
	}

	sortListings(filtered, opts.Sort)

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	if page > pageCount {
		page = pageCount
	}

	startIdx := (page - 1) * pageSize
	endIdx := startIdx + pageSize
	if startIdx > total {
		startIdx = total
	}
	if endIdx > total {
		endIdx = total
	}

	return SearchResult{
		Listings:    filtered[startIdx:endIdx],
		TotalCount:  total,
		PageCount:   pageCount,
		CurrentPage: page,
	}, nil
}

func (s ListingService) Get(id string) (models.Listing, error) {
	l, err := s.Source.GetByID(id)
	if err != nil {
		return l, storeErr(err)
	}
	return l, nil
}

func matchesSearch(l models.Listing, opts SearchOptions) bool {
	if term := strings.TrimSpace(opts.Location); term != "" {
		needle := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(l.Location), needle) &&
			!strings.Contains(strings.ToLower(l.Region), needle) &&
			!strings.Contains(strings.ToLower(l.Country), needle) &&
			!strings.Contains(strings.ToLower(l.State), needle) &&
			!strings.Contains(strings.ToLower(l.Province), needle) {
			return false
		}
	}

	for _, f := range opts.Features {
		if !l.HasFeature(f) {
			return false
		}
	}

	price := l.PriceValue()
	if opts.PriceMin > 0 && price < opts.PriceMin {
		return false
	}
	if opts.PriceMax > 0 && price > opts.PriceMax {
		return false
	}
	return true
}

func sortListings(list []models.Listing, option string) {
	switch option {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriceValue() < list[j].PriceValue()
		})
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriceValue() > list[j].PriceValue()
		})
	case SortRatingDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	default:
		// recommended keeps scrape order
	}
}
