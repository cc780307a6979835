package services

import (
	"testing"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
)

func testListings() *repositories.MemoryListings {
	return repositories.NewMemoryListings([]models.Listing{
		{ID: "l1", Title: "Rome loft", Price: "$140/night", Rating: 4.8, Location: "Rome, Italy", Features: []string{"wifi", "kitchen"}},
		{ID: "l2", Title: "Florence studio", Price: "$95/night", Rating: 4.6, Location: "Florence, Italy", Features: []string{"wifi"}},
		{ID: "l3", Title: "Venice apartment", Price: "$210/night", Rating: 4.9, Location: "Venice, Italy", Features: []string{"wifi", "kitchen", "balcony"}},
		{ID: "l4", Title: "Paris flat", Price: "$180/night", Rating: 4.2, Location: "Paris, France", Features: []string{"wifi"}},
	})
}

func TestSearchFiltersByLocation(t *testing.T) {
	svc := ListingService{Source: testListings()}

	res, err := svc.Search(SearchOptions{Location: "italy"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.TotalCount != 3 {
		t.Fatalf("TotalCount = %d", res.TotalCount)
	}
	for _, l := range res.Listings {
		if l.ID == "l4" {
			t.Fatalf("Paris listing matched italy")
		}
	}
}

func TestSearchFeatureFilterRequiresAll(t *testing.T) {
	svc := ListingService{Source: testListings()}

	res, err := svc.Search(SearchOptions{Features: []string{"wifi", "kitchen"}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.TotalCount != 2 {
		t.Fatalf("TotalCount = %d", res.TotalCount)
	}
}

func TestSearchPriceBounds(t *testing.T) {
	svc := ListingService{Source: testListings()}

	res, err := svc.Search(SearchOptions{PriceMin: 100, PriceMax: 200})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.TotalCount != 2 {
		t.Fatalf("TotalCount = %d", res.TotalCount)
	}
	for _, l := range res.Listings {
		if p := l.PriceValue(); p < 100 || p > 200 {
			t.Fatalf("listing %s price %d out of bounds", l.ID, p)
		}
	}
}

func TestSearchSortsByPrice(t *testing.T) {
	svc := ListingService{Source: testListings()}

	res, _ := svc.Search(SearchOptions{Sort: SortPriceAsc})
	if res.Listings[0].ID != "l2" {
		t.Fatalf("cheapest first: got %s", res.Listings[0].ID)
	}

	res, _ = svc.Search(SearchOptions{Sort: SortPriceDesc})
	if res.Listings[0].ID != "l3" {
		t.Fatalf("priciest first: got %s", res.Listings[0].ID)
	}

	res, _ = svc.Search(SearchOptions{Sort: SortRatingDesc})
	if res.Listings[0].ID != "l3" {
		t.Fatalf("top rated first: got %s", res.Listings[0].ID)
	}
}

func TestSearchPaginationClampsPage(t *testing.T) {
	svc := ListingService{Source: testListings()}

	res, _ := svc.Search(SearchOptions{PageSize: 2, Page: 99})
	if res.PageCount != 2 {
		t.Fatalf("PageCount = %d", res.PageCount)
	}
	if res.CurrentPage != 2 {
		t.Fatalf("CurrentPage = %d", res.CurrentPage)
	}
	if len(res.Listings) != 2 {
		t.Fatalf("page has %d listings", len(res.Listings))
	}
}

func TestSearchEmptyResultStillOnePage(t *testing.T) {
	svc := ListingService{Source: testListings()}

	res, _ := svc.Search(SearchOptions{Location: "atlantis"})
	if res.TotalCount != 0 || res.PageCount != 1 || res.CurrentPage != 1 {
		t.Fatalf("empty result: %+v", res)
	}
}
