package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/listings
func (a API) SearchListings(c *gin.Context) {
	opts := services.SearchOptions{
		Location: c.Query("location"),
		Sort:     c.DefaultQuery("sort", services.SortRecommended),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 0),
	}
	// features may repeat (?features=wifi&features=kitchen) and each value
	// may itself be comma-separated.
	for _, raw := range c.QueryArray("features") {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.Features = append(opts.Features, f)
			}
		}
	}
	opts.PriceMin = queryInt(c, "priceMin", 0)
	opts.PriceMax = queryInt(c, "priceMax", 0)

	result, err := a.listingService(c).Search(opts)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/listings/:id
func (a API) GetListing(c *gin.Context) {
	listing, err := a.listingService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}
