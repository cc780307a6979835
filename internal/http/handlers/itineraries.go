package handlers

import (
	"net/http"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/itineraries
func (a API) ListItineraries(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	out, err := a.itineraries(c).ListForUser(sess.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/itineraries/:id
func (a API) GetItinerary(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	it, err := a.itineraries(c).Get(sess.UserID, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// POST /api/itineraries
func (a API) CreateItinerary(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var draft models.ItineraryDraft
	if !BindJSONOrError(c, &draft) {
		return
	}
	it, err := a.itineraries(c).Create(sess.UserID, draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// PUT /api/itineraries/:id
func (a API) UpdateItinerary(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var patch models.ItineraryPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	it, err := a.itineraries(c).Update(sess.UserID, c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// DELETE /api/itineraries/:id
func (a API) DeleteItinerary(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	if err := a.itineraries(c).Delete(sess.UserID, c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GET /api/itineraries/:id/days
func (a API) GetItineraryDays(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	it, err := a.itineraries(c).Get(sess.UserID, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	spent := domain.TotalSpent(it)
	c.JSON(http.StatusOK, gin.H{
		"days":        domain.DaySchedules(it),
		"duration":    domain.Duration(it),
		"totalBudget": it.TotalBudget,
		"totalSpent":  spent,
		"remaining":   it.TotalBudget - spent,
	})
}

// GET /api/itineraries/:id/summary
func (a API) GetItinerarySummaryPDF(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	svc := services.DocsService{
		Itineraries: a.itineraries(c),
		RequestID:   middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateSummary(sess.UserID, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
