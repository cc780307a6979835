package handlers

import (
	"net/http"

	"tripplanner/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// Sub-entity editors. Each add/update re-sorts the parent list in the
// store; ids always come from the service.

// POST /api/itineraries/:id/activities
func (a API) AddActivity(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var activity models.Activity
	if !BindJSONOrError(c, &activity) {
		return
	}
	out, err := a.itineraries(c).AddActivity(sess.UserID, c.Param("id"), activity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/itineraries/:id/activities/:activityId
func (a API) UpdateActivity(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var activity models.Activity
	if !BindJSONOrError(c, &activity) {
		return
	}
	out, err := a.itineraries(c).UpdateActivity(sess.UserID, c.Param("id"), c.Param("activityId"), activity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/itineraries/:id/activities/:activityId
func (a API) DeleteActivity(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	if err := a.itineraries(c).DeleteActivity(sess.UserID, c.Param("id"), c.Param("activityId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// POST /api/itineraries/:id/accommodations
func (a API) AddAccommodation(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var acc models.Accommodation
	if !BindJSONOrError(c, &acc) {
		return
	}
	out, err := a.itineraries(c).AddAccommodation(sess.UserID, c.Param("id"), acc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/itineraries/:id/accommodations/:accommodationId
func (a API) UpdateAccommodation(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var acc models.Accommodation
	if !BindJSONOrError(c, &acc) {
		return
	}
	out, err := a.itineraries(c).UpdateAccommodation(sess.UserID, c.Param("id"), c.Param("accommodationId"), acc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/itineraries/:id/accommodations/:accommodationId
func (a API) DeleteAccommodation(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	if err := a.itineraries(c).DeleteAccommodation(sess.UserID, c.Param("id"), c.Param("accommodationId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// POST /api/itineraries/:id/transportation
func (a API) AddTransportation(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var tr models.Transportation
	if !BindJSONOrError(c, &tr) {
		return
	}
	out, err := a.itineraries(c).AddTransportation(sess.UserID, c.Param("id"), tr)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/itineraries/:id/transportation/:transportId
func (a API) UpdateTransportation(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var tr models.Transportation
	if !BindJSONOrError(c, &tr) {
		return
	}
	out, err := a.itineraries(c).UpdateTransportation(sess.UserID, c.Param("id"), c.Param("transportId"), tr)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/itineraries/:id/transportation/:transportId
func (a API) DeleteTransportation(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	if err := a.itineraries(c).DeleteTransportation(sess.UserID, c.Param("id"), c.Param("transportId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
