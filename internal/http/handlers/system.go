package handlers

import (
	"net/http"

	"tripplanner/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (a API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func (a API) DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"database": "ok"})
}
