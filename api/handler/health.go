package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/vendors"
)

// Health returns a handler for GET /api/v1/health.
func Health(registry *vendors.Registry, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Vendors: registry.Len(),
			Version: "0.1.0",
		})
	}
}
