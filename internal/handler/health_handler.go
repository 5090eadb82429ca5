package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health. Liveness only; store pings happen once at
// process start.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "notes",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
