package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports which upstream providers are configured. There is no
// backing store to probe, so configuration is the only liveness signal.
func Health(newsConfigured, aiConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"news_configured": newsConfigured,
			"ai_configured":   aiConfigured,
		})
	}
}
