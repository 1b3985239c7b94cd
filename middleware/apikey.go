package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards the ops export endpoints, which are hit by
// back-office tooling rather than logged-in users.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("OPS_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
