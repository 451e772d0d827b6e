package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey protects the facade when API_KEY is set; a UI served from
// the same machine usually runs without one.
func ValidateAPIKey(c *gin.Context) {
	required := os.Getenv("API_KEY")
	if required == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-KEY") != required {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
