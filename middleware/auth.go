package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/karthikram1909/refurbished-store/bridge"
)

// RequireAdmin gates the admin routes on a persisted bearer token. The token
// is issued and verified by the store backend; we cannot check its signature,
// but when it happens to be a JWT we can at least notice a lapsed expiry and
// force a fresh login instead of relaying doomed requests.
func RequireAdmin(slots *bridge.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := slots.Get(bridge.SlotAdminToken)
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
			c.Abort()
			return
		}

		if tokenExpired(token) {
			_ = slots.Delete(bridge.SlotAdminToken)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session expired"})
			c.Abort()
			return
		}

		c.Set("admin_token", token)
		c.Next()
	}
}

// tokenExpired best-effort: opaque (non-JWT) tokens and JWTs without an exp
// claim pass through untouched.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
