package sessionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/events"
	"github.com/karthikram1909/refurbished-store/models"
	"github.com/karthikram1909/refurbished-store/store"
)

type LoginInput struct {
	Name   string `json:"name" binding:"required"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
}

// POST /session/login
func Login(sessions *store.SessionStore, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Administrators come in through /admin/login; this form only
		// produces customer identities and needs a mobile number for
		// order lookups.
		if input.Role != "" && input.Role != string(models.RoleCustomer) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Use the admin login for administrator sessions"})
			return
		}
		if input.Mobile == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mobile number is required"})
			return
		}

		identity := models.Identity{
			Name:   input.Name,
			Mobile: input.Mobile,
			Role:   models.RoleCustomer,
		}
		sessions.Login(identity)
		hub.Broadcast("session", identity)
		c.JSON(http.StatusOK, identity)
	}
}

// POST /session/logout
func Logout(sessions *store.SessionStore, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Logout()
		hub.Broadcast("session", nil)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /session
func GetSession(sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := sessions.Current()
		if identity == nil {
			c.JSON(http.StatusOK, gin.H{"identity": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"identity": identity})
	}
}
