package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/store"
)

// GET /orders — the signed-in customer's bookings, looked up by mobile.
func MyOrders(sessions *store.SessionStore, gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := sessions.Current()
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		if identity.Mobile == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No mobile number on the current session"})
			return
		}

		orders, err := gw.ListOrdersByMobile(c.Request.Context(), identity.Mobile)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
