package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/checkout"
	"github.com/karthikram1909/refurbished-store/events"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/store"
)

// POST /checkout
//
// Submits the cart to the store backend and clears it only when every unit
// was booked. Units placed before a failure stay placed — the report tells
// the user exactly how far the attempt got.
func PlaceOrder(sessions *store.SessionStore, cart *store.CartStore, gw *gateway.Client, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := sessions.Current()
		report, err := checkout.Submit(c.Request.Context(), gw, identity, cart.Lines())
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrNoIdentity):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required to place an order"})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		cleared := report.Succeeded()
		if cleared {
			cart.Clear()
		} else {
			log.Printf("❌ Checkout %s aborted at phone %s unit %d: %s",
				report.AttemptID, report.Failed.PhoneID, report.Failed.Unit, report.Failed.Error)
		}
		for _, skipped := range report.Skipped {
			log.Printf("⚠️ Checkout %s skipped phone %s ×%d: %s",
				report.AttemptID, skipped.PhoneID, skipped.Quantity, skipped.Reason)
		}

		hub.Broadcast("checkout", gin.H{"report": report, "cart_cleared": cleared})
		c.JSON(http.StatusOK, gin.H{"report": report, "cart_cleared": cleared})
	}
}
