package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/events"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/models"
	"github.com/karthikram1909/refurbished-store/store"
)

// Shipping is free above this subtotal, flat otherwise.
const (
	freeShippingThreshold = 50000
	flatShippingCost      = 500
)

type AddItemInput struct {
	PhoneID string `json:"phone_id" binding:"required"`
	// Optional snapshot. When absent the phone is fetched from the store
	// backend so the cart line captures current price and stock.
	Phone *models.Phone `json:"phone"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartView(cart *store.CartStore) gin.H {
	lines := cart.Lines()
	subtotal := cart.Subtotal()
	shipping := 0
	if len(lines) > 0 && subtotal <= freeShippingThreshold {
		shipping = flatShippingCost
	}
	return gin.H{
		"items":    lines,
		"subtotal": subtotal,
		"shipping": shipping,
		"total":    subtotal + shipping,
	}
}

// GET /cart
func GetCart(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(cart))
	}
}

// POST /cart/items
func AddItem(cart *store.CartStore, gw *gateway.Client, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		phone := input.Phone
		if phone == nil {
			fetched, err := gw.GetPhone(c.Request.Context(), input.PhoneID)
			if err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch phone"})
				return
			}
			phone = &fetched
		} else if phone.ID == "" {
			phone.ID = input.PhoneID
		}

		outcome := cart.AddItem(*phone)
		if outcome.ExceedsStock {
			// Add never clamps; flag it so the UI can warn before checkout.
			log.Printf("⚠️ Cart quantity for %s exceeds stock (%d > %d)",
				phone.ID, outcome.Line.Quantity, phone.Stock)
		}
		hub.Broadcast("cart", cartView(cart))
		c.JSON(http.StatusCreated, gin.H{
			"line":          outcome.Line,
			"merged":        outcome.Merged,
			"exceeds_stock": outcome.ExceedsStock,
		})
	}
}

// PUT /cart/items/:phone_id
func UpdateQuantity(cart *store.CartStore, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneID := c.Param("phone_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := *input.Quantity

		// This is the call site that clamps to stock; the store itself
		// trusts its caller.
		clamped := false
		if quantity > 0 {
			for _, line := range cart.Lines() {
				if line.Phone.ID == phoneID && line.Phone.Stock > 0 && quantity > line.Phone.Stock {
					quantity = line.Phone.Stock
					clamped = true
				}
			}
		}

		if !cart.SetQuantity(phoneID, quantity) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		hub.Broadcast("cart", cartView(cart))
		c.JSON(http.StatusOK, gin.H{"clamped": clamped, "cart": cartView(cart)})
	}
}

// DELETE /cart/items/:phone_id
func DeleteItem(cart *store.CartStore, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.RemoveItem(c.Param("phone_id"))
		hub.Broadcast("cart", cartView(cart))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /cart
func ClearCart(cart *store.CartStore, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		hub.Broadcast("cart", cartView(cart))
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
