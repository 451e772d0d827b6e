package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/karthikram1909/refurbished-store/controllers/cart"
	catalogControllers "github.com/karthikram1909/refurbished-store/controllers/catalog"
	checkoutControllers "github.com/karthikram1909/refurbished-store/controllers/checkout"
	orderControllers "github.com/karthikram1909/refurbished-store/controllers/order"
	sessionControllers "github.com/karthikram1909/refurbished-store/controllers/session"
	"github.com/karthikram1909/refurbished-store/middleware"
)

// SetupClientRoutes registers the storefront endpoints.
func SetupClientRoutes(r *gin.Engine, deps *Deps) {
	client := r.Group("/")
	client.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Session ────────────────
		client.GET("/session", sessionControllers.GetSession(deps.Sessions))
		client.POST("/session/login", sessionControllers.Login(deps.Sessions, deps.Hub))
		client.POST("/session/logout", sessionControllers.Logout(deps.Sessions, deps.Hub))

		// ──────────────── Catalog ────────────────
		client.GET("/phones", catalogControllers.GetPhones(deps.Gateway, deps.PageSize))
		client.GET("/phones/:id", catalogControllers.GetPhone(deps.Gateway))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := client.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Cart))
			cartGroup.POST("/items", cartControllers.AddItem(deps.Cart, deps.Gateway, deps.Hub))
			cartGroup.PUT("/items/:phone_id", cartControllers.UpdateQuantity(deps.Cart, deps.Hub))
			cartGroup.DELETE("/items/:phone_id", cartControllers.DeleteItem(deps.Cart, deps.Hub))
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart, deps.Hub))
		}

		// ──────────────── Checkout & Orders ────────────────
		client.POST("/checkout", checkoutControllers.PlaceOrder(deps.Sessions, deps.Cart, deps.Gateway, deps.Hub))
		client.GET("/orders", orderControllers.MyOrders(deps.Sessions, deps.Gateway))
	}
}
