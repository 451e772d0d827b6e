package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/bridge"
	"github.com/karthikram1909/refurbished-store/events"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/store"
)

// Deps carries the explicitly constructed stores and collaborators into the
// handlers; there are no package-level singletons.
type Deps struct {
	Sessions *store.SessionStore
	Cart     *store.CartStore
	Slots    *bridge.Store
	Gateway  *gateway.Client
	Hub      *events.Hub
	PageSize int
}

// SetupRoutes is the single entry-point that wires up the client and admin
// route groups plus the websocket event feed.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// 1️⃣ Client routes (session, catalog, cart, checkout, orders)
	SetupClientRoutes(r, deps)

	// 2️⃣ Admin routes (bearer-token protected)
	SetupAdminRoutes(r, deps)

	// 3️⃣ Store-change events for live re-render
	r.GET("/ws", deps.Hub.Handler())
}
