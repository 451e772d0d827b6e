package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/karthikram1909/refurbished-store/controllers/admin"
	"github.com/karthikram1909/refurbished-store/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Everything except the
// login itself requires the persisted bearer token.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	r.POST("/admin/login", middleware.ValidateAPIKey, adminController.Login(deps.Gateway, deps.Slots, deps.Sessions))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey, middleware.RequireAdmin(deps.Slots))
	{
		adminGroup.GET("/dashboard", adminController.Dashboard(deps.Gateway))

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.ListOrders(deps.Gateway))
			orderAdmin.PUT("/:id/status", adminController.UpdateOrderStatus(deps.Gateway, deps.Hub))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(deps.Gateway))
		}

		// ─────────── Inventory Management ───────────
		phoneAdmin := adminGroup.Group("/phones")
		{
			phoneAdmin.GET("", adminController.ListPhones(deps.Gateway))
			phoneAdmin.POST("", adminController.CreatePhone(deps.Gateway))
			phoneAdmin.DELETE("/:id", adminController.DeletePhone(deps.Gateway))
			phoneAdmin.GET("/export-excel", adminController.ExportPhonesToExcel(deps.Gateway))
		}
	}
}
