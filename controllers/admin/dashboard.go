package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/models"
)

const dashboardFetchLimit = 1000

// GET /admin/dashboard — the counters the admin landing page renders.
func Dashboard(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		phones, _, err := gw.ListAdminPhones(c.Request.Context(), 1, dashboardFetchLimit)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch phones"})
			return
		}
		orders, err := gw.ListAdminOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}

		inStock, outOfStock, lowStock := 0, 0, 0
		for _, p := range phones {
			switch {
			case p.Stock == 0:
				outOfStock++
			case p.Stock < 5:
				inStock++
				lowStock++
			default:
				inStock++
			}
		}

		byStatus := map[models.OrderStatus]int{}
		for _, o := range orders {
			byStatus[o.Status]++
		}

		c.JSON(http.StatusOK, gin.H{
			"total_phones": len(phones),
			"total_orders": len(orders),
			"stock": gin.H{
				"in_stock":     inStock,
				"out_of_stock": outOfStock,
				"low_stock":    lowStock,
			},
			"orders_by_status": gin.H{
				"pending":    byStatus[models.OrderStatusPending],
				"accepted":   byStatus[models.OrderStatusAccepted],
				"dispatched": byStatus[models.OrderStatusDispatched],
				"delivered":  byStatus[models.OrderStatusDelivered],
			},
		})
	}
}
