package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/karthikram1909/refurbished-store/bridge"
	"github.com/karthikram1909/refurbished-store/events"
	"github.com/karthikram1909/refurbished-store/gateway"
	"github.com/karthikram1909/refurbished-store/models"
	"github.com/karthikram1909/refurbished-store/store"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /admin/login
//
// Proxies the backend login, persists the bearer token and switches the
// session to an administrator identity. The token is opaque to us; the
// backend owns its lifetime.
func Login(gw *gateway.Client, slots *bridge.Store, sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token, err := gw.AdminLogin(c.Request.Context(), input.Username, input.Password)
		if err != nil {
			if apiErr, ok := err.(*gateway.APIError); ok && apiErr.Status == http.StatusUnauthorized {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach store backend"})
			return
		}

		if err := slots.Put(bridge.SlotAdminToken, token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist admin token"})
			return
		}
		sessions.Login(models.Identity{Name: "Admin", Role: models.RoleAdministrator})
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /admin/orders
func ListOrders(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := gw.ListAdminOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}

		if raw := c.Query("status"); raw != "" && raw != "all" {
			status, err := models.ParseOrderStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
				return
			}
			filtered := make([]models.Order, 0, len(orders))
			for _, o := range orders {
				if o.Status == status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id/status
//
// The transition rule lives in models.OrderStatus; every screen goes through
// this one check instead of hard-coding its own button set.
func UpdateOrderStatus(gw *gateway.Client, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		next, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		orders, err := gw.ListAdminOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		var current *models.Order
		for i := range orders {
			if orders[i].ID == orderID {
				current = &orders[i]
				break
			}
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if !current.Status.CanTransitionTo(next) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot move order from " + string(current.Status) + " to " + string(next),
			})
			return
		}

		updated, err := gw.UpdateOrderStatus(c.Request.Context(), orderID, next)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update order status"})
			return
		}
		hub.Broadcast("order_status", updated)
		c.JSON(http.StatusOK, updated)
	}
}

// GET /admin/phones
func ListPhones(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := intQuery(c, "page", 1)
		limit := intQuery(c, "limit", 30)

		phones, totalPages, err := gw.ListAdminPhones(c.Request.Context(), page, limit)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch phones"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"phones": phones, "page": page, "total_pages": totalPages})
	}
}

// POST /admin/phones — multipart passthrough to the backend; no image
// processing happens here.
func CreatePhone(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := gateway.PhoneForm{
			Name:        c.PostForm("name"),
			Brand:       c.PostForm("brand"),
			Description: c.PostForm("description"),
			Color:       c.PostForm("color"),
			Warranty:    c.PostForm("warranty"),
			Battery:     c.PostForm("battery"),
			Kit:         c.PostForm("kit"),
		}
		if form.Name == "" || form.Brand == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and brand are required"})
			return
		}
		price, err := strconv.Atoi(c.PostForm("price"))
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		form.Price = price

		if fileHeader, err := c.FormFile("image"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
				return
			}
			defer file.Close()
			form.Image = file
			form.ImageName = fileHeader.Filename
		}

		phone, err := gw.CreatePhone(c.Request.Context(), form)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create phone"})
			return
		}
		c.JSON(http.StatusCreated, phone)
	}
}

// DELETE /admin/phones/:id
func DeletePhone(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gw.DeletePhone(c.Request.Context(), c.Param("id")); err != nil {
			if apiErr, ok := err.(*gateway.APIError); ok && apiErr.Status == http.StatusNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Phone not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete phone"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Phone deleted"})
	}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
