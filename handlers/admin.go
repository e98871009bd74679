package handlers

import (
	"net/http"

	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers returns all users — admin only
func (h *Handler) AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := h.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllOrders returns all orders with full detail — admin only
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := h.DB.Preload("Items").Preload("Buyer").Preload("Restaurant").Preload("StatusHistory")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if buyerID := c.Query("buyer_id"); buyerID != "" {
		query = query.Where("buyer_id = ?", buyerID)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.Payment
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}
