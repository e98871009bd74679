package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/haons211/pmai-fooddelivery-datn/authz"
	"github.com/haons211/pmai-fooddelivery-datn/models"
	"github.com/haons211/pmai-fooddelivery-datn/statemachine"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	RestaurantID uint `json:"restaurant_id"`
	Items        []struct {
		FoodID   uint `json:"food_id" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// PlaceOrder creates a new order for the caller. Prices are snapshotted
// from the food records and the payment total is frozen at creation.
func (h *Handler) PlaceOrder(c *gin.Context) {
	buyer, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurantID *uint
	if req.RestaurantID != 0 {
		var restaurant models.Restaurant
		if err := h.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		if !restaurant.IsOpen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is currently closed"})
			return
		}
		restaurantID = &restaurant.ID
	}

	var items []models.OrderItem
	var total float64
	for _, reqItem := range req.Items {
		var food models.Food
		if err := h.DB.First(&food, reqItem.FoodID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		if restaurantID != nil && food.RestaurantID != *restaurantID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Food item '" + food.Title + "' does not belong to this restaurant"})
			return
		}
		if !food.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Food item '" + food.Title + "' is not available"})
			return
		}
		total += food.Price * float64(reqItem.Quantity)
		items = append(items, models.OrderItem{
			FoodID:   food.ID,
			Quantity: reqItem.Quantity,
			Price:    food.Price,
			Title:    food.Title,
		})
	}

	order := models.Order{
		BuyerID:      buyer.ID,
		RestaurantID: restaurantID,
		Items:        items,
		Payment:      total,
		Status:       models.StatusPreparing,
	}
	if err := h.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	if err := h.DB.Create(&models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusPreparing,
		ChangedBy: buyer.ID,
		Note:      "Order placed",
	}).Error; err != nil {
		log.Printf("failed to record status history for order %d: %v", order.ID, err)
	}

	h.DB.Preload("Items").Preload("Restaurant").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetMyOrders returns all orders placed by the caller
func (h *Handler) GetMyOrders(c *gin.Context) {
	buyer, ok := h.currentUser(c)
	if !ok {
		return
	}
	var orders []models.Order
	h.DB.Preload("Items").Preload("Restaurant").
		Where("buyer_id = ?", buyer.ID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// UpdateOrderStatus moves an order through the status state machine. A
// structurally illegal transition is rejected no matter who asks; a
// legal one still has to clear the authorization rules.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.KnownStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + string(req.Status)})
		return
	}

	var order models.Order
	if err := h.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		if errors.Is(err, statemachine.ErrInvalidTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "Invalid state transition",
				"current_status":    order.Status,
				"requested":         req.Status,
				"reason":            err.Error(),
				"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate transition"})
		return
	}

	var restaurant *models.Restaurant
	if order.RestaurantID != nil {
		var r models.Restaurant
		if err := h.DB.First(&r, *order.RestaurantID).Error; err == nil {
			restaurant = &r
		}
	}

	decision := authz.Authorize(actor, authz.TransitionOrder{
		Order:      order,
		Restaurant: restaurant,
		To:         req.Status,
	})
	if !decision.Allow {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}

	prevStatus := order.Status
	if err := h.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	if err := h.DB.Create(&models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  actor.ID,
		Note:       req.Note,
	}).Error; err != nil {
		log.Printf("failed to record status history for order %d: %v", order.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated successfully",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}

// GetStateMachineInfo returns the full transition table for documentation
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses": []models.OrderStatus{
			models.StatusPreparing,
			models.StatusReady,
			models.StatusOnTheWay,
			models.StatusDelivered,
			models.StatusCancelled,
		},
		"transitions": statemachine.GetAllTransitions(),
		"terminal":    []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
	})
}
