package handlers

import (
	"net/http"

	"github.com/haons211/pmai-fooddelivery-datn/authz"
	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	Title     string  `json:"title" binding:"required"`
	ImageURL  string  `json:"image_url"`
	LogoURL   string  `json:"logo_url"`
	Time      string  `json:"time"`
	Pickup    *bool   `json:"pickup"`
	Delivery  *bool   `json:"delivery"`
	IsOpen    *bool   `json:"is_open"`
	Code      string  `json:"code"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateRestaurant creates a restaurant owned by the caller
func (h *Handler) CreateRestaurant(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := actor.ID
	restaurant := models.Restaurant{
		OwnerID:   &ownerID,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LogoURL:   req.LogoURL,
		Time:      req.Time,
		Pickup:    boolOr(req.Pickup, true),
		Delivery:  boolOr(req.Delivery, true),
		IsOpen:    boolOr(req.IsOpen, true),
		Code:      req.Code,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New restaurant created successfully", "restaurant": restaurant})
}

// ListRestaurants returns all restaurants (public)
func (h *Handler) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := h.DB.Model(&models.Restaurant{})

	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if open := c.Query("open"); open == "true" {
		query = query.Where("is_open = ?", true)
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its foods (public)
func (h *Handler) GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.Preload("Foods").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// DeleteRestaurant deletes a restaurant. Only the owner or an admin may
// do this; a restaurant without an owner on record is admin-only.
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if d := authz.Authorize(actor, authz.DeleteRestaurant{Restaurant: restaurant}); !d.Allow {
		c.JSON(http.StatusForbidden, gin.H{"error": d.Reason})
		return
	}

	if err := h.DB.Delete(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully", "restaurant_id": restaurant.ID})
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
