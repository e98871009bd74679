package handlers

import (
	"net/http"

	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/gin-gonic/gin"
)

type CreateFoodRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ImageURL     string  `json:"image_url"`
	FoodTags     string  `json:"food_tags"`
	Category     string  `json:"category"`
	Code         string  `json:"code"`
	IsAvailable  *bool   `json:"is_available"`
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Rating       float64 `json:"rating"`
}

// CreateFood adds a new food item (admin gate in routes)
func (h *Handler) CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	food := models.Food{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		FoodTags:     req.FoodTags,
		Category:     req.Category,
		Code:         req.Code,
		IsAvailable:  boolOr(req.IsAvailable, true),
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
	}
	if err := h.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create food item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New food item created successfully", "food": food})
}

// ListFoods returns all food items (public)
func (h *Handler) ListFoods(c *gin.Context) {
	var foods []models.Food
	h.DB.Find(&foods)
	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

// GetFood returns a single food item (public)
func (h *Handler) GetFood(c *gin.Context) {
	var food models.Food
	if err := h.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": food})
}

// FoodsByRestaurant returns the foods served by one restaurant (public)
func (h *Handler) FoodsByRestaurant(c *gin.Context) {
	var foods []models.Food
	h.DB.Where("restaurant_id = ?", c.Param("id")).Find(&foods)
	c.JSON(http.StatusOK, gin.H{
		"restaurant_id": c.Param("id"),
		"count":         len(foods),
		"foods":         foods,
	})
}

// UpdateFood updates a food item (admin gate in routes)
func (h *Handler) UpdateFood(c *gin.Context) {
	var food models.Food
	if err := h.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{
		"title": true, "description": true, "price": true, "image_url": true,
		"food_tags": true, "category": true, "code": true, "is_available": true,
		"rating": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	h.DB.Model(&food).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully", "food": food})
}

// DeleteFood removes a food item (admin gate in routes)
func (h *Handler) DeleteFood(c *gin.Context) {
	var food models.Food
	if err := h.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	h.DB.Delete(&food)
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully", "food_id": food.ID})
}
