package handlers

import (
	"net/http"

	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"image_url"`
}

// CreateCategory adds a new category (admin gate in routes)
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.Category{Title: req.Title, ImageURL: req.ImageURL}
	if err := h.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": category})
}

// ListCategories returns all categories (public)
func (h *Handler) ListCategories(c *gin.Context) {
	var categories []models.Category
	h.DB.Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// UpdateCategory updates a category (admin gate in routes)
func (h *Handler) UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := h.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category.Title = req.Title
	if req.ImageURL != "" {
		category.ImageURL = req.ImageURL
	}
	h.DB.Save(&category)
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
}

// DeleteCategory removes a category (admin gate in routes)
func (h *Handler) DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := h.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	h.DB.Delete(&category)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully", "category_id": category.ID})
}
