package handlers

import (
	"net/http"
	"strconv"

	"github.com/haons211/pmai-fooddelivery-datn/auth"
	"github.com/haons211/pmai-fooddelivery-datn/authz"
	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	UserName  string   `json:"user_name"`
	Phone     string   `json:"phone"`
	Addresses []string `json:"addresses"`
	Profile   string   `json:"profile"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// GetProfile returns the authenticated user's profile
func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// UpdateProfile updates an account's display fields. Accounts can update
// themselves; only admins may update somebody else. The role is never
// touched here: it is fixed at registration.
func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var target models.User
	if err := h.DB.First(&target, uint(targetID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if d := authz.Authorize(actor, authz.UpdateProfile{TargetID: target.ID}); !d.Allow {
		c.JSON(http.StatusForbidden, gin.H{"error": d.Reason})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserName != "" {
		target.UserName = req.UserName
	}
	if req.Phone != "" {
		target.Phone = req.Phone
	}
	if len(req.Addresses) > 0 {
		target.Addresses = req.Addresses
	}
	if req.Profile != "" {
		target.Profile = req.Profile
	}
	if err := h.DB.Save(&target).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": userResponse(target)})
}

// UpdatePassword changes the caller's password after verifying the old one
func (h *Handler) UpdatePassword(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid old password"})
		return
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := h.DB.Model(&user).Update("password_hash", passwordHash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully", "user_id": user.ID})
}

// DeleteAccount deletes an account: the holder's own, or any account
// when the caller is an admin.
func (h *Handler) DeleteAccount(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var target models.User
	if err := h.DB.First(&target, uint(targetID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if d := authz.Authorize(actor, authz.DeleteAccount{TargetID: target.ID}); !d.Allow {
		c.JSON(http.StatusForbidden, gin.H{"error": d.Reason})
		return
	}

	if err := h.DB.Delete(&target).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully", "user_id": target.ID})
}
