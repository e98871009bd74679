package handlers

import (
	"net/http"

	"github.com/haons211/pmai-fooddelivery-datn/auth"
	"github.com/haons211/pmai-fooddelivery-datn/middleware"
	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler owns every endpoint, backed by the database and the token
// manager built at startup.
type Handler struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

// New constructs the handler.
func New(db *gorm.DB, tokens *auth.TokenManager) *Handler {
	return &Handler{DB: db, Tokens: tokens}
}

// currentUser loads the authenticated caller's account record. On
// failure it writes the response and returns false.
func (h *Handler) currentUser(c *gin.Context) (models.User, bool) {
	var user models.User
	if err := h.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Logged in user not found"})
		return models.User{}, false
	}
	return user, true
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"phone":     user.Phone,
		"addresses": user.Addresses,
		"profile":   user.Profile,
	}
}
