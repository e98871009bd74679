package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/haons211/pmai-fooddelivery-datn/auth"
	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthRequired validates the bearer token and injects the caller's user
// ID into the context. The token carries the account ID only; handlers
// load the actor record themselves when they need the role.
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokens.Validate(tokenStr)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "Token expired, please login again"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// AdminRequired loads the caller's account and rejects non-admins. It
// must run after AuthRequired.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, GetUserID(c)).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Logged in user not found"})
			c.Abort()
			return
		}
		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}
