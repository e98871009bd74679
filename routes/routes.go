package routes

import (
	"github.com/haons211/pmai-fooddelivery-datn/handlers"
	"github.com/haons211/pmai-fooddelivery-datn/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
		public.POST("/auth/reset-password", h.ResetPassword)

		// Restaurants, foods & categories (no auth needed)
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.GET("/restaurants/:id/foods", h.FoodsByRestaurant)
		public.GET("/foods", h.ListFoods)
		public.GET("/foods/:id", h.GetFood)
		public.GET("/categories", h.ListCategories)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.Tokens))
	{
		auth.GET("/profile", h.GetProfile)
		auth.POST("/profile/password", h.UpdatePassword)
		auth.PUT("/users/:id", h.UpdateProfile)
		auth.DELETE("/users/:id", h.DeleteAccount)

		auth.POST("/restaurants", h.CreateRestaurant)
		auth.DELETE("/restaurants/:id", h.DeleteRestaurant)

		auth.POST("/orders", h.PlaceOrder)
		auth.GET("/orders", h.GetMyOrders)
		auth.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(h.Tokens), middleware.AdminRequired(h.DB))
	{
		admin.GET("/users", h.AdminGetAllUsers)
		admin.GET("/orders", h.AdminGetAllOrders)

		admin.POST("/foods", h.CreateFood)
		admin.PUT("/foods/:id", h.UpdateFood)
		admin.DELETE("/foods/:id", h.DeleteFood)

		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)
	}
}
