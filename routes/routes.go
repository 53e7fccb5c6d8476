package routes

import (
	"cafe-pos-api/handlers"
	"cafe-pos-api/middleware"
	"cafe-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/:id", handlers.GetMenuItem)
		public.GET("/cafe", handlers.GetCafeInfo)

		// Cart (token-addressed, no auth needed)
		public.POST("/cart/items", handlers.AddToCart)
		public.GET("/cart/:token", handlers.GetCart)
		public.PUT("/cart/:token/items/:itemId", handlers.UpdateCartItem)
		public.DELETE("/cart/:token/items/:itemId", handlers.RemoveCartItem)

		// Checkout
		public.POST("/orders", handlers.SubmitOrder)
		public.GET("/orders/:id", handlers.GetOrder)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated staff routes ─────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Staff routes (any role) ────────────────────────────────────
	staff := r.Group("/api/staff")
	staff.Use(middleware.AuthRequired())
	{
		// Order management
		staff.GET("/orders", handlers.ListOrders)
		staff.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		staff.POST("/orders/:id/items", handlers.AddOrderItem)
		staff.PUT("/orders/:id/items/:itemId", handlers.UpdateOrderItem)
		staff.DELETE("/orders/:id/items/:itemId", handlers.RemoveOrderItem)

		// Menu management
		staff.POST("/categories", handlers.AddCategory)
		staff.PUT("/categories/:id", handlers.UpdateCategory)
		staff.DELETE("/categories/:id", handlers.DeleteCategory)
		staff.POST("/menu", handlers.AddMenuItem)
		staff.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		staff.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		// Table management
		staff.POST("/tables", handlers.AddTable)
		staff.PUT("/tables/:id/status", handlers.UpdateTableStatus)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api/manager")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager))
	{
		manager.GET("/reports/sales", handlers.SalesReport)
		manager.GET("/reports/sales/export", handlers.ExportSalesReport)
		manager.GET("/reports/top-products", handlers.TopProducts)
		manager.GET("/reports/peak-hours", handlers.PeakHours)
		manager.GET("/reports/summary", handlers.SalesSummary)

		manager.GET("/customers", handlers.ListCustomers)
		manager.PUT("/customers/:id/deactivate", handlers.DeactivateCustomer)
		manager.GET("/staff", handlers.ListStaff)

		manager.DELETE("/orders/cleanup", handlers.CleanupOrders)
	}
}
