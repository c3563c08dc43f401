package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecoscrap.backend/internal/interfaces/http/handlers"
	"ecoscrap.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	productHandler     *handlers.ProductHandler
	pickupHandler      *handlers.PickupHandler
	transactionHandler *handlers.TransactionHandler
	contentHandler     *handlers.ContentHandler
	adminHandler       *handlers.AdminHandler
	dashboardHandler   *handlers.DashboardHandler
	authMiddleware     gin.HandlerFunc
	requireActive      gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "ecoscrap-backend",
			"version": "1.0.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/profile", d.authMiddleware, d.requireActive, d.authHandler.GetProfile)
			auth.PUT("/profile", d.authMiddleware, d.requireActive, d.authHandler.UpdateProfile)
			auth.POST("/change-password", d.authMiddleware, d.requireActive, d.authHandler.ChangePassword)
		}

		// Marketplace listings (public read, dealer write)
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.ListProducts)
			products.POST("", d.authMiddleware, d.requireActive, middleware.RequireDealer(), d.productHandler.CreateProduct)
			products.PUT("/:id", d.authMiddleware, d.requireActive, d.productHandler.UpdateProduct)
			products.DELETE("/:id", d.authMiddleware, d.requireActive, d.productHandler.DeleteProduct)
		}

		// Pickup scheduling (protected)
		pickups := v1.Group("/pickups")
		pickups.Use(d.authMiddleware, d.requireActive)
		{
			pickups.GET("", d.pickupHandler.ListPickups)
			pickups.POST("", middleware.RequireCustomer(), d.pickupHandler.CreatePickup)
			pickups.PUT("/:id", d.pickupHandler.UpdatePickup)
		}

		// Public value calculator
		v1.POST("/estimate", d.pickupHandler.Estimate)

		// Orders (protected)
		transactions := v1.Group("/transactions")
		transactions.Use(d.authMiddleware, d.requireActive)
		{
			transactions.GET("", d.transactionHandler.ListTransactions)
			transactions.POST("", middleware.RequireCustomer(), middleware.IdempotencyMiddleware(), d.transactionHandler.CreateTransaction)
		}

		// Rates and tips (public read, admin write)
		v1.GET("/rates", d.contentHandler.ListRates)
		v1.PUT("/rates", d.authMiddleware, d.requireActive, middleware.RequireAdmin(), d.contentHandler.UpdateRates)
		v1.GET("/tips", d.contentHandler.ListTips)

		tips := v1.Group("/tips")
		tips.Use(d.authMiddleware, d.requireActive, middleware.RequireAdmin())
		{
			tips.POST("", d.contentHandler.CreateTip)
			tips.PUT("/:id", d.contentHandler.UpdateTip)
			tips.DELETE("/:id", d.contentHandler.DeleteTip)
		}

		// Dashboard (protected, role-aware)
		v1.GET("/dashboard/stats", d.authMiddleware, d.requireActive, d.dashboardHandler.GetStats)

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.requireActive, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id", d.adminHandler.UpdateUser)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)

			admin.POST("/products/:id/approve", d.adminHandler.ApproveProduct)
			admin.POST("/products/:id/reject", d.adminHandler.RejectProduct)
		}
	}
}
