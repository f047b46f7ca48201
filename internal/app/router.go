package app

import (
	authHandler "vos-erp-service/internal/handlers/auth"
	customerHandler "vos-erp-service/internal/handlers/customer"
	lookupHandler "vos-erp-service/internal/handlers/lookup"
	supplierHandler "vos-erp-service/internal/handlers/supplier"
	userHandler "vos-erp-service/internal/handlers/user"
	"vos-erp-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	UserHandler     *userHandler.UserHandler
	CustomerHandler *customerHandler.CustomerHandler
	SupplierHandler *supplierHandler.SupplierHandler
	LookupHandler   *lookupHandler.LookupHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/login-rfid", h.AuthHandler.LoginRFID)
		// Logout is deliberately public: clearing cookies must work even
		// when the session is already dead.
		auth.POST("/logout", h.AuthHandler.Logout)
	}

	// ==================== Lookups ====================
	lookups := api.Group("/lookup")
	lookups.Use(h.AuthMiddleware.Auth())
	{
		lookups.GET("/:resource", h.LookupHandler.Options)
	}

	// ==================== Customers ====================
	customers := api.Group("/customers")
	customers.Use(h.AuthMiddleware.Auth())
	{
		customers.GET("", h.CustomerHandler.List)
		customers.GET("/:id", h.CustomerHandler.Get)
		customers.POST("", h.CustomerHandler.Create)
		customers.PUT("/:id", h.CustomerHandler.Update)
		customers.DELETE("/:id", h.CustomerHandler.Delete)
	}

	// ==================== Suppliers ====================
	suppliers := api.Group("/suppliers")
	suppliers.Use(h.AuthMiddleware.Auth())
	{
		suppliers.GET("", h.SupplierHandler.List)
		suppliers.GET("/:id", h.SupplierHandler.Get)
		suppliers.POST("", h.SupplierHandler.Create)
		suppliers.PUT("/:id", h.SupplierHandler.Update)
		suppliers.DELETE("/:id", h.SupplierHandler.Delete)
	}

	// ==================== User Administration ====================
	users := api.Group("/users")
	users.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireAdmin())
	{
		users.GET("", h.UserHandler.List)
		users.GET("/:id", h.UserHandler.Get)
		users.POST("", h.UserHandler.Create)
		users.PUT("/:id", h.UserHandler.Update)
		users.DELETE("/:id", h.UserHandler.Delete)
	}
}
