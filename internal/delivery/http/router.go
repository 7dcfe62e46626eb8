package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "networth/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	Auth *custommiddleware.Authenticator

	AuthHandler           *AuthHandler
	AccountHandler        *AccountHandler
	BankAccountHandler    *BankAccountHandler
	EtfHandler            *EtfHandler
	EtfTransactionHandler *EtfTransactionHandler
	SuperannuationHandler *SuperannuationHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":    "healthy",
			"service":   "networth-api",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	e.POST("/register/", config.AuthHandler.Register)
	e.POST("/api-token-auth/", config.AuthHandler.ObtainToken)

	// Authenticated routes
	r := e.Group("", config.Auth.Middleware)

	r.POST("/logout/", config.AuthHandler.Logout)

	r.GET("/accounts/", config.AccountHandler.List)
	r.POST("/accounts/", config.AccountHandler.Create)
	r.GET("/accounts/:id/", config.AccountHandler.Retrieve)
	r.PUT("/accounts/:id/", config.AccountHandler.Update)
	r.PATCH("/accounts/:id/", config.AccountHandler.Patch)
	r.DELETE("/accounts/:id/", config.AccountHandler.Delete)

	r.GET("/bank_accounts/", config.BankAccountHandler.List)
	r.POST("/bank_accounts/", config.BankAccountHandler.Create)
	r.GET("/bank_accounts/:id/", config.BankAccountHandler.Retrieve)
	r.PUT("/bank_accounts/:id/", config.BankAccountHandler.Update)
	r.PATCH("/bank_accounts/:id/", config.BankAccountHandler.Patch)
	r.DELETE("/bank_accounts/:id/", config.BankAccountHandler.Delete)

	r.GET("/etfs/", config.EtfHandler.List)
	r.POST("/etfs/", config.EtfHandler.Create)
	r.GET("/etfs/:id/", config.EtfHandler.Retrieve)
	r.PUT("/etfs/:id/", config.EtfHandler.Update)
	r.PATCH("/etfs/:id/", config.EtfHandler.Patch)
	r.DELETE("/etfs/:id/", config.EtfHandler.Delete)
	r.GET("/etfs/:id/transactions/", config.EtfHandler.Transactions)

	r.GET("/etf_transactions/", config.EtfTransactionHandler.List)
	r.POST("/etf_transactions/", config.EtfTransactionHandler.Create)
	r.GET("/etf_transactions/:id/", config.EtfTransactionHandler.Retrieve)
	r.PUT("/etf_transactions/:id/", config.EtfTransactionHandler.Update)
	r.PATCH("/etf_transactions/:id/", config.EtfTransactionHandler.Patch)
	r.DELETE("/etf_transactions/:id/", config.EtfTransactionHandler.Delete)

	r.GET("/superannuations/", config.SuperannuationHandler.List)
	r.POST("/superannuations/", config.SuperannuationHandler.Create)
	r.GET("/superannuations/:id/", config.SuperannuationHandler.Retrieve)
	r.PUT("/superannuations/:id/", config.SuperannuationHandler.Update)
	r.PATCH("/superannuations/:id/", config.SuperannuationHandler.Patch)
	r.DELETE("/superannuations/:id/", config.SuperannuationHandler.Delete)

	// Admin routes (staff/superuser only, unscoped reads)
	admin := e.Group("", config.Auth.Middleware, config.Auth.RequireStaff)
	admin.GET("/admin_bank_accounts/", config.BankAccountHandler.AdminList)
}
