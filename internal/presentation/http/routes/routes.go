package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fandresena/gereo-server/internal/config"
	"github.com/fandresena/gereo-server/internal/domain/entity"
	domainRepo "github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/internal/presentation/http/handler"
	"github.com/fandresena/gereo-server/internal/presentation/http/middleware"
	"github.com/fandresena/gereo-server/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Stock     *handler.StockHandler
	Sale      *handler.SaleHandler
	Customer  *handler.CustomerHandler
	Expense   *handler.ExpenseHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Summary)

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Product.Delete)
	}

	// Stock entries and movement history
	stock := protected.Group("/stock")
	{
		stock.POST("/entries", h.Stock.RecordEntry)
		stock.GET("/movements", h.Stock.ListMovements)
	}

	// Sales. A retried checkout with the same Idempotency-Key replays the
	// original invoice instead of selling the stock twice.
	idempotency := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}
	sales := protected.Group("/sales")
	{
		sales.POST("", middleware.IdempotencyRequired(idempotency), h.Sale.Record)
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.POST("/:id/pay-debt", h.Customer.PayDebt)
	}

	// Expenses and cash register
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Record)
		expenses.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Expense.Delete)
	}
	protected.GET("/cash-movements", h.Expense.ListCashMovements)
}
