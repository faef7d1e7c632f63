package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/fandresena/gereo-server/internal/application/service"
	"github.com/fandresena/gereo-server/internal/config"
	"github.com/fandresena/gereo-server/internal/infrastructure/database"
	"github.com/fandresena/gereo-server/internal/infrastructure/repository"
	"github.com/fandresena/gereo-server/internal/presentation/http/handler"
	"github.com/fandresena/gereo-server/internal/presentation/http/routes"
	"github.com/fandresena/gereo-server/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default settings and the initial admin account
	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	cashRepo := repository.NewCashMovementRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Expired idempotency keys from previous runs are dead weight
	if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("Warning: failed to purge expired idempotency keys: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(uow, productRepo)
	stockService := service.NewStockService(uow, movementRepo)
	saleService := service.NewSaleService(uow, invoiceRepo)
	customerService := service.NewCustomerService(uow, customerRepo)
	expenseService := service.NewExpenseService(uow, expenseRepo, cashRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	dashboardService := service.NewDashboardService(productRepo, invoiceRepo, customerRepo, cashRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Stock:     handler.NewStockHandler(stockService),
		Sale:      handler.NewSaleHandler(saleService),
		Customer:  handler.NewCustomerHandler(customerService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
