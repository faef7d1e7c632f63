package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fandresena/gereo-server/internal/config"
	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/pkg/utils"
)

// NewSQLiteDB opens (creating if necessary) the embedded database file for
// this installation
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	path, err := cfg.ResolvePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection keeps
	// transactions from tripping over SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Opened database file %s", path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Setting{},

		&entity.Product{},
		&entity.StockMovement{},

		&entity.Customer{},
		&entity.Invoice{},
		&entity.InvoiceItem{},

		&entity.Expense{},
		&entity.CashMovement{},

		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// DefaultSettings seeded on first run
var DefaultSettings = map[string]string{
	"company_name":         "fandresenaCompany",
	"company_address":      "Antananarivo Ambohijanaka",
	"company_phone":        "0347818742",
	"company_nif":          "52542455",
	"company_stat":         "453148",
	"company_logo_path":    "",
	"default_printer_type": "A4",
}

// SeedDefaultData seeds default settings and the initial administrator
// credential on first run. It is idempotent.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	if err := db.Model(&entity.Setting{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if settingsCount == 0 {
		settings := make([]entity.Setting, 0, len(DefaultSettings))
		for key, value := range DefaultSettings {
			settings = append(settings, entity.Setting{Key: key, Value: value})
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
	}

	var admin entity.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashedPassword, err := utils.HashPassword("admin")
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin = entity.User{
			Username: "admin",
			Password: hashedPassword,
			Role:     entity.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create default admin user: %w", err)
		}
		log.Println("Default admin user created")
	} else if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	log.Println("Default data seeding completed")
	return nil
}
