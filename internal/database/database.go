package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/borsibaar/barpos/internal/config"
	"github.com/borsibaar/barpos/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table managed by AutoMigrate, in dependency order.
var Models = []interface{}{
	&models.Role{},
	&models.Organization{},
	&models.User{},
	&models.BarStation{},
	&models.Category{},
	&models.Product{},
	&models.Inventory{},
	&models.InventoryTransaction{},
	&models.Sale{},
	&models.SaleItem{},
}

// Connect opens the configured database and sizes the connection pool.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.GetDSN())
	default:
		dialector = postgres.Open(cfg.Database.GetDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.Logging.Level)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.Database.MinIdleConnections)
	sqlDB.SetConnMaxLifetime(time.Hour)

	slog.Info("database connection established", "driver", cfg.Database.Driver, "host", cfg.Database.Host)
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	slog.Info("running database migrations")
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("database migrations completed")
	return nil
}

// SeedRoles inserts the reference roles if they are missing.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []models.RoleName{models.RoleAdmin, models.RoleUser} {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up role %s: %w", name, err)
		}
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
		slog.Info("seeded role", "role", name)
	}
	return nil
}
