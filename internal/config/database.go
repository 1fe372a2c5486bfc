package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the gorm connection for the given driver and stores it in DB.
func Connect(ctx context.Context, driver, dsn string) error {
	var dialector gorm.Dialector
	switch driver {
	case StorePostgres:
		if dsn == "" {
			return fmt.Errorf("DATABASE_DSN is required for the %s store", driver)
		}
		dialector = postgres.Open(dsn)
	case StoreSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", driver, err)
	}

	WithContext(ctx).WithField("driver", driver).Info("Database connected")
	DB = db
	return nil
}
