package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/config"
	"github.com/capsule-retail/inventory-dashboard/internal/models"
	"github.com/capsule-retail/inventory-dashboard/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured database, retrying while it comes up,
// and sizes the connection pool. The returned handle is meant to be passed
// to the stores; nothing in this package keeps it.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	log := logger.Component("database")

	logLevel := gormlogger.Silent
	if cfg.Debug {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= attempts; i++ {
		log.Info().
			Str("driver", cfg.Driver).
			Int("attempt", i).
			Int("max_attempts", attempts).
			Msg("connecting to database")

		var dialector gorm.Dialector
		dialector, err = dialectorFor(cfg)
		if err != nil {
			return nil, err
		}

		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}

		log.Warn().Err(err).Int("attempt", i).Msg("failed to connect to database")
		if i < attempts {
			time.Sleep(cfg.ConnectBackoff)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db after %d attempts: %w", attempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}

	poolSize := cfg.PoolSize
	if cfg.Driver == "sqlite" {
		// single writer
		poolSize = 1
	}
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Str("driver", cfg.Driver).Int("pool_size", poolSize).Msg("connected to database")
	return db, nil
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		return postgres.Open(dsn), nil
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		return sqlite.Open(cfg.Path + "?_busy_timeout=5000"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// Migrate creates or updates the users, inventory and user_activity tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.Activity{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
