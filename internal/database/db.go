package database

import (
	"time"

	"sellos/internal/logger"
	"sellos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolConfig bounds the underlying sql.DB pool
type PoolConfig struct {
	MaxOpen int
	MaxIdle int
}

// NewConnection opens the gorm connection pool and migrates the schema
func NewConnection(dsn string, pool PoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if pool.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpen)
	}
	if pool.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		log := logger.WithComponent("database")
		log.Warn().Err(err).Msg("failed to auto-migrate models")
	}

	return db, nil
}

// Migrate creates or updates every table the service owns
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Act{},
		&model.Currency{},
		&model.Product{},
		&model.Client{},
		&model.ClientRegistry{},
		&model.StampRecord{},
		&model.AuditLog{},
	)
}
