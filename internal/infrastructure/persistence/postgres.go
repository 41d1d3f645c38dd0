package persistence

import (
	"time"

	"github.com/juju/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"airline-service/internal/interface/repository"
	"airline-service/pkg/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// NewPostgres opens a GORM connection to PostgreSQL
func NewPostgres(dsn string, log logger.Logger, maxOpenConns, maxIdleConns int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), GormConfig(log))
	if err != nil {
		return nil, errors.Annotate(err, "connecting to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Trace(err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// GormConfig returns the GORM settings shared by every dialector. Driver
// errors are translated so duplicate keys surface as gorm.ErrDuplicatedKey.
func GormConfig(log logger.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(log, slowQueryThreshold),
		TranslateError: true,
	}
}

// Migrate creates or updates the airline, airport and join tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return errors.Annotate(err, "migrating schema")
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Trace(err)
	}
	return sqlDB.Close()
}
