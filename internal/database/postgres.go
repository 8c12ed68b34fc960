package database

import (
	"fmt"
	"time"

	"github.com/sdko-org/website-generator/internal/config"
	"github.com/sdko-org/website-generator/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(logger *logrus.Logger, cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword,
		cfg.PostgresDatabase, cfg.PostgresSSLMode)

	log := logger.WithFields(logrus.Fields{
		"component": "database",
		"host":      cfg.PostgresHost,
		"database":  cfg.PostgresDatabase,
	})

	var db *gorm.DB
	var err error
	const maxRetries = 5
	retryDelay := 2 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err,
		}).Warn("Database connection failed")

		if attempt < maxRetries {
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}

	if err != nil {
		log.WithError(err).Error("Failed to connect to database after retries")
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := db.AutoMigrate(&models.AccessLog{}, &models.GenerationRun{}); err != nil {
		log.WithError(err).Error("Database migration failed")
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	log.Info("Database connection established")
	return db, nil
}
