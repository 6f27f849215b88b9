package database

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"topzone/models"
	"topzone/utils/logger"
)

// Connect opens the Postgres connection described by the DB_* env vars
// and optionally auto-migrates the storefront tables. Only called when
// STORAGE_DRIVER=postgres; the default deployment is in-memory.
func Connect() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("Connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if autoMigrateEnv != "" && err != nil {
		logger.Errorf("Invalid value for DB_AUTO_MIGRATE: %s", autoMigrateEnv)
	}

	if autoMigrate {
		logger.Info("Starting auto-migration...")

		if err := db.AutoMigrate(
			&models.Game{},
			&models.Package{},
			&models.Order{},
			&models.Testimonial{},
			&models.Faq{},
		); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}

		logger.Info("Auto migration completed")
	}

	return db, nil
}
