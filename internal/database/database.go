// Package database owns the connection, schema migration, and the one-time
// demonstration seed.
package database

import (
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"products-api/models"
)

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates both tables. Idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
	)
}

// Seed populates demonstration data. Each table is checked independently and
// only seeded while empty, so restarting the service never duplicates rows.
func Seed(db *gorm.DB, logger *zerolog.Logger) error {
	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		categories := seedCategories()
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&categories).Error
		}); err != nil {
			return err
		}
		logger.Info().Int("count", len(categories)).Msg("categories seeded")
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := seedProducts()
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&products).Error
		}); err != nil {
			return err
		}
		logger.Info().Int("count", len(products)).Msg("products seeded")
	}

	return nil
}
