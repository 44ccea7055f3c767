package migration

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SeedCatalog inserts a sample set of challenges and products when the
// respective tables are empty
func SeedCatalog(ctx context.Context, db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) error {
	now := timeProvider.Now()
	deadline := now.Add(30 * 24 * time.Hour)

	challenges := []model.Challenge{
		{Title: "Hello Portal", Slug: "hello-portal", Description: "Introduce yourself in the discussions.", Points: 50, CreatedAt: now},
		{Title: "First Contribution", Slug: "first-contribution", Description: "Open your first pull request.", Points: 150, CreatedAt: now},
		{Title: "Monthly Sprint", Slug: "monthly-sprint", Description: "Ship a feature before the deadline.", Deadline: &deadline, Points: 300, CreatedAt: now},
	}
	products := []model.Product{
		{Title: "Sticker Pack", Price: 100, ImageURL: "/images/products/stickers.png", IsActive: true, CreatedAt: now},
		{Title: "Coffee Mug", Price: 250, ImageURL: "/images/products/mug.png", IsActive: true, CreatedAt: now},
		{Title: "Hoodie", Price: 800, ImageURL: "/images/products/hoodie.png", IsActive: true, CreatedAt: now},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Challenge{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Create(&challenges).Error; err != nil {
				return err
			}
			logger.Info("Seeded sample challenges", map[string]any{"count": len(challenges)})
		}

		if err := tx.Model(&model.Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
			logger.Info("Seeded sample products", map[string]any{"count": len(products)})
		}
		return nil
	})
}
