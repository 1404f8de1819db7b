package repositories

import (
	"context"
	"fmt"

	"reship/internal/models"

	"gorm.io/gorm"
)

// ZoneRepository stores pricing zones and their rate bands.
type ZoneRepository interface {
	List(ctx context.Context) ([]models.PricingZone, error)

	// ReplaceAll swaps the whole zone catalog in one transaction.
	ReplaceAll(ctx context.Context, zones []models.PricingZone) error
}

type zoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) ZoneRepository {
	return &zoneRepository{db: db}
}

func (r *zoneRepository) List(ctx context.Context) ([]models.PricingZone, error) {
	var zones []models.PricingZone
	err := r.db.WithContext(ctx).
		Preload("Bands", func(db *gorm.DB) *gorm.DB {
			return db.Order("weight_min")
		}).
		Order("code").
		Find(&zones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

func (r *zoneRepository) ReplaceAll(ctx context.Context, zones []models.PricingZone) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&models.RateBand{}).Error; err != nil {
			return fmt.Errorf("failed to clear rate bands: %w", err)
		}
		if err := all.Delete(&models.PricingZone{}).Error; err != nil {
			return fmt.Errorf("failed to clear zones: %w", err)
		}
		if len(zones) == 0 {
			return nil
		}
		for i := range zones {
			zones[i].ID = 0
			for j := range zones[i].Bands {
				zones[i].Bands[j].ID = 0
				zones[i].Bands[j].ZoneID = 0
			}
		}
		if err := tx.Create(&zones).Error; err != nil {
			return fmt.Errorf("failed to create zones: %w", err)
		}
		return nil
	})
}
