package repositories

import (
	"context"
	"errors"
	"fmt"

	"reship/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrLedgerEntryNotFound = errors.New("ledger entry not found")

// LedgerRepository keeps one accrual ledger row per package.
type LedgerRepository interface {
	// Upsert replaces the package's row, keeping its original id.
	Upsert(ctx context.Context, entry *models.AccrualLedgerEntry) error
	GetByPackageID(ctx context.Context, packageID uint) (*models.AccrualLedgerEntry, error)
	// Delete removes the package's row, if any.
	Delete(ctx context.Context, packageID uint) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Upsert(ctx context.Context, entry *models.AccrualLedgerEntry) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "package_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"days_stored",
				"chargeable_days",
				"fee",
				"computed_fee",
				"fee_source",
				"computed_at",
				"details",
				"updated_at",
			}),
		}).
		Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert ledger entry: %w", classifyWrite(err))
	}
	return nil
}

func (r *ledgerRepository) GetByPackageID(ctx context.Context, packageID uint) (*models.AccrualLedgerEntry, error) {
	var entry models.AccrualLedgerEntry
	if err := r.db.WithContext(ctx).Where("package_id = ?", packageID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return &entry, nil
}

func (r *ledgerRepository) Delete(ctx context.Context, packageID uint) error {
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		Delete(&models.AccrualLedgerEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", classifyWrite(err))
	}
	return nil
}
