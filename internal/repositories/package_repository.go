package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reship/internal/models"

	"gorm.io/gorm"
)

// PackageRepository defines the stored package operations
type PackageRepository interface {
	Create(ctx context.Context, pkg *models.StoredPackage) error
	GetByID(ctx context.Context, id uint) (*models.StoredPackage, error)
	ListReceived(ctx context.Context) ([]models.StoredPackage, error)

	// UpdateAccrual writes only the columns owned by the accrual engine.
	// daily_rate is never written here; it holds the operator's rate.
	UpdateAccrual(ctx context.Context, update models.AccrualUpdate) error

	// Warehouse transitions
	MarkReceived(ctx context.Context, id uint, at time.Time) (*models.StoredPackage, error)
	MarkShipped(ctx context.Context, id uint, at time.Time) (*models.StoredPackage, error)

	// SetFeeOverride stores an operator fee; nil clears it.
	SetFeeOverride(ctx context.Context, id uint, amount *float64) (*models.StoredPackage, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.StoredPackage) error {
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *packageRepository) GetByID(ctx context.Context, id uint) (*models.StoredPackage, error) {
	var pkg models.StoredPackage
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return &pkg, nil
}

func (r *packageRepository) ListReceived(ctx context.Context) ([]models.StoredPackage, error) {
	var pkgs []models.StoredPackage
	err := r.db.WithContext(ctx).
		Where("state = ?", models.PackageReceived).
		Order("id").
		Find(&pkgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list received packages: %w", err)
	}
	return pkgs, nil
}

func (r *packageRepository) UpdateAccrual(ctx context.Context, u models.AccrualUpdate) error {
	computedAt := u.ComputedAt
	result := r.db.WithContext(ctx).
		Model(&models.StoredPackage{}).
		Where("id = ? AND state = ?", u.PackageID, models.PackageReceived).
		Select(
			"last_computed_at",
			"accrued_free_days",
			"current_days_stored",
			"current_chargeable_days",
			"current_fee",
			"fee_source",
			"status",
		).
		Updates(models.StoredPackage{
			LastComputedAt:        &computedAt,
			AccruedFreeDays:       u.AccruedFreeDays,
			CurrentDaysStored:     u.CurrentDaysStored,
			CurrentChargeableDays: u.CurrentChargeableDays,
			CurrentFee:            u.CurrentFee,
			FeeSource:             u.FeeSource,
			Status:                u.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update package accrual: %w", classifyWrite(result.Error))
	}
	if result.RowsAffected == 0 {
		// Shipped or deleted since it was listed.
		return ErrPackageNotFound
	}
	return nil
}

func (r *packageRepository) MarkReceived(ctx context.Context, id uint, at time.Time) (*models.StoredPackage, error) {
	return r.transition(ctx, id, models.PackageAwaiting, map[string]interface{}{
		"state":              models.PackageReceived,
		"storage_start_date": at,
	})
}

func (r *packageRepository) MarkShipped(ctx context.Context, id uint, at time.Time) (*models.StoredPackage, error) {
	return r.transition(ctx, id, models.PackageReceived, map[string]interface{}{
		"state":      models.PackageShipped,
		"shipped_at": at,
	})
}

func (r *packageRepository) SetFeeOverride(ctx context.Context, id uint, amount *float64) (*models.StoredPackage, error) {
	var pkg models.StoredPackage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pkg, id).Error; err != nil {
			return err
		}
		return tx.Model(&pkg).Update("fee_override", amount).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to set fee override: %w", classifyWrite(err))
	}
	pkg.FeeOverride = amount
	return &pkg, nil
}

// transition moves a package out of from, failing with ErrPackageState
// when it is in any other state.
func (r *packageRepository) transition(ctx context.Context, id uint, from models.PackageState, values map[string]interface{}) (*models.StoredPackage, error) {
	var pkg models.StoredPackage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pkg, id).Error; err != nil {
			return err
		}
		if pkg.State != from {
			return fmt.Errorf("%w: package %d is %s", ErrPackageState, id, pkg.State)
		}
		if err := tx.Model(&pkg).Updates(values).Error; err != nil {
			return err
		}
		return tx.First(&pkg, id).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrPackageNotFound
		case errors.Is(err, ErrPackageState):
			return nil, err
		}
		return nil, fmt.Errorf("failed to update package state: %w", classifyWrite(err))
	}
	return &pkg, nil
}
