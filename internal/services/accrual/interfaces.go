package accrual

import (
	"context"
	"time"

	"reship/internal/models"
)

// Service defines the storage accrual service interface
type Service interface {
	// RunBatch recomputes every received package.
	RunBatch(ctx context.Context, now time.Time) (*BatchResult, error)

	// Recompute recomputes and persists a single received package.
	Recompute(ctx context.Context, packageID uint, now time.Time) (*Accrual, error)

	// StorageFee reports a package's fee at now without writing anything.
	StorageFee(ctx context.Context, packageID uint, now time.Time) (models.FeeValue, error)
}

type PackageRepository interface {
	ListReceived(ctx context.Context) ([]models.StoredPackage, error)
	GetByID(ctx context.Context, id uint) (*models.StoredPackage, error)
	UpdateAccrual(ctx context.Context, update models.AccrualUpdate) error
}

type LedgerRepository interface {
	Upsert(ctx context.Context, entry *models.AccrualLedgerEntry) error
	Delete(ctx context.Context, packageID uint) error
}

// MetricsCollector defines the interface for collecting accrual metrics
type MetricsCollector interface {
	RecordBatchDuration(duration time.Duration)
	RecordPackageResult(result string)
	RecordFee(source models.FeeSource, amount float64)
}
