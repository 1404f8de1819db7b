package handlers

import (
	"context"
	"time"

	"reship/internal/models"
	"reship/internal/services/accrual"
	"reship/internal/services/checkout"
	"reship/internal/services/pricing"

	"github.com/stretchr/testify/mock"
)

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) ComputeQuote(ctx context.Context, req models.ShipmentRequest) (*models.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

type MockZoneCatalog struct {
	mock.Mock
}

func (m *MockZoneCatalog) Snapshot(ctx context.Context) (*pricing.ZoneTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.ZoneTable), args.Error(1)
}

func (m *MockZoneCatalog) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockAccrualService struct {
	mock.Mock
}

func (m *MockAccrualService) RunBatch(ctx context.Context, now time.Time) (*accrual.BatchResult, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accrual.BatchResult), args.Error(1)
}

func (m *MockAccrualService) Recompute(ctx context.Context, packageID uint, now time.Time) (*accrual.Accrual, error) {
	args := m.Called(ctx, packageID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accrual.Accrual), args.Error(1)
}

func (m *MockAccrualService) StorageFee(ctx context.Context, packageID uint, now time.Time) (models.FeeValue, error) {
	args := m.Called(ctx, packageID, now)
	return args.Get(0).(models.FeeValue), args.Error(1)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *models.StoredPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id uint) (*models.StoredPackage, error) {
	return m.pkgResult(m.Called(ctx, id))
}

func (m *MockPackageRepository) ListReceived(ctx context.Context) ([]models.StoredPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StoredPackage), args.Error(1)
}

func (m *MockPackageRepository) UpdateAccrual(ctx context.Context, update models.AccrualUpdate) error {
	return m.Called(ctx, update).Error(0)
}

func (m *MockPackageRepository) MarkReceived(ctx context.Context, id uint, at time.Time) (*models.StoredPackage, error) {
	return m.pkgResult(m.Called(ctx, id, at))
}

func (m *MockPackageRepository) MarkShipped(ctx context.Context, id uint, at time.Time) (*models.StoredPackage, error) {
	return m.pkgResult(m.Called(ctx, id, at))
}

func (m *MockPackageRepository) SetFeeOverride(ctx context.Context, id uint, amount *float64) (*models.StoredPackage, error) {
	return m.pkgResult(m.Called(ctx, id, amount))
}

func (m *MockPackageRepository) pkgResult(args mock.Arguments) (*models.StoredPackage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredPackage), args.Error(1)
}

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateSession(ctx context.Context, req checkout.Request) (*checkout.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Session), args.Error(1)
}

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Upsert(ctx context.Context, entry *models.AccrualLedgerEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLedgerRepository) Delete(ctx context.Context, packageID uint) error {
	return m.Called(ctx, packageID).Error(0)
}

func (m *MockLedgerRepository) GetByPackageID(ctx context.Context, packageID uint) (*models.AccrualLedgerEntry, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccrualLedgerEntry), args.Error(1)
}
