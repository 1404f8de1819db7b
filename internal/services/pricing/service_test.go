package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "reship/internal/errors"
	"reship/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockZoneProvider struct {
	mock.Mock
}

func (m *MockZoneProvider) Snapshot(ctx context.Context) (*ZoneTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ZoneTable), args.Error(1)
}

type MockStorageFees struct {
	mock.Mock
}

func (m *MockStorageFees) StorageFee(ctx context.Context, packageID uint, now time.Time) (models.FeeValue, error) {
	args := m.Called(ctx, packageID, now)
	return args.Get(0).(models.FeeValue), args.Error(1)
}

type MockSubscribers struct {
	mock.Mock
}

func (m *MockSubscribers) TierFor(ctx context.Context, userID uint) (models.SubscriptionTier, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.SubscriptionTier), args.Error(1)
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, policy FallbackPolicy) (Service, *MockZoneProvider, *MockStorageFees, *MockSubscribers) {
	t.Helper()

	table, err := NewZoneTable([]models.PricingZone{euZone()})
	require.NoError(t, err)

	zones := new(MockZoneProvider)
	zones.On("Snapshot", mock.Anything).Return(table, nil).Maybe()
	storage := new(MockStorageFees)
	subscribers := new(MockSubscribers)

	svc := NewService(zones, storage, subscribers, Config{
		Currency: "EUR",
		Fallback: policy,
		Now:      func() time.Time { return fixedNow },
	})
	return svc, zones, storage, subscribers
}

func TestComputeQuote_UnmatchedDestinationFallsBack(t *testing.T) {
	svc, _, _, _ := newTestService(t, FallbackDefaultCurve)

	quote, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
		WeightKg:    0.5,
		Destination: "JP",
		Tier:        models.TierFree,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, quote.ChargeableWeight)
	assert.Equal(t, 15.0, quote.BasePrice)
	assert.Equal(t, 15.0, quote.Total)
	assert.True(t, quote.DefaultCurve)
	assert.Equal(t, "EUR", quote.Currency)
}

func TestComputeQuote_VolumetricWeightOnCurve(t *testing.T) {
	svc, _, _, _ := newTestService(t, FallbackDefaultCurve)

	quote, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
		WeightKg:    1,
		LengthCm:    30,
		WidthCm:     20,
		HeightCm:    10,
		Destination: "US",
		Tier:        models.TierFree,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.2, quote.ChargeableWeight, 1e-9)
	assert.Equal(t, 20.0, quote.BasePrice)
}

func TestComputeQuote_WithStorageFee(t *testing.T) {
	svc, _, storage, _ := newTestService(t, FallbackReject)
	pkgID := uint(42)

	storage.On("StorageFee", mock.Anything, pkgID, fixedNow).
		Return(models.ManualOverride(7.50, 2.00), nil)

	quote, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
		WeightKg:    1,
		Destination: "de",
		Tier:        "Premium_Monthly",
		PackageID:   &pkgID,
	})
	require.NoError(t, err)

	assert.Equal(t, "EU1", quote.ZoneCode)
	assert.Equal(t, 9.0, quote.BasePrice)
	assert.Equal(t, 7.50, quote.StorageFee)
	assert.Equal(t, models.FeeSourceManualOverride, quote.StorageFeeSource)
	assert.Equal(t, 16.50, quote.Total)
	storage.AssertExpectations(t)
}

func TestComputeQuote_TierFromSubscriber(t *testing.T) {
	svc, _, _, subscribers := newTestService(t, FallbackReject)
	customer := uint(5)

	subscribers.On("TierFor", mock.Anything, customer).Return(models.TierPremiumYearly, nil)

	quote, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
		WeightKg:    3,
		Destination: "FR",
		CustomerID:  &customer,
	})
	require.NoError(t, err)

	assert.Equal(t, "premium_yearly", quote.Tier)
	assert.Equal(t, 18.0, quote.BasePrice)
	subscribers.AssertExpectations(t)
}

func TestComputeQuote_Errors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		svc, zones, _, _ := newTestService(t, FallbackDefaultCurve)

		_, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
			WeightKg:    -1,
			Destination: "FR",
			Tier:        models.TierFree,
		})

		var de *apperrors.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, apperrors.ErrInvalidShipment.Code, de.Code)
		assert.Contains(t, de.Fields, "weight_kg")
		zones.AssertNotCalled(t, "Snapshot", mock.Anything)
	})

	t.Run("rejected fallback", func(t *testing.T) {
		svc, _, _, _ := newTestService(t, FallbackReject)

		_, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
			WeightKg:    1,
			Destination: "JP",
			Tier:        models.TierFree,
		})
		assert.ErrorIs(t, err, apperrors.ErrZoneConfiguration)
	})

	t.Run("snapshot failure", func(t *testing.T) {
		zones := new(MockZoneProvider)
		zones.On("Snapshot", mock.Anything).Return(nil, errors.New("db down"))
		svc := NewService(zones, nil, nil, Config{})

		_, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
			WeightKg:    1,
			Destination: "FR",
			Tier:        models.TierFree,
		})
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("package lookup failure", func(t *testing.T) {
		svc, _, storage, _ := newTestService(t, FallbackDefaultCurve)
		pkgID := uint(9)
		storage.On("StorageFee", mock.Anything, pkgID, fixedNow).
			Return(models.FeeValue{}, apperrors.ErrPackageNotFound)

		_, err := svc.ComputeQuote(context.Background(), models.ShipmentRequest{
			WeightKg:    1,
			Destination: "FR",
			Tier:        models.TierFree,
			PackageID:   &pkgID,
		})
		assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
	})
}
