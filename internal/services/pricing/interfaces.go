package pricing

import (
	"context"
	"time"

	"reship/internal/models"
)

// Service defines the quote service interface
type Service interface {
	ComputeQuote(ctx context.Context, req models.ShipmentRequest) (*models.Quote, error)
}

// ZoneProvider supplies the current pricing zone snapshot.
type ZoneProvider interface {
	Snapshot(ctx context.Context) (*ZoneTable, error)
}

// StorageFeeSource reports the storage fee a package has accrued at now.
type StorageFeeSource interface {
	StorageFee(ctx context.Context, packageID uint, now time.Time) (models.FeeValue, error)
}

// SubscriberReader looks up a customer's tier. Unknown customers are free tier.
type SubscriberReader interface {
	TierFor(ctx context.Context, userID uint) (models.SubscriptionTier, error)
}

// ZoneSource reads the persisted zone catalog.
type ZoneSource interface {
	List(ctx context.Context) ([]models.PricingZone, error)
}

// ZoneCache holds the last loaded zone catalog.
type ZoneCache interface {
	GetZones(ctx context.Context) ([]models.PricingZone, bool, error)
	CacheZones(ctx context.Context, zones []models.PricingZone) error
	InvalidateZones(ctx context.Context) error
}
