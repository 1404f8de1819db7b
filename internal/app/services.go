// Package app wires repositories and services from the environment.
// The HTTP server and the feectl CLI build their dependencies here.
package app

import (
	"context"
	"log"
	"time"

	"reship/internal/config"
	"reship/internal/models"
	"reship/internal/repositories"
	"reship/internal/repositories/cache"
	"reship/internal/services/accrual"
	"reship/internal/services/checkout"
	"reship/internal/services/pricing"

	"gorm.io/gorm"
)

// Services holds everything the HTTP layer and the CLI call into.
type Services struct {
	Quotes   pricing.Service
	Zones    *pricing.CachedZoneProvider
	Accrual  accrual.Service
	Checkout checkout.Service

	Packages    repositories.PackageRepository
	Ledger      repositories.LedgerRepository
	ZoneRepo    repositories.ZoneRepository
	Subscribers repositories.SubscriberRepository
}

// FallbackPolicy reads PRICING_DEFAULT_CURVE_FALLBACK.
func FallbackPolicy() pricing.FallbackPolicy {
	if config.GetBoolEnv("PRICING_DEFAULT_CURVE_FALLBACK", true) {
		return pricing.FallbackDefaultCurve
	}
	return pricing.FallbackReject
}

// AccrualConfig reads the ACCRUAL_* settings.
func AccrualConfig() accrual.Config {
	return accrual.Config{
		DailyRate:      config.GetFloatEnv("ACCRUAL_DAILY_RATE", accrual.DefaultDailyRate),
		Workers:        config.GetIntEnv("ACCRUAL_WORKERS", accrual.DefaultWorkers),
		PackageTimeout: config.GetDurationEnv("ACCRUAL_PACKAGE_TIMEOUT", accrual.DefaultPackageTimeout),
	}
}

// NewServices builds the service graph. zoneCache may be nil to always read
// zones from Postgres; metrics may be nil.
func NewServices(db *gorm.DB, zoneCache *cache.CacheService, metrics accrual.MetricsCollector) *Services {
	packageRepo := repositories.NewPackageRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	zoneRepo := repositories.NewZoneRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)

	// A typed nil *CacheService must not reach the provider as a non-nil interface.
	var zoneStore pricing.ZoneCache
	if zoneCache != nil {
		zoneStore = zoneCache
	}
	zones := pricing.NewCachedZoneProvider(zoneRepo, zoneStore)

	accrualService := accrual.NewService(packageRepo, ledgerRepo, AccrualConfig(), metrics)

	quoteService := pricing.NewService(zones, accrualService, subscriberRepo, pricing.Config{
		Currency: config.GetEnv("PRICING_CURRENCY", pricing.DefaultCurrency),
		Fallback: FallbackPolicy(),
	})

	checkoutService := checkout.NewService(checkout.Config{
		SecretKey:  config.GetEnv("STRIPE_SECRET_KEY", ""),
		SuccessURL: config.GetEnv("CHECKOUT_SUCCESS_URL", ""),
		CancelURL:  config.GetEnv("CHECKOUT_CANCEL_URL", ""),
		Currency:   config.GetEnv("PRICING_CURRENCY", pricing.DefaultCurrency),
	}, nil)

	return &Services{
		Quotes:   quoteService,
		Zones:    zones,
		Accrual:  accrualService,
		Checkout: checkoutService,

		Packages:    packageRepo,
		Ledger:      ledgerRepo,
		ZoneRepo:    zoneRepo,
		Subscribers: subscriberRepo,
	}
}

// ImportZones replaces the stored catalog and drops the cached snapshot.
// The catalog must build a valid zone table before anything is written.
func (s *Services) ImportZones(ctx context.Context, zones []models.PricingZone) error {
	if _, err := pricing.NewZoneTable(zones); err != nil {
		return err
	}
	if err := s.ZoneRepo.ReplaceAll(ctx, zones); err != nil {
		return err
	}
	return s.Zones.Invalidate(ctx)
}

// StartAccrualTicker runs the batch every interval until ctx is done.
func (s *Services) StartAccrualTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if _, err := s.Accrual.RunBatch(ctx, now); err != nil {
					log.Printf("Warning: scheduled accrual batch failed: %v", err)
				}
			}
		}
	}()
}
