package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "reship/internal/errors"
	"reship/internal/models"
	"reship/internal/validation"
)

type service struct {
	zones       ZoneProvider
	storage     StorageFeeSource
	subscribers SubscriberReader
	lookup      *RateLookup
	config      Config
}

// NewService creates a new quote service. storage and subscribers may be nil:
// quotes then never include a storage fee, and requests must carry a tier.
func NewService(
	zones ZoneProvider,
	storage StorageFeeSource,
	subscribers SubscriberReader,
	config Config,
) Service {
	if zones == nil {
		panic("zone provider is required")
	}

	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &service{
		zones:       zones,
		storage:     storage,
		subscribers: subscribers,
		lookup:      NewRateLookup(config.Fallback),
		config:      config,
	}
}

func (s *service) ComputeQuote(ctx context.Context, req models.ShipmentRequest) (*models.Quote, error) {
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	if req.Tier != "" {
		req.Tier, _ = models.ParseTier(string(req.Tier))
	}

	v := validation.New()
	v.Shipment(&req)
	if !v.Valid() {
		return nil, apperrors.ErrInvalidShipment.WithFields(v.Errors)
	}

	tier, err := s.resolveTier(ctx, req)
	if err != nil {
		return nil, err
	}

	chargeable := ChargeableWeight(req.WeightKg, req.LengthCm, req.WidthCm, req.HeightCm)

	table, err := s.zones.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute quote: load zones: %w", err)
	}

	rate, err := s.lookup.Resolve(table, req.Destination, chargeable, tier)
	if err != nil {
		return nil, fmt.Errorf("compute quote: %w", err)
	}

	quote := &models.Quote{
		ChargeableWeight: chargeable,
		BasePrice:        models.RoundCents(rate.Price),
		Currency:         s.config.Currency,
		Tier:             string(tier),
		ZoneCode:         rate.ZoneCode,
		DefaultCurve:     rate.DefaultCurve,
		FallbackReason:   rate.FallbackReason,
	}

	if req.PackageID != nil && s.storage != nil {
		fee, err := s.storage.StorageFee(ctx, *req.PackageID, s.config.Now())
		if err != nil {
			return nil, fmt.Errorf("compute quote: storage fee for package %d: %w", *req.PackageID, err)
		}
		quote.StorageFee = models.RoundCents(fee.Amount)
		quote.StorageFeeSource = fee.Source
	}

	quote.Total = models.RoundCents(quote.BasePrice + quote.StorageFee)
	return quote, nil
}

func (s *service) resolveTier(ctx context.Context, req models.ShipmentRequest) (models.SubscriptionTier, error) {
	if req.Tier != "" {
		return req.Tier, nil
	}
	if s.subscribers == nil {
		return "", apperrors.ErrInvalidShipment.WithFields(map[string]string{
			"tier": "must be set",
		})
	}

	tier, err := s.subscribers.TierFor(ctx, *req.CustomerID)
	if err != nil {
		return "", fmt.Errorf("compute quote: tier for customer %d: %w", *req.CustomerID, err)
	}
	return tier, nil
}
