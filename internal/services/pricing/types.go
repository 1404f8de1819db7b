package pricing

import (
	"time"

	"reship/internal/models"
)

// FallbackPolicy decides what happens when no zone band prices a shipment.
type FallbackPolicy int

const (
	// FallbackReject returns a *ConfigurationError.
	FallbackReject FallbackPolicy = iota
	// FallbackDefaultCurve prices on the default curve and logs a warning.
	FallbackDefaultCurve
)

func (p FallbackPolicy) String() string {
	if p == FallbackDefaultCurve {
		return "default_curve"
	}
	return "reject"
}

// RateResult is the outcome of a rate lookup.
type RateResult struct {
	Price          float64
	ZoneCode       string
	Band           *models.RateBand
	DefaultCurve   bool
	FallbackReason string
}

// Config holds quote service settings
type Config struct {
	Currency string
	Fallback FallbackPolicy
	Now      func() time.Time
}
