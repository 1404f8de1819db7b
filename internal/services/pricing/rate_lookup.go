package pricing

import (
	"log"

	"reship/internal/models"
)

// RateLookup resolves a destination and chargeable weight to a price.
type RateLookup struct {
	policy FallbackPolicy
}

func NewRateLookup(policy FallbackPolicy) *RateLookup {
	return &RateLookup{policy: policy}
}

func (r *RateLookup) Policy() FallbackPolicy {
	return r.policy
}

// Resolve picks the zone for destination, then the first band containing
// weight, then the tier's price in that band. When either step finds
// nothing the fallback policy applies.
func (r *RateLookup) Resolve(
	table *ZoneTable,
	destination string,
	weight float64,
	tier models.SubscriptionTier,
) (RateResult, error) {
	zone, err := table.ResolveZone(destination)
	if err != nil {
		return RateResult{}, err
	}

	if zone == nil {
		return r.fallback(destination, "", weight, reasonNoZone)
	}

	for i := range zone.Bands {
		band := zone.Bands[i]
		if band.Contains(weight) {
			return RateResult{
				Price:    band.PriceFor(tier),
				ZoneCode: zone.Code,
				Band:     &band,
			}, nil
		}
	}

	return r.fallback(destination, zone.Code, weight, reasonNoBand)
}

func (r *RateLookup) fallback(destination, zoneCode string, weight float64, reason string) (RateResult, error) {
	if r.policy != FallbackDefaultCurve {
		cfgErr := &ConfigurationError{Reason: reason, Destination: normalizeCountry(destination)}
		if zoneCode != "" {
			cfgErr.ZoneCodes = []string{zoneCode}
		}
		return RateResult{}, cfgErr
	}

	log.Printf("Warning: pricing fallback to default curve destination=%s zone=%s weight=%.3f reason=%q",
		normalizeCountry(destination), zoneCode, weight, reason)

	return RateResult{
		Price:          DefaultCurvePrice(weight),
		ZoneCode:       zoneCode,
		DefaultCurve:   true,
		FallbackReason: reason,
	}, nil
}
