/*
Package pricing computes shipping quotes.

A quote is built in three steps:

  - VolumetricWeight / ChargeableWeight turn weight and box size into the
    weight the carrier bills.
  - RateLookup resolves the destination to a PricingZone from a ZoneTable
    snapshot and picks the band price for the customer's tier, or the
    default curve when the FallbackPolicy allows it.
  - Service.ComputeQuote adds the package's storage fee, if any.

Usage:

	table, err := pricing.NewZoneTable(zones)
	lookup := pricing.NewRateLookup(pricing.FallbackDefaultCurve)
	rate, err := lookup.Resolve(table, "DE", pricing.ChargeableWeight(1, 30, 20, 10), models.TierFree)

Errors:

  - *ConfigurationError: two zones claim a destination, bands are not
    contiguous, or the fallback policy rejects an unmatched destination.
  - errors.ErrInvalidShipment: the request failed validation.
*/
package pricing
