package validation

import (
	"strings"

	"reship/internal/models"
)

// Shipment validates a quote request. A zero dimension means "not measured".
// Tier is only required when no customer is given to look it up.
func (v *Validator) Shipment(req *models.ShipmentRequest) {
	v.Positive("weight_kg", req.WeightKg)
	v.Check(req.WeightKg <= MaxWeightKg, "weight_kg", "exceeds the maximum accepted weight")

	dims := map[string]float64{
		"length_cm": req.LengthCm,
		"width_cm":  req.WidthCm,
		"height_cm": req.HeightCm,
	}
	for field, value := range dims {
		v.NonNegative(field, value)
		v.Check(value <= MaxDimensionCm, field, "exceeds the maximum accepted dimension")
	}

	v.CountryCode("destination", strings.ToUpper(strings.TrimSpace(req.Destination)))

	if req.Tier == "" {
		v.Check(req.CustomerID != nil, "tier", "must be set when customer_id is absent")
	} else {
		v.Check(req.Tier.Valid(), "tier", "must be one of free, premium_monthly, premium, premium_yearly")
	}
}

// FeeOverride validates an operator supplied storage fee.
func (v *Validator) FeeOverride(amount float64) {
	v.Range("amount", amount, 0, MaxFeeOverride)
}

// Zone validates a pricing zone definition before it is stored.
func (v *Validator) Zone(zone *models.PricingZone) {
	v.Required("code", zone.Code)
	v.MaxLength("code", zone.Code, MaxZoneCodeLength)
	v.Required("member_countries", []string(zone.MemberCountries))
	for _, c := range zone.MemberCountries {
		v.CountryCode("member_countries", c)
	}
	for _, b := range zone.Bands {
		v.NonNegative("bands.weight_min", b.WeightMin)
		v.Check(b.WeightMax > b.WeightMin, "bands.weight_max", "must be greater than weight_min")
		v.NonNegative("bands.price_free", b.PriceFree)
		v.NonNegative("bands.price_subscribed", b.PriceSubscribed)
	}
}
