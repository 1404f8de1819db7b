package models

// ShipmentRequest is the input of a quote. Dimensions of 0 mean "not measured".
type ShipmentRequest struct {
	WeightKg    float64          `json:"weight_kg"`
	LengthCm    float64          `json:"length_cm"`
	WidthCm     float64          `json:"width_cm"`
	HeightCm    float64          `json:"height_cm"`
	Destination string           `json:"destination"`
	Tier        SubscriptionTier `json:"tier"`
	CustomerID  *uint            `json:"customer_id,omitempty"`
	PackageID   *uint            `json:"package_id,omitempty"`
}

type Quote struct {
	ChargeableWeight float64   `json:"chargeable_weight"`
	BasePrice        float64   `json:"base_price"`
	StorageFee       float64   `json:"storage_fee"`
	StorageFeeSource FeeSource `json:"storage_fee_source,omitempty"`
	Total            float64   `json:"total"`
	Currency         string    `json:"currency"`
	Tier             string    `json:"tier"`
	ZoneCode         string    `json:"zone_code,omitempty"`
	DefaultCurve     bool      `json:"default_curve"`
	FallbackReason   string    `json:"fallback_reason,omitempty"`
}
