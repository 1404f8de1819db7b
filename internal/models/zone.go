package models

import (
	"time"

	"github.com/lib/pq"
)

// PricingZone groups destination countries sharing one rate curve.
type PricingZone struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Code            string         `gorm:"uniqueIndex;size:64;not null" json:"code"`
	Name            string         `gorm:"size:255" json:"name"`
	MemberCountries pq.StringArray `gorm:"type:text[]" json:"member_countries"`
	Bands           []RateBand     `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE" json:"bands"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// RateBand prices chargeable weights in [WeightMin, WeightMax].
type RateBand struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	ZoneID          uint    `gorm:"index;not null" json:"zone_id"`
	WeightMin       float64 `gorm:"not null" json:"weight_min"`
	WeightMax       float64 `gorm:"not null" json:"weight_max"`
	PriceFree       float64 `gorm:"not null" json:"price_free"`
	PriceSubscribed float64 `gorm:"not null" json:"price_subscribed"`
}

func (b RateBand) Contains(weight float64) bool {
	return b.WeightMin <= weight && weight <= b.WeightMax
}

// PriceFor selects the band price for a subscription tier.
func (b RateBand) PriceFor(tier SubscriptionTier) float64 {
	if tier.IsSubscribed() {
		return b.PriceSubscribed
	}
	return b.PriceFree
}
