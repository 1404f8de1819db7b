package models

import "math"

// TierPolicy holds the per-plan storage terms.
type TierPolicy struct {
	FreeStorageDays int `json:"free_storage_days"`
}

var TierPolicies = map[SubscriptionTier]TierPolicy{
	TierFree: {
		FreeStorageDays: 3,
	},
	TierPremiumMonthly: {
		FreeStorageDays: 60,
	},
	TierPremium: {
		FreeStorageDays: 60, // same terms as premium_monthly
	},
	TierPremiumYearly: {
		FreeStorageDays: 90,
	},
}

// FeeSource tells whether a fee was computed or set by an operator.
type FeeSource string

const (
	FeeSourceComputed       FeeSource = "computed"
	FeeSourceManualOverride FeeSource = "manual_override"
)

// FeeValue is a resolved fee together with where it came from.
// Computed always keeps the engine's figure, even when an override wins.
type FeeValue struct {
	Source   FeeSource `json:"source"`
	Amount   float64   `json:"amount"`
	Computed float64   `json:"computed"`
}

func Computed(amount float64) FeeValue {
	return FeeValue{Source: FeeSourceComputed, Amount: amount, Computed: amount}
}

func ManualOverride(amount, computed float64) FeeValue {
	return FeeValue{Source: FeeSourceManualOverride, Amount: amount, Computed: computed}
}

// ResolveFee applies an operator override when it is set and positive.
func ResolveFee(computed float64, override *float64) FeeValue {
	if override != nil && *override > 0 {
		return ManualOverride(*override, computed)
	}
	return Computed(computed)
}

func (f FeeValue) IsOverride() bool {
	return f.Source == FeeSourceManualOverride
}

// RoundCents rounds a currency amount to two decimals.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
