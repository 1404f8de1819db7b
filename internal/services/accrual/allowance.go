package accrual

import (
	"fmt"

	"reship/internal/models"
)

// FreeAllowance returns the free storage days for tier.
func FreeAllowance(tier models.SubscriptionTier) (int, error) {
	policy, ok := models.TierPolicies[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return policy.FreeStorageDays, nil
}
