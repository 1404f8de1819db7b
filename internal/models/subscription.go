package models

import (
	"strings"
	"time"
)

type SubscriptionTier string

const (
	TierFree           SubscriptionTier = "free"
	TierPremiumMonthly SubscriptionTier = "premium_monthly"
	// TierPremium is the legacy name of the monthly plan; older accounts still carry it.
	TierPremium       SubscriptionTier = "premium"
	TierPremiumYearly SubscriptionTier = "premium_yearly"
)

// ParseTier normalises a tier name. The second return is false for unknown tiers.
func ParseTier(s string) (SubscriptionTier, bool) {
	t := SubscriptionTier(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

func (t SubscriptionTier) Valid() bool {
	_, ok := TierPolicies[t]
	return ok
}

// IsSubscribed reports whether the tier pays the subscribed rate.
func (t SubscriptionTier) IsSubscribed() bool {
	return t != TierFree
}

// Subscriber is the read-only view of a customer's plan.
type Subscriber struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	UserID    uint             `gorm:"uniqueIndex;not null" json:"user_id"`
	Email     string           `gorm:"size:255" json:"email"`
	Tier      SubscriptionTier `gorm:"type:varchar(32);not null;default:'free'" json:"tier"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
