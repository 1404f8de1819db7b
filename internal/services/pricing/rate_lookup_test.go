package pricing

import (
	"testing"

	apperrors "reship/internal/errors"
	"reship/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLookupResolve(t *testing.T) {
	table, err := NewZoneTable([]models.PricingZone{euZone()})
	require.NoError(t, err)

	tests := []struct {
		name        string
		policy      FallbackPolicy
		destination string
		weight      float64
		tier        models.SubscriptionTier
		wantPrice   float64
		wantZone    string
		wantDefault bool
		wantErr     bool
	}{
		{name: "zone band free tier", policy: FallbackReject, destination: "DE", weight: 1.2, tier: models.TierFree, wantPrice: 12, wantZone: "EU1"},
		{name: "zone band subscribed", policy: FallbackReject, destination: "DE", weight: 1.2, tier: models.TierPremiumMonthly, wantPrice: 9, wantZone: "EU1"},
		{name: "boundary picks first band", policy: FallbackReject, destination: "NL", weight: 2, tier: models.TierFree, wantPrice: 12, wantZone: "EU1"},
		{name: "upper band", policy: FallbackReject, destination: "FR", weight: 4, tier: models.TierPremiumYearly, wantPrice: 18, wantZone: "EU1"},
		{name: "unmatched destination uses curve", policy: FallbackDefaultCurve, destination: "JP", weight: 0.5, tier: models.TierFree, wantPrice: 15, wantDefault: true},
		{name: "curve ignores tier", policy: FallbackDefaultCurve, destination: "JP", weight: 0.5, tier: models.TierPremium, wantPrice: 15, wantDefault: true},
		{name: "weight beyond bands uses curve", policy: FallbackDefaultCurve, destination: "DE", weight: 12, tier: models.TierFree, wantPrice: 65, wantZone: "EU1", wantDefault: true},
		{name: "reject unmatched destination", policy: FallbackReject, destination: "JP", weight: 0.5, tier: models.TierFree, wantErr: true},
		{name: "reject weight beyond bands", policy: FallbackReject, destination: "DE", weight: 12, tier: models.TierFree, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRateLookup(tt.policy).Resolve(table, tt.destination, tt.weight, tt.tier)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrZoneConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantZone, got.ZoneCode)
			assert.Equal(t, tt.wantDefault, got.DefaultCurve)
		})
	}
}

func TestRateLookupEmptyTable(t *testing.T) {
	table, err := NewZoneTable(nil)
	require.NoError(t, err)

	got, err := NewRateLookup(FallbackDefaultCurve).Resolve(table, "US", 1.2, models.TierFree)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Price)
	assert.Equal(t, reasonNoZone, got.FallbackReason)
}
