package validation

import (
	"testing"

	"reship/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestShipment(t *testing.T) {
	customer := uint(7)

	tests := []struct {
		name       string
		req        models.ShipmentRequest
		wantFields []string
	}{
		{
			name: "valid without dimensions",
			req:  models.ShipmentRequest{WeightKg: 0.5, Destination: "de", Tier: models.TierFree},
		},
		{
			name: "tier resolved from customer",
			req:  models.ShipmentRequest{WeightKg: 2, Destination: "FR", CustomerID: &customer},
		},
		{
			name:       "missing weight",
			req:        models.ShipmentRequest{Destination: "FR", Tier: models.TierFree},
			wantFields: []string{"weight_kg"},
		},
		{
			name:       "negative dimension",
			req:        models.ShipmentRequest{WeightKg: 1, HeightCm: -2, Destination: "FR", Tier: models.TierFree},
			wantFields: []string{"height_cm"},
		},
		{
			name:       "bad destination and tier",
			req:        models.ShipmentRequest{WeightKg: 1, Destination: "France", Tier: "gold"},
			wantFields: []string{"destination", "tier"},
		},
		{
			name:       "no tier and no customer",
			req:        models.ShipmentRequest{WeightKg: 1, Destination: "FR"},
			wantFields: []string{"tier"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Shipment(&tt.req)

			if len(tt.wantFields) == 0 {
				assert.True(t, v.Valid(), v.Error())
				return
			}
			assert.False(t, v.Valid())
			for _, f := range tt.wantFields {
				assert.Contains(t, v.Errors, f)
			}
		})
	}
}

func TestZone(t *testing.T) {
	v := New()
	v.Zone(&models.PricingZone{
		Code:            "EU1",
		MemberCountries: []string{"DE", "fr"},
		Bands:           []models.RateBand{{WeightMin: 2, WeightMax: 1}},
	})

	assert.Contains(t, v.Errors, "member_countries")
	assert.Contains(t, v.Errors, "bands.weight_max")
	assert.Equal(t, "bands.weight_max: must be greater than weight_min; member_countries: must be a two-letter country code", v.Error())
}
