package pricing

import (
	"testing"

	"reship/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func euZone() models.PricingZone {
	return models.PricingZone{
		Code:            "EU1",
		Name:            "Europe core",
		MemberCountries: []string{"de", "FR ", "NL"},
		Bands: []models.RateBand{
			{WeightMin: 2, WeightMax: 5, PriceFree: 22, PriceSubscribed: 18},
			{WeightMin: 0, WeightMax: 2, PriceFree: 12, PriceSubscribed: 9},
		},
	}
}

func TestNewZoneTableNormalises(t *testing.T) {
	table, err := NewZoneTable([]models.PricingZone{euZone()})
	require.NoError(t, err)

	zone, err := table.ResolveZone("fr")
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, "EU1", zone.Code)
	assert.Equal(t, 0.0, zone.Bands[0].WeightMin)
	assert.Equal(t, []string{"DE", "FR", "NL"}, []string(zone.MemberCountries))
}

func TestNewZoneTableRejects(t *testing.T) {
	gapped := euZone()
	gapped.Bands[0].WeightMin = 2.5

	empty := euZone()
	empty.Bands[1].WeightMax = 0

	other := models.PricingZone{Code: "EU2", MemberCountries: []string{"NL", "BE"}}

	tests := []struct {
		name   string
		zones  []models.PricingZone
		reason string
	}{
		{name: "gap between bands", zones: []models.PricingZone{gapped}, reason: reasonBandGap},
		{name: "empty band", zones: []models.PricingZone{empty}, reason: reasonEmptyBand},
		{name: "country in two zones", zones: []models.PricingZone{euZone(), other}, reason: reasonDuplicateMember},
		{name: "duplicate code", zones: []models.PricingZone{euZone(), euZone()}, reason: reasonDuplicateCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewZoneTable(tt.zones)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.reason, cfgErr.Reason)
		})
	}
}

func TestResolveZoneAmbiguous(t *testing.T) {
	// Built directly: NewZoneTable would refuse this data.
	table := &ZoneTable{zones: []models.PricingZone{
		{Code: "A", MemberCountries: []string{"DE"}},
		{Code: "B", MemberCountries: []string{"DE"}},
	}}

	zone, err := table.ResolveZone("DE")
	assert.Nil(t, zone)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"A", "B"}, cfgErr.ZoneCodes)
}

func TestResolveZoneMiss(t *testing.T) {
	table, err := NewZoneTable([]models.PricingZone{euZone()})
	require.NoError(t, err)

	zone, err := table.ResolveZone("JP")
	assert.NoError(t, err)
	assert.Nil(t, zone)

	var nilTable *ZoneTable
	zone, err = nilTable.ResolveZone("JP")
	assert.NoError(t, err)
	assert.Nil(t, zone)
}
