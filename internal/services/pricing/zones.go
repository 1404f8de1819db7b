package pricing

import (
	"math"
	"sort"
	"strings"

	"reship/internal/models"
)

// ZoneTable is a validated, read-only snapshot of the pricing zones.
type ZoneTable struct {
	zones []models.PricingZone
}

// NewZoneTable copies zones, normalises country codes, sorts bands and
// rejects overlapping or gapped bands and countries claimed twice.
func NewZoneTable(zones []models.PricingZone) (*ZoneTable, error) {
	out := make([]models.PricingZone, 0, len(zones))
	owner := make(map[string]string)
	codes := make(map[string]struct{})

	for _, z := range zones {
		if _, dup := codes[z.Code]; dup {
			return nil, &ConfigurationError{Reason: reasonDuplicateCode, ZoneCodes: []string{z.Code}}
		}
		codes[z.Code] = struct{}{}

		countries := make([]string, 0, len(z.MemberCountries))
		for _, c := range z.MemberCountries {
			c = normalizeCountry(c)
			if prev, ok := owner[c]; ok {
				if prev == z.Code {
					continue
				}
				return nil, &ConfigurationError{
					Reason:      reasonDuplicateMember,
					Destination: c,
					ZoneCodes:   []string{prev, z.Code},
				}
			}
			owner[c] = z.Code
			countries = append(countries, c)
		}

		bands := append([]models.RateBand(nil), z.Bands...)
		sort.SliceStable(bands, func(i, j int) bool { return bands[i].WeightMin < bands[j].WeightMin })
		if err := checkBands(z.Code, bands); err != nil {
			return nil, err
		}

		z.MemberCountries = countries
		z.Bands = bands
		out = append(out, z)
	}

	return &ZoneTable{zones: out}, nil
}

func checkBands(code string, bands []models.RateBand) error {
	for i, b := range bands {
		if b.WeightMax <= b.WeightMin {
			return &ConfigurationError{Reason: reasonEmptyBand, ZoneCodes: []string{code}}
		}
		if i > 0 && math.Abs(b.WeightMin-bands[i-1].WeightMax) > bandTolerance {
			return &ConfigurationError{Reason: reasonBandGap, ZoneCodes: []string{code}}
		}
	}
	return nil
}

// Zones returns a copy of the snapshot's zones.
func (t *ZoneTable) Zones() []models.PricingZone {
	if t == nil {
		return nil
	}
	return append([]models.PricingZone(nil), t.zones...)
}

func (t *ZoneTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.zones)
}

// ResolveZone scans every zone for destination. It returns nil when no zone
// matches and a *ConfigurationError when more than one does.
func (t *ZoneTable) ResolveZone(destination string) (*models.PricingZone, error) {
	if t == nil {
		return nil, nil
	}
	destination = normalizeCountry(destination)

	var matches []int
	for i := range t.zones {
		for _, c := range t.zones[i].MemberCountries {
			if c == destination {
				matches = append(matches, i)
				break
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		z := t.zones[matches[0]]
		return &z, nil
	}

	codes := make([]string, 0, len(matches))
	for _, i := range matches {
		codes = append(codes, t.zones[i].Code)
	}
	return nil, &ConfigurationError{Reason: reasonAmbiguousZone, Destination: destination, ZoneCodes: codes}
}

func normalizeCountry(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}
