// Package catalog reads and writes pricing zone catalogs as TOML files.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"reship/internal/models"

	toml "github.com/pelletier/go-toml/v2"
)

const currentVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported catalog version")

type fileSchema struct {
	Version int          `toml:"version"`
	Zones   []zoneSchema `toml:"zones"`
}

type zoneSchema struct {
	Code      string       `toml:"code"`
	Name      string       `toml:"name,omitempty"`
	Countries []string     `toml:"countries"`
	Bands     []bandSchema `toml:"bands"`
}

type bandSchema struct {
	Min        float64 `toml:"min"`
	Max        float64 `toml:"max"`
	Free       float64 `toml:"free"`
	Subscribed float64 `toml:"subscribed"`
}

// Parse decodes a catalog. A missing version is read as the current one.
func Parse(data []byte) ([]models.PricingZone, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode zone catalog: %w", err)
	}
	if file.Version == 0 {
		file.Version = currentVersion
	}
	if file.Version != currentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}

	zones := make([]models.PricingZone, 0, len(file.Zones))
	for _, z := range file.Zones {
		zone := models.PricingZone{
			Code:            z.Code,
			Name:            z.Name,
			MemberCountries: append([]string(nil), z.Countries...),
		}
		for _, b := range z.Bands {
			zone.Bands = append(zone.Bands, models.RateBand{
				WeightMin:       b.Min,
				WeightMax:       b.Max,
				PriceFree:       b.Free,
				PriceSubscribed: b.Subscribed,
			})
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

func LoadFile(path string) ([]models.PricingZone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone catalog: %w", err)
	}
	return Parse(data)
}

// Encode writes zones in the catalog format Parse reads.
func Encode(zones []models.PricingZone) ([]byte, error) {
	file := fileSchema{Version: currentVersion}
	for _, z := range zones {
		zone := zoneSchema{
			Code:      z.Code,
			Name:      z.Name,
			Countries: append([]string(nil), z.MemberCountries...),
		}
		for _, b := range z.Bands {
			zone.Bands = append(zone.Bands, bandSchema{
				Min:        b.WeightMin,
				Max:        b.WeightMax,
				Free:       b.PriceFree,
				Subscribed: b.PriceSubscribed,
			})
		}
		file.Zones = append(file.Zones, zone)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode zone catalog: %w", err)
	}
	return data, nil
}
