package pricing

import (
	"fmt"
	"strings"

	apperrors "reship/internal/errors"
)

// ConfigurationError reports pricing data that cannot produce a reliable quote.
type ConfigurationError struct {
	Reason      string
	Destination string
	ZoneCodes   []string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("pricing configuration: ")
	b.WriteString(e.Reason)
	if e.Destination != "" {
		fmt.Fprintf(&b, " (destination=%s)", e.Destination)
	}
	if len(e.ZoneCodes) > 0 {
		fmt.Fprintf(&b, " (zones=%s)", strings.Join(e.ZoneCodes, ","))
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return apperrors.ErrZoneConfiguration
}

const (
	reasonAmbiguousZone   = "destination matched more than one zone"
	reasonDuplicateMember = "country listed in more than one zone"
	reasonNoZone          = "no zone for destination"
	reasonNoBand          = "weight outside zone bands"
	reasonEmptyBand       = "band weight_max must be greater than weight_min"
	reasonBandGap         = "bands are not contiguous"
	reasonDuplicateCode   = "zone code used twice"
)
