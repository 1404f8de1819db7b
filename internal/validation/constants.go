package validation

const (
	// Physical limits accepted by the warehouse
	MaxWeightKg    = 1000.0
	MaxDimensionCm = 500.0

	// Fee overrides
	MaxFeeOverride = 10000.00

	// String lengths
	MaxDescriptionLength = 255
	MaxZoneCodeLength    = 64
)
