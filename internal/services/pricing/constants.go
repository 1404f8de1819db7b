package pricing

// VolumetricDivisor converts cm³ to volumetric kg.
const VolumetricDivisor = 5000.0

const DefaultCurrency = "EUR"

// bandTolerance absorbs float noise when checking that bands touch.
const bandTolerance = 1e-9

type curveStep struct {
	upTo  float64
	price float64
}

// defaultCurve is used when no zone band applies. Above the last step the
// price grows by overweightStepPrice per started overweightStepKg.
var defaultCurve = []curveStep{
	{upTo: 1, price: 15},
	{upTo: 2, price: 20},
	{upTo: 5, price: 30},
	{upTo: 10, price: 45},
	{upTo: 20, price: 65},
}

const (
	overweightStepKg    = 5.0
	overweightStepPrice = 10.0
)
