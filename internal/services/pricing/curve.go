package pricing

import "math"

// DefaultCurvePrice prices a chargeable weight on the fallback curve.
func DefaultCurvePrice(weightKg float64) float64 {
	for _, step := range defaultCurve {
		if weightKg <= step.upTo {
			return step.price
		}
	}

	last := defaultCurve[len(defaultCurve)-1]
	steps := math.Ceil((weightKg - last.upTo) / overweightStepKg)
	return last.price + steps*overweightStepPrice
}
