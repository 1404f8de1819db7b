package pricing

// VolumetricWeight returns l*w*h / 5000, or 0 when any dimension is missing.
func VolumetricWeight(lengthCm, widthCm, heightCm float64) float64 {
	if lengthCm <= 0 || widthCm <= 0 || heightCm <= 0 {
		return 0
	}
	return lengthCm * widthCm * heightCm / VolumetricDivisor
}

// ChargeableWeight is the larger of actual and volumetric weight.
func ChargeableWeight(weightKg, lengthCm, widthCm, heightCm float64) float64 {
	volumetric := VolumetricWeight(lengthCm, widthCm, heightCm)
	if volumetric > weightKg {
		return volumetric
	}
	return weightKg
}
