package analyzer

// EstimateWeight estimates body weight in kg from chest girth and body length.
// chest² stands in for the torso cross-section and length for its extent, so
// the product approximates volume; 3000 is the empirical density/scale
// divisor. Unrecognised breed or age keys fall back to a neutral 1.0 modifier.
// No bounds clamping: nonsensical inputs mean the detection upstream was bad.
func EstimateWeight(chestCm, bodyLengthCm float64, breed, ageCategory string) float64 {
	baseWeight := (chestCm * chestCm * bodyLengthCm) / 3000

	if m, ok := breedModifier[breed]; ok {
		baseWeight *= m
	}
	if m, ok := ageWeightModifier[ageCategory]; ok {
		baseWeight *= m
	}

	return round2(baseWeight)
}
