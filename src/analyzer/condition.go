package analyzer

// EstimateBodyCondition maps a feline BMI onto the veterinary body-condition
// scale: bmi = (weight_kg * 1000) / body_length_cm². Tier bounds are half-open,
// a BMI of exactly 6.0 already counts as overweight.
//
// chestCm is accepted but currently unused; the interface keeps it so a girth
// term can be added to the formula without breaking callers.
func EstimateBodyCondition(chestCm, weightKg, bodyLengthCm float64) BodyCondition {
	_ = chestCm

	bmi := (weightKg * 1000) / (bodyLengthCm * bodyLengthCm)

	tier := obeseTier
	for _, t := range conditionTiers {
		if bmi < t.upperBMI {
			tier = t
			break
		}
	}

	return BodyCondition{
		Score:       tier.score,
		Condition:   tier.condition,
		Description: tier.description,
		BMI:         round2(bmi),
	}
}
