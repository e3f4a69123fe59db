package analyzer

import "math"

// EstimateBodyMetrics derives anatomical measurements from a single bounding
// box. It is a total function: any box yields a result, and filtering
// implausible detections is the caller's job.
//
// Scale calibration hangs entirely on realTorsoHeightCm: the torso fraction of
// the box height is assumed to span 25 cm, which gives a pixel-to-cm factor
// for everything else. The chest circumference models the chest as an ellipse
// whose major axis is the box width.
func EstimateBodyMetrics(box BoundingBox) BodyMetrics {
	w := box.Width()
	h := box.Height()

	posture, postureFactor := ClassifyPosture(w, h)

	effectiveHeight := h * torsoRatio[posture]
	pixelToCm := realTorsoHeightCm / math.Max(effectiveHeight, 1)

	// Nose-to-tail-base length. A lying or curled cat exposes its full
	// length; otherwise the box width overshoots by roughly 10%.
	lengthFactor := 0.9
	if posture == PostureLying || posture == PostureCurled {
		lengthFactor = 1.0
	}
	bodyLengthCm := round1(w * pixelToCm * lengthFactor)

	// Chest girth drives clothing fit, everything else derives from it at
	// fixed anatomical ratios.
	chestCm := round1(math.Pi * (w * pixelToCm) * 0.6 * postureFactor)
	neckCm := round1(chestCm * 0.62)
	waistCm := round1(chestCm * 0.85)
	backLengthCm := round1(bodyLengthCm * 0.75)
	legLengthCm := round1(h * pixelToCm * 0.35)

	// Confidence blends detection size, aspect plausibility and how clearly
	// the posture exposes the torso.
	sizeRatio := math.Min(1.0, (w*h)/(300*300))
	aspectScore := 0.6
	if r := w / h; r > 0.5 && r < 2.0 {
		aspectScore = 1.0
	}
	postureClarity := 0.7
	if posture == PostureStanding || posture == PostureSitting {
		postureClarity = 0.9
	}
	confidence := round2(sizeRatio*0.5 + aspectScore*0.3 + postureClarity*0.2)

	var qualityFlag string
	switch {
	case confidence > 0.85:
		qualityFlag = "excellent"
	case confidence > 0.75:
		qualityFlag = "good"
	case confidence > 0.6:
		qualityFlag = "medium"
	default:
		qualityFlag = "poor"
	}

	return BodyMetrics{
		Posture:      posture,
		ChestCm:      chestCm,
		NeckCm:       neckCm,
		WaistCm:      waistCm,
		BodyLengthCm: bodyLengthCm,
		BackLengthCm: backLengthCm,
		LegLengthCm:  legLengthCm,
		Confidence:   confidence,
		QualityFlag:  qualityFlag,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
