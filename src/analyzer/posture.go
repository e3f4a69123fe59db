package analyzer

// ClassifyPosture derives the pose class and its correction factor from the
// bounding-box aspect ratio. The ratio is the only 2D signal available to
// separate postures without depth data; the thresholds are empirical
// boundaries, not physically derived. Comparisons are strict, so a ratio of
// exactly 1.6 classifies as curled and exactly 0.8 as standing.
func ClassifyPosture(w, h float64) (Posture, float64) {
	if h < 1 {
		h = 1
	}
	ratio := w / h

	switch {
	case ratio > 1.6:
		return PostureLying, 0.85
	case ratio > 1.4:
		return PostureCurled, 0.88
	case ratio < 0.8:
		return PostureSitting, 0.92
	case ratio < 1.0:
		return PostureStanding, 1.0 // side view
	default:
		return PostureStanding, 0.98 // oblique view
	}
}
