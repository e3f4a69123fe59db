// Package analyzer estimates a cat's anatomical measurements, weight, body
// condition and clothing size from a single 2D bounding box plus a few
// categorical hints. Every function is pure and deterministic: no I/O, no
// clock reads, no shared mutable state, so the package is safe to call from
// any number of goroutines without coordination.
package analyzer

const (
	// AnalysisMethod and AnalysisVersion stamp every result so stored
	// analyses can be told apart after algorithm revisions.
	AnalysisMethod  = "cv_heuristic_v5_professional"
	AnalysisVersion = "5.0"
)

// Options carries the per-cat hints and identity passthrough for an analysis.
// Zero values get the same defaults the service has always used.
type Options struct {
	FirebaseUID string
	CatColor    string
	Breed       string // key into the breed modifier table, "unknown" if absent
	AgeCategory string // kitten/young/adult/senior, "adult" if absent
	ImagePath   string
}

// AnalyzeCat runs the full estimation pipeline: colour normalisation, posture
// and body metrics, weight, body condition and clothing size, merged into one
// immutable AnalysisResult. Identical inputs always produce identical output;
// any timestamp is the caller's business at persistence time.
func AnalyzeCat(box BoundingBox, opts Options) *AnalysisResult {
	if opts.Breed == "" {
		opts.Breed = "unknown"
	}
	if opts.AgeCategory == "" {
		opts.AgeCategory = "adult"
	}

	color := NormalizeColor(opts.CatColor)
	metrics := EstimateBodyMetrics(box)
	weight := EstimateWeight(metrics.ChestCm, metrics.BodyLengthCm, opts.Breed, opts.AgeCategory)
	condition := EstimateBodyCondition(metrics.ChestCm, weight, metrics.BodyLengthCm)
	size := DetermineSize(weight, metrics.ChestCm, metrics.NeckCm)

	return &AnalysisResult{
		FirebaseUID: opts.FirebaseUID,

		Breed:       opts.Breed,
		CatColor:    color,
		AgeCategory: opts.AgeCategory,

		WeightKg:                 weight,
		BodyConditionScore:       condition.Score,
		BodyCondition:            condition.Condition,
		BodyConditionDescription: condition.Description,
		BMI:                      condition.BMI,

		Measurements: Measurements{
			ChestCm:      metrics.ChestCm,
			NeckCm:       metrics.NeckCm,
			WaistCm:      metrics.WaistCm,
			BodyLengthCm: metrics.BodyLengthCm,
			BackLengthCm: metrics.BackLengthCm,
			LegLengthCm:  metrics.LegLengthCm,
		},

		SizeCategory:       size.Category,
		SizeRanges:         size.Ranges,
		SizeRecommendation: size.Recommendation,

		Posture:     metrics.Posture,
		Confidence:  metrics.Confidence,
		QualityFlag: metrics.QualityFlag,

		BoundingBox: box,

		AnalysisMethod:  AnalysisMethod,
		AnalysisVersion: AnalysisVersion,
		ImagePath:       opts.ImagePath,
	}
}
