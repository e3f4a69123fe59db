package analyzer

// BoundingBox is an axis-aligned [x1, y1, x2, y2] rectangle in image pixel
// coordinates, as handed over by the object detector. It serialises to the
// same four-element JSON array the detector produces.
type BoundingBox [4]float64

// Width returns x2-x1 floored to 1 pixel so degenerate boxes never divide by zero.
func (b BoundingBox) Width() float64 {
	if w := b[2] - b[0]; w > 1 {
		return w
	}
	return 1
}

// Height returns y2-y1 floored to 1 pixel.
func (b BoundingBox) Height() float64 {
	if h := b[3] - b[1]; h > 1 {
		return h
	}
	return 1
}

// Posture is the coarse pose class derived from the bounding-box aspect ratio.
type Posture string

const (
	PostureLying    Posture = "lying"
	PostureCurled   Posture = "curled"
	PostureSitting  Posture = "sitting"
	PostureStanding Posture = "standing"
)

// BodyMetrics holds the anatomical estimates derived from a single bounding box.
// All lengths and circumferences are centimetres rounded to 1 decimal.
type BodyMetrics struct {
	Posture      Posture `json:"posture"`
	ChestCm      float64 `json:"chest_cm"`
	NeckCm       float64 `json:"neck_cm"`
	WaistCm      float64 `json:"waist_cm"`
	BodyLengthCm float64 `json:"body_length_cm"`
	BackLengthCm float64 `json:"back_length_cm"`
	LegLengthCm  float64 `json:"leg_length_cm"`
	Confidence   float64 `json:"confidence"`
	QualityFlag  string  `json:"quality_flag"`
}

// BodyCondition is the veterinary body-condition assessment (BCS scale).
type BodyCondition struct {
	Score       int     `json:"bcs_score"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	BMI         float64 `json:"bmi"`
}

// SizeRange describes the weight/chest/neck band a clothing size covers.
type SizeRange struct {
	Weight string `json:"weight"`
	Chest  string `json:"chest"`
	Neck   string `json:"neck"`
}

// SizeInfo is the clothing size recommendation.
type SizeInfo struct {
	Category       string    `json:"size_category"`
	Ranges         SizeRange `json:"size_ranges"`
	Recommendation string    `json:"recommendation"`
}

// Measurements is the measurement block of the wire format. Field names must
// stay stable; existing clients read them verbatim.
type Measurements struct {
	ChestCm      float64 `json:"chest_cm"`
	NeckCm       float64 `json:"neck_cm"`
	WaistCm      float64 `json:"waist_cm"`
	BodyLengthCm float64 `json:"body_length_cm"`
	BackLengthCm float64 `json:"back_length_cm"`
	LegLengthCm  float64 `json:"leg_length_cm"`
}

// AnalysisResult is the complete analysis record for one cat photo. It is
// produced once per call, never mutated afterwards, and owned by the caller.
type AnalysisResult struct {
	FirebaseUID string `json:"firebase_uid"`

	Breed       string `json:"breed"`
	CatColor    string `json:"cat_color"`
	AgeCategory string `json:"age_category"`

	WeightKg                 float64 `json:"weight_kg"`
	BodyConditionScore       int     `json:"body_condition_score"`
	BodyCondition            string  `json:"body_condition"`
	BodyConditionDescription string  `json:"body_condition_description"`
	BMI                      float64 `json:"bmi"`

	Measurements Measurements `json:"measurements"`

	SizeCategory       string    `json:"size_category"`
	SizeRanges         SizeRange `json:"size_ranges"`
	SizeRecommendation string    `json:"size_recommendation"`

	Posture     Posture `json:"posture"`
	Confidence  float64 `json:"confidence"`
	QualityFlag string  `json:"quality_flag"`

	BoundingBox BoundingBox `json:"bounding_box"`

	AnalysisMethod  string `json:"analysis_method"`
	AnalysisVersion string `json:"analysis_version"`
	ImagePath       string `json:"image_path,omitempty"`
}
