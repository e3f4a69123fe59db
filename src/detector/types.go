package detector

// Detection is the detector contract: one best cat per image, confidence
// rounded to 4 decimals by the inference service, bounding box as
// [x1, y1, x2, y2] in pixel coordinates.
type Detection struct {
	IsCat       bool      `json:"is_cat"`
	Confidence  float64   `json:"confidence"`
	BoundingBox []float64 `json:"bounding_box,omitempty"`
	TotalCats   int       `json:"total_cats_detected"`
	Error       string    `json:"error,omitempty"`
}
