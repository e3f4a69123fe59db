package vision

import "catshop-backend-go/src/analyzer"

// AnalyzeCatRequest is the JSON body of POST /api/vision/analyze-cat.
type AnalyzeCatRequest struct {
	ImageURL    string `json:"image_url" binding:"required"` // photo to analyse
	OwnerID     string `json:"owner_id" binding:"required"`  // identity passthrough
	CatColor    string `json:"cat_color"`                    // e.g. "orange", "black, white"
	Breed       string `json:"breed"`                        // breed table key, defaults to unknown
	AgeCategory string `json:"age_category"`                 // kitten/young/adult/senior
}

// AnalyzeCatResponse is the analysis answer. A photo without a detectable cat
// is a soft failure: is_cat=false with a user-facing message, not an HTTP
// error. The embedded analysis keeps the legacy wire field names verbatim.
type AnalyzeCatResponse struct {
	IsCat      bool                     `json:"is_cat"`
	Confidence float64                  `json:"confidence"`
	Message    string                   `json:"message,omitempty"`
	DetectedAt string                   `json:"detected_at,omitempty"`
	Analysis   *analyzer.AnalysisResult `json:"analysis,omitempty"`
}

// ErrorResponse is the hard-failure body (bad request, detector down).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
