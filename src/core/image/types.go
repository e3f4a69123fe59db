// Package image fetches cat photos and gates them on quality before they are
// handed to the object detector. Filtering low-quality detections is the
// caller's responsibility, not the estimation core's, so the gate lives here
// in the service layer.
package image

// QualityResult reports whether an image passed the quality gate and why not.
type QualityResult struct {
	IsValid    bool    // passed all checks
	Reason     string  // human-readable rejection reason
	Format     string  // decoded format: jpeg, png, gif, webp
	Width      int     // image width in pixels
	Height     int     // image height in pixels
	Sharpness  float64 // Laplacian variance of the luminance channel
	Brightness float64 // mean luminance, 0-255
}
