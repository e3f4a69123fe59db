// Package detector defines the object-detection collaborator contract. The
// model itself runs out of process; this package only describes what it must
// return and provides an HTTP client for a remote inference service. The
// detector is always constructed explicitly and injected, so tests can swap
// in a double without touching global state.
package detector

import "context"

// Detector locates a cat in an image and returns its bounding box.
type Detector interface {
	DetectCat(ctx context.Context, image []byte) (*Detection, error)
}
