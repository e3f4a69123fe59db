package image

import (
	"bytes"
	"fmt"
	"image"

	"catshop-backend-go/src/configs"
	"catshop-backend-go/src/core/utils"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WEBP decoder
)

// QualityValidator applies the pre-detection quality gate: minimum size,
// sharpness (blur detection via Laplacian variance) and exposure bounds.
// Images failing the gate would produce unusable bounding boxes downstream.
type QualityValidator struct {
	config *configs.QualityConfig
	logger *utils.Logger
}

// NewQualityValidator creates a validator with the configured thresholds.
func NewQualityValidator(config *configs.QualityConfig, logger *utils.Logger) *QualityValidator {
	return &QualityValidator{
		config: config,
		logger: logger,
	}
}

// Check decodes the image and runs the gate. It never panics and never
// returns an error: a rejection is a result, not a failure.
func (v *QualityValidator) Check(data []byte) QualityResult {
	result := QualityResult{}

	if int64(len(data)) > v.config.MaxFileSize {
		result.Reason = fmt.Sprintf("image too large: %d bytes, maximum allowed %d bytes",
			len(data), v.config.MaxFileSize)
		return result
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		result.Reason = fmt.Sprintf("cannot decode image: %v", err)
		return result
	}

	bounds := img.Bounds()
	result.Format = format
	result.Width = bounds.Dx()
	result.Height = bounds.Dy()

	if result.Width < v.config.MinImageSize || result.Height < v.config.MinImageSize {
		result.Reason = fmt.Sprintf("image too small: %dx%d, need at least %dx%d",
			result.Width, result.Height, v.config.MinImageSize, v.config.MinImageSize)
		return result
	}

	gray := luminance(img)
	result.Sharpness = laplacianVariance(gray, result.Width, result.Height)
	if result.Sharpness < v.config.MinSharpness {
		result.Reason = fmt.Sprintf("image too blurry: sharpness %.2f, need > %.0f",
			result.Sharpness, v.config.MinSharpness)
		return result
	}

	result.Brightness = mean(gray)
	if result.Brightness < v.config.MinBrightness {
		result.Reason = fmt.Sprintf("image too dark: brightness %.1f, need > %.0f",
			result.Brightness, v.config.MinBrightness)
		return result
	}
	if result.Brightness > v.config.MaxBrightness {
		result.Reason = fmt.Sprintf("image too bright: brightness %.1f, need < %.0f",
			result.Brightness, v.config.MaxBrightness)
		return result
	}

	result.IsValid = true
	return result
}

// luminance converts the image to a row-major 0-255 grayscale buffer using
// the standard BT.601 weights.
func luminance(img image.Image) []float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]float64, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; scale down to 0-255.
			gray[y*w+x] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
		}
	}
	return gray
}

// laplacianVariance measures focus with the 4-neighbour Laplacian kernel.
// A flat, defocused image has near-zero response variance.
func laplacianVariance(gray []float64, w, h int) float64 {
	if w < 3 || h < 3 {
		return 0
	}

	responses := make([]float64, 0, (w-2)*(h-2))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			lap := gray[(y-1)*w+x] + gray[(y+1)*w+x] + gray[y*w+x-1] + gray[y*w+x+1] - 4*gray[y*w+x]
			responses = append(responses, lap)
		}
	}
	return variance(responses)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}
