package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"catshop-backend-go/src/configs"
	"catshop-backend-go/src/core/utils"
)

// Fetcher downloads an image URL into memory. Nothing touches disk: the
// bytes live only for the duration of one analysis request.
type Fetcher struct {
	config     *configs.QualityConfig
	logger     *utils.Logger
	httpClient *http.Client
}

// NewFetcher creates a fetcher with a bounded, redirect-limited HTTP client.
func NewFetcher(config *configs.QualityConfig, logger *utils.Logger) *Fetcher {
	return &Fetcher{
		config: config,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
	}
}

// Fetch downloads the image at the given URL and returns its bytes.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	// Some image hosts reject requests without a User-Agent.
	req.Header.Set("User-Agent", "CatShop-Image-Bot/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image host responded %d %s", resp.StatusCode, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isValidImageContentType(contentType) {
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}

	if resp.ContentLength > f.config.MaxFileSize {
		return nil, fmt.Errorf("image too large: %d bytes, maximum allowed %d bytes",
			resp.ContentLength, f.config.MaxFileSize)
	}

	// Read at most one byte over the limit so oversized bodies without a
	// Content-Length header are still rejected.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %v", err)
	}
	if int64(len(data)) > f.config.MaxFileSize {
		return nil, fmt.Errorf("image too large: exceeds %d bytes", f.config.MaxFileSize)
	}

	f.logger.Debug(fmt.Sprintf("image downloaded: %s (%d bytes, %s)", url, len(data), contentType))
	return data, nil
}

func isValidImageContentType(contentType string) bool {
	validContentTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/bmp",
	}

	contentTypeLower := strings.ToLower(contentType)
	for _, validType := range validContentTypes {
		if strings.Contains(contentTypeLower, validType) {
			return true
		}
	}

	return false
}
