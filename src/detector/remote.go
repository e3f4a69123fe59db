package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"catshop-backend-go/src/configs"
	"catshop-backend-go/src/core/utils"
)

// Ensure RemoteDetector implements the Detector interface.
var _ Detector = (*RemoteDetector)(nil)

// RemoteDetector talks to an external inference service over HTTP. The
// service receives the image as a multipart upload and answers with the
// Detection contract JSON.
type RemoteDetector struct {
	config     *configs.DetectorConfig
	logger     *utils.Logger
	httpClient *http.Client
}

// NewRemoteDetector creates a detector client for the configured service.
func NewRemoteDetector(config *configs.DetectorConfig, logger *utils.Logger) *RemoteDetector {
	return &RemoteDetector{
		config: config,
		logger: logger,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}
}

// DetectCat submits the image to the inference service and decodes its
// answer. A "no cat found" answer is not an error: the service reports it
// through the contract as is_cat=false.
func (d *RemoteDetector) DetectCat(ctx context.Context, image []byte) (*Detection, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "image")
	if err != nil {
		return nil, fmt.Errorf("failed to build detection request: %v", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to build detection request: %v", err)
	}
	threshold := strconv.FormatFloat(d.config.ConfidenceThreshold, 'f', -1, 64)
	if err := writer.WriteField("confidence_threshold", threshold); err != nil {
		return nil, fmt.Errorf("failed to build detection request: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build detection request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.BaseURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create detection request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detection service request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("detection service error: %d %s", resp.StatusCode, string(data))
	}

	detection := &Detection{}
	if err := json.NewDecoder(resp.Body).Decode(detection); err != nil {
		return nil, fmt.Errorf("failed to decode detection response: %v", err)
	}

	// The service already filters by threshold; guard against one that
	// does not honour the field.
	if detection.IsCat && detection.Confidence < d.config.ConfidenceThreshold {
		d.logger.Debug(fmt.Sprintf("detection below threshold: %.4f < %.4f",
			detection.Confidence, d.config.ConfidenceThreshold))
		detection.IsCat = false
		detection.BoundingBox = nil
	}

	return detection, nil
}
