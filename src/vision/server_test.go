package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	goimage "image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"catshop-backend-go/src/configs"
	"catshop-backend-go/src/core/utils"
	"catshop-backend-go/src/detector"

	"github.com/gin-gonic/gin"
)

// stubDetector is the injected test double for the detection collaborator.
type stubDetector struct {
	detection *detector.Detection
	err       error
	calls     int
}

func (s *stubDetector) DetectCat(ctx context.Context, image []byte) (*detector.Detection, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.detection, nil
}

func newTestLogger(t *testing.T) (*configs.Config, *utils.Logger) {
	t.Helper()
	config := &configs.Config{}
	config.Log.LogDir = t.TempDir()
	config.Log.LogFile = "test.log"
	config.ApplyDefaults()
	logger, err := utils.NewLogger(config)
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	return config, logger
}

func newTestService(t *testing.T, det detector.Detector) (*gin.Engine, *DefaultVisionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config, logger := newTestLogger(t)
	service, err := NewDefaultVisionService(config, logger, det)
	if err != nil {
		t.Fatalf("failed to create vision service: %v", err)
	}

	engine := gin.New()
	if err := service.Start(context.Background(), engine, engine.Group("/api")); err != nil {
		t.Fatalf("failed to start vision service: %v", err)
	}
	return engine, service
}

// sharpPNG is a 1px checkerboard: passes every quality gate.
func sharpPNG(t *testing.T) []byte {
	t.Helper()
	img := goimage.NewGray(goimage.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			v := uint8(64)
			if (x+y)%2 == 0 {
				v = 192
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

// flatPNG is a uniform image: rejected by the sharpness gate.
func flatPNG(t *testing.T) []byte {
	t.Helper()
	img := goimage.NewGray(goimage.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func imageHost(t *testing.T, payload []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	t.Cleanup(server.Close)
	return server
}

func postAnalyze(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/vision/analyze-cat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeCatEndpoint_Success(t *testing.T) {
	host := imageHost(t, sharpPNG(t))
	det := &stubDetector{detection: &detector.Detection{
		IsCat:       true,
		Confidence:  0.9231,
		BoundingBox: []float64{100, 150, 400, 450},
		TotalCats:   1,
	}}
	engine, _ := newTestService(t, det)

	rec := postAnalyze(t, engine, fmt.Sprintf(
		`{"image_url":%q,"owner_id":"firebase-uid-042","cat_color":"Orange, White","breed":"persian"}`, host.URL))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp AnalyzeCatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.IsCat {
		t.Fatalf("is_cat = false, want true (message: %s)", resp.Message)
	}
	if resp.Confidence != 0.9231 {
		t.Errorf("confidence = %v, want 0.9231", resp.Confidence)
	}
	if resp.Analysis == nil {
		t.Fatal("analysis missing from response")
	}
	if resp.Analysis.FirebaseUID != "firebase-uid-042" {
		t.Errorf("firebase_uid = %q, want %q", resp.Analysis.FirebaseUID, "firebase-uid-042")
	}
	if resp.Analysis.CatColor != "orange_white" {
		t.Errorf("cat_color = %q, want %q", resp.Analysis.CatColor, "orange_white")
	}
	// 300x300 box through the fixed formula chain.
	if resp.Analysis.Measurements.ChestCm != 71.0 {
		t.Errorf("chest_cm = %v, want 71.0", resp.Analysis.Measurements.ChestCm)
	}
	if resp.Analysis.SizeCategory == "" {
		t.Error("size_category missing")
	}
	if resp.DetectedAt == "" {
		t.Error("detected_at missing")
	}
	if det.calls != 1 {
		t.Errorf("detector called %d times, want 1", det.calls)
	}
}

func TestAnalyzeCatEndpoint_NoCat(t *testing.T) {
	host := imageHost(t, sharpPNG(t))
	det := &stubDetector{detection: &detector.Detection{IsCat: false, Confidence: 0.12}}
	engine, _ := newTestService(t, det)

	rec := postAnalyze(t, engine, fmt.Sprintf(`{"image_url":%q,"owner_id":"uid"}`, host.URL))

	if rec.Code != http.StatusOK {
		t.Fatalf("no-cat must be a soft failure, status = %d", rec.Code)
	}
	var resp AnalyzeCatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IsCat {
		t.Error("is_cat = true, want false")
	}
	if resp.Message == "" {
		t.Error("soft failure must carry a message")
	}
	if resp.Analysis != nil {
		t.Error("analysis must be absent when no cat was found")
	}
}

func TestAnalyzeCatEndpoint_QualityGateSkipsDetector(t *testing.T) {
	host := imageHost(t, flatPNG(t))
	det := &stubDetector{detection: &detector.Detection{IsCat: true}}
	engine, _ := newTestService(t, det)

	rec := postAnalyze(t, engine, fmt.Sprintf(`{"image_url":%q,"owner_id":"uid"}`, host.URL))

	if rec.Code != http.StatusOK {
		t.Fatalf("quality rejection must be a soft failure, status = %d", rec.Code)
	}
	var resp AnalyzeCatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IsCat {
		t.Error("is_cat = true, want false for a rejected image")
	}
	if det.calls != 0 {
		t.Errorf("detector called %d times, want 0 when the gate rejects", det.calls)
	}
}

func TestAnalyzeCatEndpoint_BadRequest(t *testing.T) {
	engine, _ := newTestService(t, &stubDetector{})

	rec := postAnalyze(t, engine, `{"cat_color":"orange"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing required fields", rec.Code)
	}
}

func TestAnalyzeCatEndpoint_DetectorError(t *testing.T) {
	host := imageHost(t, sharpPNG(t))
	det := &stubDetector{err: fmt.Errorf("inference service unreachable")}
	engine, _ := newTestService(t, det)

	rec := postAnalyze(t, engine, fmt.Sprintf(`{"image_url":%q,"owner_id":"uid"}`, host.URL))
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 when the detector fails", rec.Code)
	}
}

func TestAnalyzeCatEndpoint_MalformedBoundingBox(t *testing.T) {
	host := imageHost(t, sharpPNG(t))
	det := &stubDetector{detection: &detector.Detection{
		IsCat:       true,
		Confidence:  0.9,
		BoundingBox: []float64{1, 2, 3},
	}}
	engine, _ := newTestService(t, det)

	rec := postAnalyze(t, engine, fmt.Sprintf(`{"image_url":%q,"owner_id":"uid"}`, host.URL))
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 for a malformed bounding box", rec.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	engine, _ := newTestService(t, &stubDetector{})

	req := httptest.NewRequest(http.MethodGet, "/api/vision", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("status body must not be empty")
	}
}
