package vision

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"catshop-backend-go/src/analyzer"
	"catshop-backend-go/src/configs"
	"catshop-backend-go/src/core/image"
	"catshop-backend-go/src/core/utils"
	"catshop-backend-go/src/detector"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DefaultVisionService wires the fetch -> quality gate -> detector ->
// analyzer pipeline behind the HTTP API. The detector is injected, never
// constructed here, so a test double drops in cleanly.
type DefaultVisionService struct {
	logger    *utils.Logger
	config    *configs.Config
	detector  detector.Detector
	fetcher   *image.Fetcher
	validator *image.QualityValidator
}

// NewDefaultVisionService creates the service around an injected detector.
func NewDefaultVisionService(config *configs.Config, logger *utils.Logger, det detector.Detector) (*DefaultVisionService, error) {
	if det == nil {
		return nil, fmt.Errorf("vision service requires a detector")
	}

	return &DefaultVisionService{
		logger:    logger,
		config:    config,
		detector:  det,
		fetcher:   image.NewFetcher(&config.Quality, logger),
		validator: image.NewQualityValidator(&config.Quality, logger),
	}, nil
}

// Start implements the VisionService interface and registers all routes.
func (s *DefaultVisionService) Start(ctx context.Context, engine *gin.Engine, apiGroup *gin.RouterGroup) error {
	apiGroup.GET("/vision", s.handleGet)
	apiGroup.POST("/vision/analyze-cat", s.handleAnalyzeCat)
	apiGroup.OPTIONS("/vision/analyze-cat", s.handleOptions)

	s.logger.Info("Vision HTTP routes registered")
	return nil
}

// handleOptions answers CORS preflight requests.
func (s *DefaultVisionService) handleOptions(c *gin.Context) {
	s.addCORSHeaders(c)
	c.Status(http.StatusOK)
}

// handleGet reports service status.
func (s *DefaultVisionService) handleGet(c *gin.Context) {
	s.addCORSHeaders(c)
	c.String(http.StatusOK, fmt.Sprintf(
		"Cat analysis API running, detector: %s, analysis version: %s",
		s.config.Detector.BaseURL, analyzer.AnalysisVersion))
}

// handleAnalyzeCat runs one full analysis: download the photo, gate its
// quality, locate the cat, derive measurements and sizing, respond.
func (s *DefaultVisionService) handleAnalyzeCat(c *gin.Context) {
	s.addCORSHeaders(c)

	var req AnalyzeCatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	requestID := uuid.New().String()
	s.logger.Info(fmt.Sprintf("[%s] starting analysis for owner %s", requestID, maskOwner(req.OwnerID)))

	ctx := c.Request.Context()

	imageData, err := s.fetcher.Fetch(ctx, req.ImageURL)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] image download failed: %v", requestID, err))
		s.respondError(c, http.StatusBadRequest, fmt.Sprintf("cannot download image: %v", err))
		return
	}

	quality := s.validator.Check(imageData)
	if !quality.IsValid {
		s.logger.Warn(fmt.Sprintf("[%s] image rejected by quality gate: %s", requestID, quality.Reason))
		c.JSON(http.StatusOK, AnalyzeCatResponse{
			IsCat:   false,
			Message: quality.Reason,
		})
		return
	}

	detection, err := s.detector.DetectCat(ctx, imageData)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] detection failed: %v", requestID, err))
		s.respondError(c, http.StatusBadGateway, fmt.Sprintf("detection failed: %v", err))
		return
	}

	if !detection.IsCat {
		s.logger.Info(fmt.Sprintf("[%s] no cat detected (confidence %.4f)", requestID, detection.Confidence))
		c.JSON(http.StatusOK, AnalyzeCatResponse{
			IsCat:      false,
			Confidence: detection.Confidence,
			Message:    "😿 ไม่พบแมวในภาพ กรุณาถ่ายรูปใหม่",
		})
		return
	}

	if len(detection.BoundingBox) != 4 {
		s.logger.Error(fmt.Sprintf("[%s] malformed bounding box: %v", requestID, detection.BoundingBox))
		s.respondError(c, http.StatusBadGateway, "detector returned a malformed bounding box")
		return
	}
	box := analyzer.BoundingBox{
		detection.BoundingBox[0],
		detection.BoundingBox[1],
		detection.BoundingBox[2],
		detection.BoundingBox[3],
	}

	result := analyzer.AnalyzeCat(box, analyzer.Options{
		FirebaseUID: req.OwnerID,
		CatColor:    req.CatColor,
		Breed:       req.Breed,
		AgeCategory: req.AgeCategory,
		ImagePath:   req.ImageURL,
	})

	s.logger.Info(fmt.Sprintf("[%s] analysis complete: size %s, weight %.2f kg, posture %s",
		requestID, result.SizeCategory, result.WeightKg, result.Posture))

	// The timestamp belongs to the serving layer; the core itself never
	// reads the clock.
	c.JSON(http.StatusOK, AnalyzeCatResponse{
		IsCat:      true,
		Confidence: detection.Confidence,
		Message:    "✅ พบแมวในภาพแล้ว!",
		DetectedAt: time.Now().UTC().Format(time.RFC3339),
		Analysis:   result,
	})
}

// maskOwner shortens an owner id for logging.
func maskOwner(ownerID string) string {
	if len(ownerID) <= 8 {
		return ownerID
	}
	return ownerID[:8] + "***"
}

// addCORSHeaders adds CORS headers for the mobile client.
func (s *DefaultVisionService) addCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Headers", "content-type, authorization")
	c.Header("Access-Control-Allow-Credentials", "true")
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
}

// respondError returns a hard-failure response.
func (s *DefaultVisionService) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
	})
}
