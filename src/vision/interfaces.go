package vision

import (
	"context"

	"github.com/gin-gonic/gin"
)

// VisionService registers the cat-analysis routes.
type VisionService interface {
	// Start mounts the Vision routes on the engine and API group.
	Start(ctx context.Context, engine *gin.Engine, apiGroup *gin.RouterGroup) error
}
