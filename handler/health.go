package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/pkg/logger"
	"github.com/rabinshresthaaa/CoverPage/service"
)

const readyTimeout = 3 * time.Second

type HealthHandler struct {
	source   service.AssetSource
	required []string
}

// NewHealthHandler reports ready once every required asset loads and decodes.
func NewHealthHandler(source service.AssetSource, required ...string) *HealthHandler {
	return &HealthHandler{source: source, required: required}
}

// Health is the liveness probe.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Ready is the readiness probe.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	for _, name := range h.required {
		if err := service.CheckAsset(ctx, h.source, name); err != nil {
			logger.Warn(ctx, "readiness check failed", "asset", name, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"asset":  name,
				"error":  err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
