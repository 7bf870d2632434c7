package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exec-consultation-api/internal/service"
)

// RootMessage is the static liveness message served at the root path.
const RootMessage = "Executive consultation API is running"

const readyTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the root liveness message, health, readiness and Prometheus endpoints.
type SystemHandler struct {
	metrics *service.MetricsService
	store   pinger
}

// NewSystemHandler constructs a system handler. store may be nil, in which case readiness always succeeds.
func NewSystemHandler(metrics *service.MetricsService, store pinger) *SystemHandler {
	return &SystemHandler{metrics: metrics, store: store}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *SystemHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Root godoc
// @Summary Liveness message
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

// Health responds with a generic OK payload for liveness checks.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the store answers a ping.
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
