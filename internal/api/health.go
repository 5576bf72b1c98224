package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/dbpool"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	pool      *dbpool.Pool // nil when the archive is disabled
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. pool may be nil.
func NewHealthHandler(pool *dbpool.Pool, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		pool:      pool,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startTime).Truncate(time.Second).String(),
	})
}

// Readiness handles GET /api/v1/ready. Readiness covers the archive only;
// the in-memory analysis result is always available once the server is up.
func (h *HealthHandler) Readiness(c *gin.Context) {
	archive := "disabled"

	if h.pool != nil {
		if err := h.pool.HealthCheck(c.Request.Context()); err != nil {
			h.log.WithError(err).Warn("archive health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "degraded",
				"archive": "unreachable",
			})

			return
		}

		archive = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"archive": archive,
	})
}
