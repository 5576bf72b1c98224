// Package api provides HTTP handlers serving the results of the boot-time
// analysis plus the run archive.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/models"
)

// ResultHandler serves the in-memory result of the current analysis run.
type ResultHandler struct {
	run     models.Run
	degrees []models.DegreeBucket
	log     *logrus.Logger
}

// NewResultHandler creates a ResultHandler over a completed analysis.
func NewResultHandler(run models.Run, degrees []models.DegreeBucket, log *logrus.Logger) *ResultHandler {
	return &ResultHandler{run: run, degrees: degrees, log: log}
}

// Summary handles GET /api/v1/summary.
func (h *ResultHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.run.Summary())
}

// Run handles GET /api/v1/run — the full current run record.
func (h *ResultHandler) Run(c *gin.Context) {
	c.JSON(http.StatusOK, h.run)
}

// Degrees handles GET /api/v1/degrees.
func (h *ResultHandler) Degrees(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"degrees": h.degrees})
}

// Closeness handles GET /api/v1/closeness. The optional n query parameter
// truncates the precomputed ranking; it cannot extend past what the
// analysis retained.
func (h *ResultHandler) Closeness(c *gin.Context) {
	n := parseInt(c.DefaultQuery("n", "0"), 0)

	entries := h.run.TopCloseness
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}

	c.JSON(http.StatusOK, gin.H{"closeness": entries})
}
