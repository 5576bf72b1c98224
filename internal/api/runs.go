package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/models"
)

// RunsHandler serves the archived run history. When no archive is
// configured the handler is registered with a nil repository and reports
// the endpoints as unavailable.
type RunsHandler struct {
	repo RunRepository
	log  *logrus.Logger
}

// NewRunsHandler creates a RunsHandler. repo may be nil.
func NewRunsHandler(repo RunRepository, log *logrus.Logger) *RunsHandler {
	return &RunsHandler{repo: repo, log: log}
}

// List handles GET /api/v1/runs.
func (h *RunsHandler) List(c *gin.Context) {
	if h.repo == nil {
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "run archive not configured")

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "50"), 50)

	runs, err := h.repo.ListRuns(c.Request.Context(), limit)
	if err != nil {
		h.log.WithError(err).Error("listing runs")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// Get handles GET /api/v1/runs/:id.
func (h *RunsHandler) Get(c *gin.Context) {
	if h.repo == nil {
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "run archive not configured")

		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid run id")

		return
	}

	run, err := h.repo.GetRun(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRunNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "run not found")

			return
		}

		h.log.WithError(err).Error("getting run")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, run)
}
