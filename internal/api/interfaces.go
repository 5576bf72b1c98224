package api

import (
	"context"

	"github.com/cographio/cograph/internal/models"
)

// RunRepository is the run-archive interface the handlers depend on.
type RunRepository interface {
	ListRuns(ctx context.Context, limit int) ([]models.Run, error)
	GetRun(ctx context.Context, id string) (*models.Run, error)
}
