package api_test

import (
	"context"

	"github.com/cographio/cograph/internal/models"
)

// mockRunRepo is a hand-written RunRepository mock.
type mockRunRepo struct {
	listFn func(ctx context.Context, limit int) ([]models.Run, error)
	getFn  func(ctx context.Context, id string) (*models.Run, error)
}

func (m *mockRunRepo) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if m.listFn == nil {
		return nil, nil
	}

	return m.listFn(ctx, limit)
}

func (m *mockRunRepo) GetRun(ctx context.Context, id string) (*models.Run, error) {
	if m.getFn == nil {
		return nil, models.ErrRunNotFound
	}

	return m.getFn(ctx, id)
}
