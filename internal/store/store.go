// Package store persists analysis run summaries to PostgreSQL.
//
// Only aggregates are stored — node/edge counts, average path length, the
// closeness ranking. The graph itself is rebuilt from input on every run and
// never written anywhere.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for stores.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
