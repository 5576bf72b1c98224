// Package service provides the orchestration layer between the I/O adapters
// and the graph/analysis core.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/analysis"
	"github.com/cographio/cograph/internal/graph"
	"github.com/cographio/cograph/internal/metrics"
	"github.com/cographio/cograph/internal/models"
)

// AnalysisService builds the co-occurrence graph from records and computes
// the full metric set over it.
type AnalysisService struct {
	log    *logrus.Logger
	engine analysis.Engine
	topN   int
}

// NewAnalysisService creates an AnalysisService. workers bounds the
// parallelism of all-pairs traversals, topN the length of the closeness
// ranking.
func NewAnalysisService(log *logrus.Logger, workers, topN int) *AnalysisService {
	return &AnalysisService{
		log:    log,
		engine: analysis.Engine{Workers: workers},
		topN:   topN,
	}
}

// Result bundles one completed analysis: the run record plus the full
// degree distribution, which is reported separately from the summary.
type Result struct {
	Run     models.Run
	Degrees map[int]int
}

// Analyze builds the graph once and runs every metric over the immutable
// result. The context is checked between phases; the phases themselves are
// synchronous CPU-bound work.
func (s *AnalysisService) Analyze(ctx context.Context, inputPath string, records []models.Record) (*Result, error) {
	started := time.Now()

	g := timed("build", func() *graph.Graph { return graph.Build(records) })

	metrics.NodeCount.Set(float64(g.NodeCount()))
	metrics.EdgeCount.Set(float64(g.EdgeCount()))

	s.log.WithFields(logrus.Fields{
		"records": len(records),
		"nodes":   g.NodeCount(),
		"edges":   g.EdgeCount(),
	}).Info("graph built")

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis canceled: %w", err)
	}

	degrees := timed("degrees", func() map[int]int { return s.engine.DegreeDistribution(g) })

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis canceled: %w", err)
	}

	var avgPath *float64

	avgStart := time.Now()
	if avg, ok := s.engine.AvgShortestPath(g); ok {
		avgPath = &avg
	}
	metrics.AnalysisDuration.WithLabelValues("avg_path").Observe(time.Since(avgStart).Seconds())

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis canceled: %w", err)
	}

	top := timed("closeness", func() []models.ClosenessEntry { return s.engine.ClosenessTopN(g, s.topN) })
	components := timed("components", func() int { return s.engine.ComponentCount(g) })

	run := models.Run{
		ID:            uuid.New().String(),
		InputPath:     inputPath,
		Records:       len(records),
		Nodes:         g.NodeCount(),
		Edges:         g.EdgeCount(),
		AvgPath:       avgPath,
		TopCloseness:  top,
		NumComponents: components,
		Duration:      time.Since(started),
		CreatedAt:     time.Now().UTC(),
	}

	metrics.RunsTotal.Inc()

	s.log.WithFields(logrus.Fields{
		"run_id":     run.ID,
		"components": run.NumComponents,
		"duration":   run.Duration.String(),
	}).Info("analysis complete")

	return &Result{Run: run, Degrees: degrees}, nil
}

// timed runs fn and records its duration under the given phase label.
func timed[T any](phase string, fn func() T) T {
	start := time.Now()
	out := fn()
	metrics.AnalysisDuration.WithLabelValues(phase).Observe(time.Since(start).Seconds())

	return out
}
