package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/models"
	"github.com/cographio/cograph/internal/service"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func day(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse(models.DayLayout, s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}

	return d
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	records := []models.Record{
		{Day: day(t, "2025-04-01"), Area: "A"},
		{Day: day(t, "2025-04-01"), Area: "B"},
		{Day: day(t, "2025-04-01"), Area: "C"},
		{Day: day(t, "2025-04-02"), Area: "A"},
	}

	svc := service.NewAnalysisService(testLogger(), 2, 5)

	result, err := svc.Analyze(context.Background(), "test.csv", records)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	run := result.Run
	if run.ID == "" {
		t.Error("run ID empty")
	}
	if run.Nodes != 4 {
		t.Errorf("Nodes = %d, want 4", run.Nodes)
	}
	if run.Edges != 3 {
		t.Errorf("Edges = %d, want 3", run.Edges)
	}
	if run.NumComponents != 2 {
		t.Errorf("NumComponents = %d, want 2", run.NumComponents)
	}
	if run.AvgPath == nil {
		t.Fatal("AvgPath = nil, want defined")
	}
	if len(run.TopCloseness) != 4 {
		t.Errorf("len(TopCloseness) = %d, want 4 (graph smaller than top-n)", len(run.TopCloseness))
	}
	if result.Degrees[2] != 3 || result.Degrees[0] != 1 {
		t.Errorf("Degrees = %v, want {2:3, 0:1}", result.Degrees)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	t.Parallel()

	svc := service.NewAnalysisService(testLogger(), 1, 5)

	result, err := svc.Analyze(context.Background(), "empty.csv", nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.Run.Nodes != 0 || result.Run.Edges != 0 {
		t.Errorf("Nodes/Edges = %d/%d, want 0/0", result.Run.Nodes, result.Run.Edges)
	}
	if result.Run.AvgPath != nil {
		t.Errorf("AvgPath = %v, want nil (undefined)", *result.Run.AvgPath)
	}
	if result.Run.NumComponents != 0 {
		t.Errorf("NumComponents = %d, want 0", result.Run.NumComponents)
	}
	if len(result.Run.TopCloseness) != 0 {
		t.Errorf("TopCloseness = %v, want empty", result.Run.TopCloseness)
	}
}

func TestAnalyzeCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := service.NewAnalysisService(testLogger(), 1, 5)

	if _, err := svc.Analyze(ctx, "test.csv", []models.Record{
		{Day: day(t, "2025-04-01"), Area: "A"},
	}); err == nil {
		t.Error("Analyze succeeded with canceled context, want error")
	}
}
