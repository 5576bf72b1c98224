package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cographio/cograph/internal/models"
	"github.com/cographio/cograph/internal/report"
)

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "report")
	avg := 1.5
	s := models.Summary{
		Nodes:   10,
		Edges:   12,
		AvgPath: &avg,
		TopCloseness: []models.ClosenessEntry{
			{Day: "2025-04-01", Area: "Central", Score: 0.9},
		},
		NumComponents: 2,
	}

	if err := (report.Writer{Dir: dir}).WriteSummary(s); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, report.SummaryFile))
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}

	var got models.Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if !reflect.DeepEqual(got, s) {
		t.Errorf("round-tripped summary = %+v, want %+v", got, s)
	}
}

func TestWriteSummaryUndefinedAvgPathIsNull(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := models.Summary{Nodes: 1, TopCloseness: []models.ClosenessEntry{}}

	if err := (report.Writer{Dir: dir}).WriteSummary(s); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, report.SummaryFile))
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}

	if !strings.Contains(string(data), `"avg_path": null`) {
		t.Errorf("summary JSON = %s, want avg_path null", data)
	}
}

func TestWriteDegreesSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dist := map[int]int{4: 1, 0: 3, 2: 7}

	if err := (report.Writer{Dir: dir}).WriteDegrees(dist); err != nil {
		t.Fatalf("WriteDegrees: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, report.DegreesFile))
	if err != nil {
		t.Fatalf("reading degrees: %v", err)
	}

	want := "degree,count\n0,3\n2,7\n4,1\n"
	if string(data) != want {
		t.Errorf("degrees CSV = %q, want %q", data, want)
	}
}

func TestDegreeBuckets(t *testing.T) {
	t.Parallel()

	got := report.DegreeBuckets(map[int]int{3: 2, 0: 1})
	want := []models.DegreeBucket{{Degree: 0, Count: 1}, {Degree: 3, Count: 2}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DegreeBuckets = %v, want %v", got, want)
	}
}
