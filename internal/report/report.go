// Package report renders analysis results to the on-disk report directory:
// a JSON metrics summary and a degree-distribution CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cographio/cograph/internal/models"
)

// File names written under the report directory.
const (
	SummaryFile = "metrics.json"
	DegreesFile = "degree_counts.csv"
)

// Writer renders reports under Dir, creating it on demand.
type Writer struct {
	Dir string
}

// WriteSummary writes the metrics summary as indented JSON. An undefined
// average path length renders as null.
func (w Writer) WriteSummary(s models.Summary) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	path := filepath.Join(w.Dir, SummaryFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// WriteDegrees writes the degree distribution as a two-column CSV with a
// header row, sorted ascending by degree for stable diffs.
func (w Writer) WriteDegrees(dist map[int]int) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	degrees := make([]int, 0, len(dist))
	for d := range dist {
		degrees = append(degrees, d)
	}

	sort.Ints(degrees)

	path := filepath.Join(w.Dir, DegreesFile)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"degree", "count"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, d := range degrees {
		if err := cw.Write([]string{strconv.Itoa(d), strconv.Itoa(dist[d])}); err != nil {
			return fmt.Errorf("writing degree row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return f.Close()
}

// DegreeBuckets converts a degree distribution map to sorted bucket rows,
// the shape served by the HTTP API.
func DegreeBuckets(dist map[int]int) []models.DegreeBucket {
	degrees := make([]int, 0, len(dist))
	for d := range dist {
		degrees = append(degrees, d)
	}

	sort.Ints(degrees)

	buckets := make([]models.DegreeBucket, 0, len(degrees))
	for _, d := range degrees {
		buckets = append(buckets, models.DegreeBucket{Degree: d, Count: dist[d]})
	}

	return buckets
}
