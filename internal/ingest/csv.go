// Package ingest reads day/area observation records from CSV input.
//
// The expected format is the day_area extract produced by the preprocessing
// pipeline: a header row naming a day column and an area column, then one
// observation per row. Validation happens here — the graph builder assumes
// clean records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cographio/cograph/internal/models"
)

// Recognized header names, matched case-insensitively.
const (
	dayColumn  = "DAY"
	areaColumn = "AREA_NAME"
)

// ReadFile reads records from the CSV file at path.
func ReadFile(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return records, nil
}

// Read parses CSV records from r. The first row must be a header containing
// the DAY and AREA_NAME columns (any order, extra columns ignored). Row
// errors carry the 1-based row number of the offending line.
func Read(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, models.ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	dayIdx, areaIdx := -1, -1
	for i, name := range header {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case dayColumn:
			dayIdx = i
		case areaColumn:
			areaIdx = i
		}
	}

	if dayIdx < 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrMissingColumn, dayColumn)
	}
	if areaIdx < 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrMissingColumn, areaColumn)
	}

	var records []models.Record

	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, models.ErrBadRow(row, err)
		}

		day, err := time.Parse(models.DayLayout, fields[dayIdx])
		if err != nil {
			return nil, models.ErrBadRow(row, err)
		}

		area := strings.TrimSpace(fields[areaIdx])
		if area == "" {
			return nil, models.ErrBadRow(row, fmt.Errorf("empty %s", areaColumn))
		}

		records = append(records, models.Record{Day: day, Area: area})
	}

	if len(records) == 0 {
		return nil, models.ErrNoRecords
	}

	return records, nil
}
