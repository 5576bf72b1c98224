package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for ingestion.
var (
	ErrNoRecords     = errors.New("input contains no records")
	ErrMissingColumn = errors.New("required column missing")
)

// ErrRunNotFound indicates a run ID absent from the archive.
var ErrRunNotFound = errors.New("run not found")

// ErrBadRow returns an error describing an unparseable input row.
func ErrBadRow(row int, cause error) error {
	return fmt.Errorf("row %d: %w", row, cause)
}
