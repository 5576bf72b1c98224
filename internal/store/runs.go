package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cographio/cograph/internal/models"
)

// maxRunListLimit caps the number of runs returned by ListRuns.
const maxRunListLimit = 500

// RunStore handles reads and writes of archived analysis runs.
type RunStore struct {
	Base
}

// NewRunStore creates a RunStore.
func NewRunStore(base Base) *RunStore {
	return &RunStore{Base: base}
}

const runColumns = `id, input_path, records, nodes, edges, avg_path,
	top_closeness, num_components, duration_ns, created_at`

// SaveRun inserts one completed run.
func (s *RunStore) SaveRun(ctx context.Context, run *models.Run) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	closeness, err := json.Marshal(run.TopCloseness)
	if err != nil {
		return fmt.Errorf("encoding closeness ranking: %w", err)
	}

	_, err = s.Pool.Exec(ctx, `
		INSERT INTO analysis_runs (`+runColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, run.ID, run.InputPath, run.Records, run.Nodes, run.Edges, run.AvgPath,
		closeness, run.NumComponents, run.Duration.Nanoseconds(), run.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	s.Log.WithField("run_id", run.ID).Debug("run archived")

	return nil
}

// ListRuns returns archived runs, newest first.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if limit <= 0 || limit > maxRunListLimit {
		limit = maxRunListLimit
	}

	rows, err := s.Pool.Query(ctx, `
		SELECT `+runColumns+`
		FROM analysis_runs
		ORDER BY created_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	runs := make([]models.Run, 0, 16)

	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// GetRun returns one archived run by ID.
func (s *RunStore) GetRun(ctx context.Context, id string) (*models.Run, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `
		SELECT `+runColumns+`
		FROM analysis_runs
		WHERE id = $1
	`, id)

	run, err := scanRun(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning run %s: %w", id, err)
	}

	return run, nil
}

// scanRun maps one analysis_runs row onto a models.Run.
func scanRun(scan func(dest ...any) error) (*models.Run, error) {
	var (
		run           models.Run
		closenessJSON []byte
		durationNS    int64
	)

	if err := scan(
		&run.ID, &run.InputPath, &run.Records, &run.Nodes, &run.Edges,
		&run.AvgPath, &closenessJSON, &run.NumComponents, &durationNS,
		&run.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(closenessJSON, &run.TopCloseness); err != nil {
		return nil, fmt.Errorf("decoding closeness ranking: %w", err)
	}

	run.Duration = time.Duration(durationNS)

	return &run, nil
}
