package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cographio/cograph/internal/config"
	"github.com/cographio/cograph/internal/db"
	"github.com/cographio/cograph/internal/db/migrations"
	"github.com/cographio/cograph/internal/dbpool"
	"github.com/cographio/cograph/internal/ingest"
	"github.com/cographio/cograph/internal/report"
	"github.com/cographio/cograph/internal/service"
	"github.com/cographio/cograph/internal/store"
)

// pipeline wires the I/O adapters around the analysis core for one run.
type pipeline struct {
	cfg  *config.Config
	log  *logrus.Logger
	pool *dbpool.Pool // nil when the archive is disabled
	runs *store.RunStore
}

// newPipeline connects the archive (when configured) and runs migrations.
func newPipeline(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*pipeline, error) {
	p := &pipeline{cfg: cfg, log: log}

	if !cfg.ArchiveEnabled() {
		log.Debug("run archive disabled (DATABASE_URL not set)")

		return p, nil
	}

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return nil, fmt.Errorf("connecting to archive: %w", err)
	}

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		pool.Close()

		return nil, fmt.Errorf("migrating archive: %w", err)
	}

	p.pool = pool
	p.runs = store.NewRunStore(store.Base{Pool: pool, Log: log})

	return p, nil
}

// close releases the archive connection if one was opened.
func (p *pipeline) close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// analyze runs ingest → build → metrics → report → archive and returns the
// completed result.
func (p *pipeline) analyze(ctx context.Context) (*service.Result, error) {
	records, err := ingest.ReadFile(p.cfg.InputPath)
	if err != nil {
		return nil, err
	}

	svc := service.NewAnalysisService(p.log, p.cfg.BFSWorkers, p.cfg.TopN)

	result, err := svc.Analyze(ctx, p.cfg.InputPath, records)
	if err != nil {
		return nil, err
	}

	w := report.Writer{Dir: p.cfg.ReportDir}
	if err := w.WriteSummary(result.Run.Summary()); err != nil {
		return nil, err
	}

	if err := w.WriteDegrees(result.Degrees); err != nil {
		return nil, err
	}

	p.log.WithField("dir", p.cfg.ReportDir).Info("reports written")

	if p.runs != nil {
		if err := p.runs.SaveRun(ctx, &result.Run); err != nil {
			// Archival failure doesn't invalidate the computed results.
			p.log.WithError(err).Warn("archiving run failed")
		}
	}

	return result, nil
}
