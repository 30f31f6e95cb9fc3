// Package pipeline orchestrates the ETL stages: workbook extraction,
// entity normalization, and the database load.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/emrpipe/internal/config"
	"github.com/gyeh/emrpipe/internal/model"
)

// PipelineError wraps an error with the stage where it occurred.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full pipeline: extract → transform → load.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()
	summary := model.NewRunSummary()
	summary.WorkbookPath = cfg.WorkbookPath

	// Stage 1: Extract
	log.Info().Str("workbook", cfg.WorkbookPath).Msg("starting extract")
	extractStart := time.Now()
	extracted, err := Extract(log, cfg.WorkbookPath, cfg.RawDir())
	if err != nil {
		return nil, &PipelineError{Stage: "extract", Err: err}
	}
	for name, n := range extracted {
		summary.RowsExtracted[name] = n
	}
	summary.DurationExtract = time.Since(extractStart)

	// Stage 2: Transform
	log.Info().Msg("starting transform")
	transformStart := time.Now()
	results, err := TransformAll(log, cfg)
	if err != nil {
		return nil, &PipelineError{Stage: "transform", Err: err}
	}
	for _, res := range results {
		summary.RowsStaged[res.Entity] = res.Rows
		summary.CellsRejected[res.Entity] = res.Rejected
		summary.CellsRepaired[res.Entity] = res.Repaired
		summary.KeysMissing[res.Entity] = res.Missing
	}
	summary.DurationTransform = time.Since(transformStart)

	// Stage 3: Load
	log.Info().Msg("starting load")
	loadStart := time.Now()
	loadRes, err := Load(ctx, pool, log, cfg)
	if err != nil {
		return nil, &PipelineError{Stage: "load", Err: err}
	}
	summary.RunID = loadRes.RunID.String()
	summary.StagedSHA256 = loadRes.StagedSHA256
	summary.LoadSkipped = loadRes.Skipped
	for name, n := range loadRes.RowsLoaded {
		summary.RowsLoaded[name] = n
	}
	summary.DurationLoad = time.Since(loadStart)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("run_id", summary.RunID).
		Int64("rows_staged", totalCount(summary.RowsStaged)).
		Int64("rows_loaded", totalCount(summary.RowsLoaded)).
		Bool("load_skipped", summary.LoadSkipped).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("pipeline complete")

	return summary, nil
}

func totalCount(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}
