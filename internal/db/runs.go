package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/emrpipe/internal/model"
	embedsql "github.com/gyeh/emrpipe/internal/sql"
)

// LoadRun is the bookkeeping record for one staged dataset.
type LoadRun struct {
	RunID  uuid.UUID
	Status string
	// AlreadyLoaded is true when the staged hash exists with status
	// "loaded" and force mode is off, signaling the load can be skipped.
	AlreadyLoaded bool
}

// RegisterLoadRun inserts a load_runs row for the staged dataset hash, or
// resolves the existing one. Without force, a run already in status
// "loaded" comes back with AlreadyLoaded set; any other existing run is
// reset to "pending" for another attempt.
func RegisterLoadRun(ctx context.Context, pool *pgxpool.Pool, sourcePath, stagedSHA string, force bool) (*LoadRun, error) {
	run := &LoadRun{}
	err := pool.QueryRow(ctx, embedsql.RegisterLoadRun, uuid.New(), sourcePath, stagedSHA).
		Scan(&run.RunID, &run.Status)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("register load run: %w", err)
	}

	// Already registered (ON CONFLICT DO NOTHING returned no rows).
	if err := pool.QueryRow(ctx, embedsql.LookupLoadRun, stagedSHA).Scan(&run.RunID, &run.Status); err != nil {
		return nil, fmt.Errorf("lookup existing load run: %w", err)
	}

	if !force && run.Status == "loaded" {
		run.AlreadyLoaded = true
		return run, nil
	}

	// Reset status for re-load.
	if err := UpdateRunStatus(ctx, pool, run.RunID, "pending"); err != nil {
		return nil, fmt.Errorf("reset run status: %w", err)
	}
	run.Status = "pending"
	return run, nil
}

// UpdateRunStatus moves a load run to the given status, stamping
// finished_at on the terminal ones.
func UpdateRunStatus(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateRunStatus, runID, status)
	return err
}

// SetRunCounts records the per-entity loaded row counts for a run.
func SetRunCounts(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, counts map[string]int64) error {
	_, err := pool.Exec(ctx, embedsql.SetRunCounts, runID,
		counts[model.EntityICDReference],
		counts[model.EntityPatients],
		counts[model.EntityVisits],
		counts[model.EntityLabResults],
	)
	return err
}

// AnalyzeEntities refreshes planner statistics on the entity tables
// after a load.
func AnalyzeEntities(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, embedsql.AnalyzeEntities)
	return err
}
