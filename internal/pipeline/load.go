package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/emrpipe/internal/config"
	"github.com/gyeh/emrpipe/internal/db"
	"github.com/gyeh/emrpipe/internal/model"
	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
)

// LoadResult summarizes the database load of one staged dataset.
type LoadResult struct {
	RunID        uuid.UUID
	StagedSHA256 string
	Skipped      bool
	RowsLoaded   map[string]int64
}

// Load appends the staged dataset to the entity tables in one
// transaction, in dependency order so foreign keys resolve. The staged
// files are fingerprinted first; a fingerprint already recorded as
// loaded is skipped unless force is set. Bookkeeping lives outside the
// data transaction so a failed run keeps its "failed" status after the
// rollback.
func Load(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*LoadResult, error) {
	stagedDir := cfg.StagedDir()

	digests := make([]string, 0, len(model.AllEntities))
	for _, ent := range model.AllEntities {
		digest, err := normalize.FileHash(filepath.Join(stagedDir, ent.StagedFile))
		if err != nil {
			return nil, fmt.Errorf("hash staged %s: %w", ent.Name, err)
		}
		digests = append(digests, digest)
	}
	stagedSHA := normalize.CombinedHash(digests...)

	sourcePath := cfg.WorkbookPath
	if sourcePath == "" {
		sourcePath = stagedDir
	}

	run, err := db.RegisterLoadRun(ctx, pool, sourcePath, stagedSHA, cfg.Force)
	if err != nil {
		return nil, err
	}
	res := &LoadResult{
		RunID:        run.RunID,
		StagedSHA256: stagedSHA,
		RowsLoaded:   make(map[string]int64, len(model.AllEntities)),
	}

	if run.AlreadyLoaded {
		log.Info().
			Str("run_id", run.RunID.String()).
			Str("staged_sha256", stagedSHA).
			Msg("staged dataset already loaded, skipping (use --force to re-load)")
		res.Skipped = true
		return res, nil
	}

	if err := db.UpdateRunStatus(ctx, pool, run.RunID, "loading"); err != nil {
		return nil, fmt.Errorf("mark run loading: %w", err)
	}

	err = db.WithTx(ctx, pool, func(tx pgx.Tx) error {
		for _, ent := range model.AllEntities {
			t, err := table.ReadCSV(filepath.Join(stagedDir, ent.StagedFile))
			if err != nil {
				return err
			}
			if err := t.Require(ent.Columns...); err != nil {
				return fmt.Errorf("%s: %w", ent.Name, err)
			}
			cols, rows, err := loadRows(ent, t)
			if err != nil {
				return err
			}
			n, err := tx.CopyFrom(ctx, pgx.Identifier{"emr", ent.Name}, cols, db.NewRowSource(rows))
			if err != nil {
				return fmt.Errorf("copy into emr.%s: %w", ent.Name, err)
			}
			res.RowsLoaded[ent.Name] = n
			log.Info().Str("entity", ent.Name).Int64("rows", n).Msg("loaded entity")
		}
		return nil
	})
	if err != nil {
		if serr := db.UpdateRunStatus(ctx, pool, run.RunID, "failed"); serr != nil {
			log.Warn().Err(serr).Str("run_id", run.RunID.String()).Msg("could not mark run failed")
		}
		return nil, err
	}

	if err := db.SetRunCounts(ctx, pool, run.RunID, res.RowsLoaded); err != nil {
		return nil, fmt.Errorf("record run counts: %w", err)
	}
	if err := db.UpdateRunStatus(ctx, pool, run.RunID, "loaded"); err != nil {
		return nil, fmt.Errorf("mark run loaded: %w", err)
	}

	// Planner statistics are stale right after a bulk append. Non-fatal.
	if err := db.AnalyzeEntities(ctx, pool); err != nil {
		log.Warn().Err(err).Msg("analyze after load failed")
	}

	log.Info().
		Str("run_id", run.RunID.String()).
		Int64("rows", totalCount(res.RowsLoaded)).
		Msg("load complete")
	return res, nil
}
