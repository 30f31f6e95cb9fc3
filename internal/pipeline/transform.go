package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gyeh/emrpipe/internal/clean"
	"github.com/gyeh/emrpipe/internal/config"
	"github.com/gyeh/emrpipe/internal/model"
	"github.com/gyeh/emrpipe/internal/table"
)

// TransformResult summarizes one entity's normalization pass.
type TransformResult struct {
	Entity   string
	Rows     int64
	Rejected int64
	Repaired int64
	Missing  int64
}

// TransformEntity reads one entity's raw CSV, normalizes it in place, and
// writes the staged CSV. Row count never changes: bad cells degrade to
// the missing sentinel instead of dropping the row.
func TransformEntity(log zerolog.Logger, ent model.Entity, rawDir, stagedDir string) (TransformResult, error) {
	rawPath := filepath.Join(rawDir, ent.RawFile)
	t, err := table.ReadRawCSV(rawPath)
	if err != nil {
		return TransformResult{}, err
	}
	if err := t.Require(ent.Columns...); err != nil {
		return TransformResult{}, fmt.Errorf("%s: %w", ent.Name, err)
	}

	fn, ok := clean.ByName(ent.Name)
	if !ok {
		return TransformResult{}, fmt.Errorf("no normalizer for entity %q", ent.Name)
	}
	rec := clean.NewRecorder(ent.Name, log)
	if err := fn(t, rec); err != nil {
		return TransformResult{}, fmt.Errorf("normalize %s: %w", ent.Name, err)
	}

	stagedPath := filepath.Join(stagedDir, ent.StagedFile)
	if err := table.WriteCSV(stagedPath, t); err != nil {
		return TransformResult{}, err
	}

	res := TransformResult{
		Entity:   ent.Name,
		Rows:     int64(len(t.Rows)),
		Rejected: int64(rec.CountKind(clean.KindRejected)),
		Repaired: int64(rec.CountKind(clean.KindRepaired)),
		Missing:  int64(rec.CountKind(clean.KindMissing)),
	}
	log.Info().
		Str("entity", ent.Name).
		Str("file", ent.StagedFile).
		Int64("rows", res.Rows).
		Int64("rejected", res.Rejected).
		Int64("repaired", res.Repaired).
		Int64("missing", res.Missing).
		Msg("staged entity")
	return res, nil
}

// TransformAll normalizes the configured entities in load order. With no
// entity filter configured, all four are transformed.
func TransformAll(log zerolog.Logger, cfg *config.Config) ([]TransformResult, error) {
	if err := os.MkdirAll(cfg.StagedDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create staged dir: %w", err)
	}

	wanted := make(map[string]bool, len(cfg.Entities))
	for _, name := range cfg.Entities {
		wanted[name] = true
	}

	var results []TransformResult
	for _, ent := range model.AllEntities {
		if len(wanted) > 0 && !wanted[ent.Name] {
			continue
		}
		res, err := TransformEntity(log, ent, cfg.RawDir(), cfg.StagedDir())
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
