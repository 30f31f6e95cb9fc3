// Package clean normalizes raw entity tables in place: every cell comes
// out either canonical for its column or set to the missing sentinel,
// with one recorded event per rejected, repaired, or required-but-absent
// cell.
package clean

import (
	"fmt"
	"strings"

	"github.com/gyeh/emrpipe/internal/model"
	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
)

// Normalizer mutates one entity table in place, recording every degraded
// or repaired cell on the Recorder.
type Normalizer func(*table.Table, *Recorder) error

// ByName returns the normalizer for an entity table name.
func ByName(entity string) (Normalizer, bool) {
	switch entity {
	case model.EntityICDReference:
		return ICDReference, true
	case model.EntityPatients:
		return Patient, true
	case model.EntityVisits:
		return Visit, true
	case model.EntityLabResults:
		return LabResults, true
	}
	return nil, false
}

// FieldRule is one per-column normalization step. An entity's rules run
// in the order listed; each sees the effects of the steps before it.
type FieldRule struct {
	// Column the rule reads and rewrites.
	Column string
	// Validate canonicalizes a non-missing value or reports why it
	// cannot. nil means presence is the only requirement.
	Validate func(string) (string, error)
	// Missing overrides the default sentinel classifier, e.g. for
	// identifier columns where "invalid" counts as absent.
	Missing func(string) bool
	// WarnMissing records an event when the cell is absent. Set on key
	// columns whose absence breaks the downstream load.
	WarnMissing bool
}

// applyRules runs each rule over its column across all rows. A cell that
// fails its rule degrades to the missing sentinel and records one event;
// the pass never drops a row. The only hard failure is a rule naming a
// column the table does not have.
func applyRules(t *table.Table, rules []FieldRule, rec *Recorder) error {
	for _, rule := range rules {
		col, ok := t.ColumnIndex(rule.Column)
		if !ok {
			return fmt.Errorf("column %q not in header", rule.Column)
		}
		isMissing := rule.Missing
		if isMissing == nil {
			isMissing = normalize.IsMissing
		}
		for i, row := range t.Rows {
			raw := row[col]
			if isMissing(raw) {
				row[col] = table.Missing
				if rule.WarnMissing {
					rec.Missing(i, rule.Column, raw, "required value is missing")
				}
				continue
			}
			if rule.Validate == nil {
				row[col] = strings.TrimSpace(raw)
				continue
			}
			v, err := rule.Validate(raw)
			if err != nil {
				rec.Rejected(i, rule.Column, raw, err.Error())
				row[col] = table.Missing
				continue
			}
			row[col] = v
		}
		rec.log.Info().
			Str("entity", rec.entity).
			Str("column", rule.Column).
			Msg("field pass complete")
	}
	return nil
}
