package clean

import (
	"fmt"
	"strings"

	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
)

// LabResults normalizes the lab results table in place. The lab_id key
// and the visit_id foreign key are both required, and test_units becomes
// required once the row's test_value has normalized to a number.
func LabResults(t *table.Table, rec *Recorder) error {
	err := applyRules(t, []FieldRule{
		{Column: "lab_id", Validate: normalize.LabID, WarnMissing: true},
		{Column: "visit_id", Validate: normalize.VisitID, WarnMissing: true},
		{Column: "test_name"},
		{Column: "test_value", Validate: normalize.TestValue},
	}, rec)
	if err != nil {
		return err
	}
	if err := requireUnitsForNumeric(t, rec); err != nil {
		return err
	}
	return applyRules(t, []FieldRule{
		{Column: "reference_range", Validate: normalize.ReferenceRange},
		{Column: "date_performed", Validate: normalize.Date},
		{Column: "date_resulted", Validate: normalize.Date},
	}, rec)
}

// requireUnitsForNumeric runs after the test_value rule: a numeric result
// with no units is recorded as a missing required value. Units on
// qualitative results pass through untouched apart from trimming.
func requireUnitsForNumeric(t *table.Table, rec *Recorder) error {
	valueCol, ok := t.ColumnIndex("test_value")
	if !ok {
		return fmt.Errorf("column %q not in header", "test_value")
	}
	unitsCol, ok := t.ColumnIndex("test_units")
	if !ok {
		return fmt.Errorf("column %q not in header", "test_units")
	}
	for i, row := range t.Rows {
		raw := row[unitsCol]
		if normalize.IsMissing(raw) {
			row[unitsCol] = table.Missing
			if normalize.IsNumeric(row[valueCol]) {
				rec.Missing(i, "test_units", raw, "units required for a numeric test value")
			}
			continue
		}
		row[unitsCol] = strings.TrimSpace(raw)
	}
	rec.log.Info().
		Str("entity", rec.entity).
		Str("column", "test_units").
		Msg("field pass complete")
	return nil
}
