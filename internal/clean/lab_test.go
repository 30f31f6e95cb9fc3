package clean

import (
	"testing"

	"github.com/gyeh/emrpipe/internal/table"
)

func labFixture() *table.Table {
	tbl := table.New(
		"lab_id", "visit_id", "test_name", "test_value", "test_units",
		"reference_range", "date_performed", "date_resulted",
	)
	tbl.AppendRow("L1234", "V123", "Blood Test", "12.5", "mg/dL", "10.0-15.0", "2024-01-01", "2024-01-02")
	tbl.AppendRow("L5678", "V456", "Urine Test", "Positive", "", "Negative", "01/15/2024", "01/16/2024")
	tbl.AppendRow("invalid", "invalid", "", "invalid", "units", "invalid", "invalid", "invalid")
	tbl.AppendRow("L9012", "V789", "None", "", "", "", "", "")
	tbl.AppendRow("L3456", "V222", "CBC", "9.876", "", "4.5-11.0", "2024-02-01", "2024-02-02")
	return tbl
}

func TestLabResults(t *testing.T) {
	tbl := labFixture()
	rec := newTestRecorder("lab_results")
	if err := LabResults(tbl, rec); err != nil {
		t.Fatalf("LabResults: %v", err)
	}

	t.Run("ids", func(t *testing.T) {
		assertCell(t, tbl, "lab_id", 0, "L1234")
		assertCell(t, tbl, "lab_id", 2, table.Missing)
		assertCell(t, tbl, "visit_id", 2, table.Missing)
		assertCell(t, tbl, "visit_id", 3, "V789")
	})

	t.Run("test_name", func(t *testing.T) {
		assertCell(t, tbl, "test_name", 0, "Blood Test")
		assertCell(t, tbl, "test_name", 2, table.Missing)
		assertCell(t, tbl, "test_name", 3, table.Missing)
	})

	t.Run("test_value", func(t *testing.T) {
		assertCell(t, tbl, "test_value", 0, "12.5")
		assertCell(t, tbl, "test_value", 1, "Positive")
		assertCell(t, tbl, "test_value", 2, table.Missing)
		assertCell(t, tbl, "test_value", 3, table.Missing)
		assertCell(t, tbl, "test_value", 4, "9.88") // rounded to 2 decimals
	})

	t.Run("test_units", func(t *testing.T) {
		assertCell(t, tbl, "test_units", 0, "mg/dL")
		// Qualitative or absent values do not require units.
		assertCell(t, tbl, "test_units", 1, table.Missing)
		assertCell(t, tbl, "test_units", 3, table.Missing)
		// Units on a non-numeric row pass through.
		assertCell(t, tbl, "test_units", 2, "units")
	})

	t.Run("reference_range", func(t *testing.T) {
		assertCell(t, tbl, "reference_range", 0, "10.0-15.0")
		assertCell(t, tbl, "reference_range", 1, "Negative")
		assertCell(t, tbl, "reference_range", 2, table.Missing)
		assertCell(t, tbl, "reference_range", 3, table.Missing)
	})

	t.Run("dates", func(t *testing.T) {
		assertCell(t, tbl, "date_performed", 1, "2024-01-15")
		assertCell(t, tbl, "date_resulted", 1, "2024-01-16")
		assertCell(t, tbl, "date_performed", 2, table.Missing)
		assertCell(t, tbl, "date_resulted", 3, table.Missing)
	})

	t.Run("units_required_for_numeric", func(t *testing.T) {
		var got []Event
		for _, e := range rec.Events() {
			if e.Kind == KindMissing && e.Column == "test_units" {
				got = append(got, e)
			}
		}
		if len(got) != 1 {
			t.Fatalf("missing test_units events = %d, want 1: %+v", len(got), got)
		}
		if got[0].Row != 4 {
			t.Errorf("missing units on row %d, want 4", got[0].Row)
		}
	})
}

func TestLabResultsEmptyRowWarnsOnceKeysOnly(t *testing.T) {
	tbl := table.New(
		"lab_id", "visit_id", "test_name", "test_value", "test_units",
		"reference_range", "date_performed", "date_resulted",
	)
	tbl.AppendRow("", "", "", "", "", "", "", "")

	rec := newTestRecorder("lab_results")
	if err := LabResults(tbl, rec); err != nil {
		t.Fatalf("LabResults: %v", err)
	}
	// lab_id and visit_id are both required; everything else degrades
	// silently.
	if got := rec.CountKind(KindMissing); got != 2 {
		t.Errorf("missing events = %d, want 2", got)
	}
	if got := rec.CountKind(KindRejected); got != 0 {
		t.Errorf("rejected events = %d, want 0", got)
	}
}
