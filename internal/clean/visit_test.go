package clean

import (
	"testing"

	"github.com/gyeh/emrpipe/internal/table"
)

func visitFixture() *table.Table {
	tbl := table.New(
		"visit_id", "patient_id", "provider_id", "visit_date", "location",
		"reason_for_visit", "icd_code", "visit_status", "billable_amount",
		"currency", "follow_up_date",
	)
	tbl.AppendRow("V123", "A123", "PR123", "2024-01-01", "Main Clinic", "Annual Checkup", "A12.3", "Completed", "150.00", "USD", "2024-02-01")
	tbl.AppendRow("V456", "B456", "PR456", "01/15/2024", "Urgent Care", "Fever, A12.3", "B45.2", "In Progress", "EUR", "", "02/15/2024")
	tbl.AppendRow("invalid", "C789", "invalid", "invalid", "unknown", "Appt.", "R345", "invalid", "abc", "usd", "invalid")
	tbl.AppendRow("V789", "", "", "", "", "", "", "", "", "", "")
	return tbl
}

func TestVisit(t *testing.T) {
	tbl := visitFixture()
	rec := newTestRecorder("visits")
	if err := Visit(tbl, rec); err != nil {
		t.Fatalf("Visit: %v", err)
	}

	t.Run("reason_repair", func(t *testing.T) {
		assertCell(t, tbl, "reason_for_visit", 0, "Annual Checkup")
		assertCell(t, tbl, "reason_for_visit", 1, "Fever")
		assertCell(t, tbl, "reason_for_visit", 2, "Appt.")
		assertCell(t, tbl, "reason_for_visit", 3, table.Missing)
		// The embedded code replaces the existing icd_code value.
		assertCell(t, tbl, "icd_code", 1, "A12.3")
	})

	t.Run("currency_swap", func(t *testing.T) {
		assertCell(t, tbl, "currency", 1, "EUR")
		assertCell(t, tbl, "billable_amount", 1, table.Missing)
		// Row 0 keeps its amount: the currency cell was not empty.
		assertCell(t, tbl, "billable_amount", 0, "150.00")
	})

	t.Run("ids", func(t *testing.T) {
		assertCell(t, tbl, "visit_id", 0, "V123")
		assertCell(t, tbl, "visit_id", 2, table.Missing)
		assertCell(t, tbl, "visit_id", 3, "V789")
		assertCell(t, tbl, "provider_id", 1, "PR456")
		assertCell(t, tbl, "provider_id", 2, table.Missing)
		assertCell(t, tbl, "provider_id", 3, table.Missing)
	})

	t.Run("dates", func(t *testing.T) {
		assertCell(t, tbl, "visit_date", 1, "2024-01-15")
		assertCell(t, tbl, "visit_date", 2, table.Missing)
		assertCell(t, tbl, "follow_up_date", 1, "2024-02-15")
		assertCell(t, tbl, "follow_up_date", 3, table.Missing)
	})

	t.Run("enums", func(t *testing.T) {
		assertCell(t, tbl, "visit_status", 1, "In Progress")
		assertCell(t, tbl, "visit_status", 2, table.Missing)
		assertCell(t, tbl, "location", 2, table.Missing) // "unknown"
		assertCell(t, tbl, "currency", 0, "USD")
		assertCell(t, tbl, "currency", 2, table.Missing) // wrong case
	})

	t.Run("icd", func(t *testing.T) {
		assertCell(t, tbl, "icd_code", 0, "A12.3")
		assertCell(t, tbl, "icd_code", 2, table.Missing)
		assertCell(t, tbl, "icd_code", 3, table.Missing)
	})
}

func TestVisitRepairDiscardsBadFragment(t *testing.T) {
	tbl := table.New(
		"visit_id", "patient_id", "provider_id", "visit_date", "location",
		"reason_for_visit", "icd_code", "visit_status", "billable_amount",
		"currency", "follow_up_date",
	)
	tbl.AppendRow("V1", "A1", "PR1", "2024-01-01", "Clinic", "Checkup, notes from intake", "A12.3", "Open", "10.00", "USD", "")
	tbl.AppendRow("V2", "A2", "PR2", "2024-01-02", "Clinic", "Fever, ", "B45.2", "Open", "20.00", "USD", "")

	rec := newTestRecorder("visits")
	if err := Visit(tbl, rec); err != nil {
		t.Fatalf("Visit: %v", err)
	}

	assertCell(t, tbl, "reason_for_visit", 0, "Checkup")
	assertCell(t, tbl, "icd_code", 0, "A12.3") // untouched
	// A non-code fragment is dropped with one rejection; an empty
	// remainder is dropped silently.
	assertCell(t, tbl, "reason_for_visit", 1, "Fever")
	if got := rec.CountKind(KindRejected); got != 1 {
		t.Errorf("rejected events = %d, want 1", got)
	}
	if got := rec.CountKind(KindRepaired); got != 0 {
		t.Errorf("repaired events = %d, want 0", got)
	}
}

// One fully valid row, one with a swapped currency, one with a bad
// status, one entirely empty: the pass must record exactly one repair,
// one rejection, and one missing key, leaving one untouched clean row.
func TestVisitEventAudit(t *testing.T) {
	tbl := table.New(
		"visit_id", "patient_id", "provider_id", "visit_date", "location",
		"reason_for_visit", "icd_code", "visit_status", "billable_amount",
		"currency", "follow_up_date",
	)
	tbl.AppendRow("V100", "A100", "PR100", "2024-03-01", "Main Clinic", "Checkup", "A12.3", "Completed", "125.50", "USD", "2024-04-01")
	tbl.AppendRow("V101", "A101", "PR101", "2024-03-02", "Main Clinic", "Follow up", "B45.2", "Scheduled", "EUR", "", "2024-04-02")
	tbl.AppendRow("V102", "A102", "PR102", "2024-03-03", "Main Clinic", "Consult", "C01.1", "Finished", "80.00", "USD", "2024-04-03")
	tbl.AppendRow("", "", "", "", "", "", "", "", "", "", "")

	rec := newTestRecorder("visits")
	if err := Visit(tbl, rec); err != nil {
		t.Fatalf("Visit: %v", err)
	}

	if got := len(rec.Events()); got != 3 {
		t.Fatalf("events = %d, want 3: %+v", got, rec.Events())
	}
	if got := rec.CountKind(KindRepaired); got != 1 {
		t.Errorf("repaired = %d, want 1", got)
	}
	if got := rec.CountKind(KindRejected); got != 1 {
		t.Errorf("rejected = %d, want 1", got)
	}
	if got := rec.CountKind(KindMissing); got != 1 {
		t.Errorf("missing = %d, want 1", got)
	}

	// The valid row comes through untouched.
	want := []string{"V100", "A100", "PR100", "2024-03-01", "Main Clinic", "Checkup", "A12.3", "Completed", "125.50", "USD", "2024-04-01"}
	for i, col := range tbl.Columns {
		assertCell(t, tbl, col, 0, want[i])
	}
	// The swapped row is repaired, the bad status degraded, the empty
	// row still present with every cell missing.
	assertCell(t, tbl, "currency", 1, "EUR")
	assertCell(t, tbl, "visit_status", 2, table.Missing)
	if len(tbl.Rows) != 4 {
		t.Errorf("rows = %d, want 4 (no row is ever dropped)", len(tbl.Rows))
	}
}
