package clean

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
)

var currencyToken = regexp.MustCompile(`^[A-Z]{3}$`)

// Visit normalizes the visit table in place. Two cross-field repairs run
// before the per-field rules so the rules see already-corrected values:
// an ICD code concatenated into reason_for_visit is moved to icd_code,
// and a currency code entered under billable_amount is moved to currency.
func Visit(t *table.Table, rec *Recorder) error {
	if err := repairReasonICD(t, rec); err != nil {
		return err
	}
	if err := repairBillableCurrency(t, rec); err != nil {
		return err
	}
	return applyRules(t, []FieldRule{
		{Column: "visit_id", Validate: normalize.VisitID, WarnMissing: true},
		{Column: "patient_id", Validate: normalize.PatientID},
		{Column: "provider_id", Validate: normalize.ProviderID},
		{Column: "visit_date", Validate: normalize.Date},
		{Column: "location", Validate: normalize.Location},
		{Column: "reason_for_visit"},
		{Column: "icd_code", Validate: normalize.ICDCode},
		{Column: "visit_status", Validate: normalize.VisitStatus},
		{Column: "billable_amount", Validate: normalize.Amount},
		{Column: "currency", Validate: normalize.Currency},
		{Column: "follow_up_date", Validate: normalize.Date},
	}, rec)
}

// repairReasonICD splits reason_for_visit on its first comma. A remainder
// in valid ICD format moves to icd_code, replacing whatever is there; any
// other non-missing remainder is discarded with a warning.
func repairReasonICD(t *table.Table, rec *Recorder) error {
	reasonCol, ok := t.ColumnIndex("reason_for_visit")
	if !ok {
		return fmt.Errorf("column %q not in header", "reason_for_visit")
	}
	icdCol, ok := t.ColumnIndex("icd_code")
	if !ok {
		return fmt.Errorf("column %q not in header", "icd_code")
	}
	for i, row := range t.Rows {
		raw := row[reasonCol]
		if normalize.IsMissing(raw) {
			continue
		}
		head, rest, found := strings.Cut(strings.TrimSpace(raw), ",")
		if !found {
			continue
		}
		row[reasonCol] = strings.TrimSpace(head)
		remainder := strings.TrimSpace(rest)
		if _, err := normalize.ICDCode(remainder); err == nil {
			row[icdCol] = remainder
			rec.Repaired(i, "icd_code", remainder, "moved embedded code out of reason_for_visit")
			continue
		}
		if !normalize.IsMissing(remainder) {
			rec.Rejected(i, "reason_for_visit", remainder, "discarded fragment after comma, not a valid code")
		}
	}
	return nil
}

// repairBillableCurrency swaps a three-letter code found under
// billable_amount into an empty currency cell.
func repairBillableCurrency(t *table.Table, rec *Recorder) error {
	billCol, ok := t.ColumnIndex("billable_amount")
	if !ok {
		return fmt.Errorf("column %q not in header", "billable_amount")
	}
	currCol, ok := t.ColumnIndex("currency")
	if !ok {
		return fmt.Errorf("column %q not in header", "currency")
	}
	for i, row := range t.Rows {
		bill := strings.TrimSpace(row[billCol])
		if !currencyToken.MatchString(bill) || !normalize.IsMissing(row[currCol]) {
			continue
		}
		row[currCol] = bill
		row[billCol] = table.Missing
		rec.Repaired(i, "currency", bill, "moved code out of billable_amount and cleared it")
	}
	return nil
}
