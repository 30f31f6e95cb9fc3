package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gyeh/emrpipe/internal/db"
	"github.com/gyeh/emrpipe/internal/model"
	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
)

// stagedRow reads typed values out of one staged CSV row. Staged cells
// are already canonical, so a parse failure here means the staged file
// was edited or corrupted after the transform stage.
type stagedRow struct {
	tbl *table.Table
	row []string
}

// str returns the cell as a string pointer, nil when missing.
func (s stagedRow) str(column string) *string {
	i, ok := s.tbl.ColumnIndex(column)
	if !ok || s.row[i] == table.Missing {
		return nil
	}
	v := s.row[i]
	return &v
}

// date parses a canonical YYYY-MM-DD cell, nil when missing.
func (s stagedRow) date(column string) (*time.Time, error) {
	i, ok := s.tbl.ColumnIndex(column)
	if !ok || s.row[i] == table.Missing {
		return nil, nil
	}
	ts, err := normalize.ParseCanonicalDate(s.row[i])
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", column, err)
	}
	return &ts, nil
}

// amount parses a canonical decimal cell, nil when missing.
func (s stagedRow) amount(column string) (*float64, error) {
	i, ok := s.tbl.ColumnIndex(column)
	if !ok || s.row[i] == table.Missing {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s.row[i], 64)
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", column, err)
	}
	return &f, nil
}

// loadRows converts a staged table into typed rows for COPY, returning
// the column order alongside.
func loadRows(ent model.Entity, t *table.Table) ([]string, []db.Row, error) {
	switch ent.Name {
	case model.EntityICDReference:
		rows, err := icdRows(t)
		return model.ICDReferenceColumns(), rows, err
	case model.EntityPatients:
		rows, err := patientRows(t)
		return model.PatientColumns(), rows, err
	case model.EntityVisits:
		rows, err := visitRows(t)
		return model.VisitColumns(), rows, err
	case model.EntityLabResults:
		rows, err := labResultRows(t)
		return model.LabResultColumns(), rows, err
	}
	return nil, nil, fmt.Errorf("no row converter for entity %q", ent.Name)
}

func icdRows(t *table.Table) ([]db.Row, error) {
	rows := make([]db.Row, 0, len(t.Rows))
	for i, raw := range t.Rows {
		s := stagedRow{tbl: t, row: raw}
		effective, err := s.date("effective_date")
		if err != nil {
			return nil, fmt.Errorf("icd_reference row %d: %w", i, err)
		}
		rows = append(rows, &model.ICDReferenceRow{
			ICDCode:       s.str("icd_code"),
			Description:   s.str("description"),
			EffectiveDate: effective,
			Status:        s.str("status"),
		})
	}
	return rows, nil
}

func patientRows(t *table.Table) ([]db.Row, error) {
	rows := make([]db.Row, 0, len(t.Rows))
	for i, raw := range t.Rows {
		s := stagedRow{tbl: t, row: raw}
		dob, err := s.date("date_of_birth")
		if err != nil {
			return nil, fmt.Errorf("patients row %d: %w", i, err)
		}
		insEffective, err := s.date("insurance_effective_date")
		if err != nil {
			return nil, fmt.Errorf("patients row %d: %w", i, err)
		}
		rows = append(rows, &model.PatientRow{
			PatientID:              s.str("patient_id"),
			FirstName:              s.str("first_name"),
			LastName:               s.str("last_name"),
			DateOfBirth:            dob,
			Gender:                 s.str("gender"),
			Address:                s.str("address"),
			City:                   s.str("city"),
			State:                  s.str("state"),
			Zip:                    s.str("zip"),
			Phone:                  s.str("phone"),
			InsuranceID:            s.str("insurance_id"),
			InsuranceEffectiveDate: insEffective,
		})
	}
	return rows, nil
}

func visitRows(t *table.Table) ([]db.Row, error) {
	rows := make([]db.Row, 0, len(t.Rows))
	for i, raw := range t.Rows {
		s := stagedRow{tbl: t, row: raw}
		visitDate, err := s.date("visit_date")
		if err != nil {
			return nil, fmt.Errorf("visits row %d: %w", i, err)
		}
		followUp, err := s.date("follow_up_date")
		if err != nil {
			return nil, fmt.Errorf("visits row %d: %w", i, err)
		}
		billable, err := s.amount("billable_amount")
		if err != nil {
			return nil, fmt.Errorf("visits row %d: %w", i, err)
		}
		rows = append(rows, &model.VisitRow{
			VisitID:        s.str("visit_id"),
			PatientID:      s.str("patient_id"),
			ProviderID:     s.str("provider_id"),
			VisitDate:      visitDate,
			Location:       s.str("location"),
			ReasonForVisit: s.str("reason_for_visit"),
			ICDCode:        s.str("icd_code"),
			VisitStatus:    s.str("visit_status"),
			BillableAmount: billable,
			Currency:       s.str("currency"),
			FollowUpDate:   followUp,
		})
	}
	return rows, nil
}

func labResultRows(t *table.Table) ([]db.Row, error) {
	rows := make([]db.Row, 0, len(t.Rows))
	for i, raw := range t.Rows {
		s := stagedRow{tbl: t, row: raw}
		performed, err := s.date("date_performed")
		if err != nil {
			return nil, fmt.Errorf("lab_results row %d: %w", i, err)
		}
		resulted, err := s.date("date_resulted")
		if err != nil {
			return nil, fmt.Errorf("lab_results row %d: %w", i, err)
		}
		rows = append(rows, &model.LabResultRow{
			LabID:          s.str("lab_id"),
			VisitID:        s.str("visit_id"),
			TestName:       s.str("test_name"),
			TestValue:      s.str("test_value"),
			TestUnits:      s.str("test_units"),
			ReferenceRange: s.str("reference_range"),
			DatePerformed:  performed,
			DateResulted:   resulted,
		})
	}
	return rows, nil
}
