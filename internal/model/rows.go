package model

import "time"

// Load rows are the typed, DB-ready representations of staged CSV rows.
// Every field is nullable: a staged cell holding the missing sentinel
// loads as SQL NULL, including key columns, where the table's PRIMARY
// KEY constraint turns the gap into a load failure instead of a silent
// drop.

// ICDReferenceRow is one row of emr.icd_reference.
type ICDReferenceRow struct {
	ICDCode       *string
	Description   *string
	EffectiveDate *time.Time
	Status        *string
}

// ICDReferenceColumns returns the ordered column names for COPY into
// emr.icd_reference.
func ICDReferenceColumns() []string {
	return []string{"icd_code", "description", "effective_date", "status"}
}

// CopyValues returns the row values in the same order as
// ICDReferenceColumns(), suitable for pgx CopyFromSource.
func (r *ICDReferenceRow) CopyValues() []any {
	return []any{r.ICDCode, r.Description, r.EffectiveDate, r.Status}
}

// PatientRow is one row of emr.patients.
type PatientRow struct {
	PatientID              *string
	FirstName              *string
	LastName               *string
	DateOfBirth            *time.Time
	Gender                 *string
	Address                *string
	City                   *string
	State                  *string
	Zip                    *string
	Phone                  *string
	InsuranceID            *string
	InsuranceEffectiveDate *time.Time
}

// PatientColumns returns the ordered column names for COPY into
// emr.patients.
func PatientColumns() []string {
	return []string{
		"patient_id",
		"first_name",
		"last_name",
		"date_of_birth",
		"gender",
		"address",
		"city",
		"state",
		"zip",
		"phone",
		"insurance_id",
		"insurance_effective_date",
	}
}

// CopyValues returns the row values in the same order as PatientColumns(),
// suitable for pgx CopyFromSource.
func (r *PatientRow) CopyValues() []any {
	return []any{
		r.PatientID,
		r.FirstName,
		r.LastName,
		r.DateOfBirth,
		r.Gender,
		r.Address,
		r.City,
		r.State,
		r.Zip,
		r.Phone,
		r.InsuranceID,
		r.InsuranceEffectiveDate,
	}
}

// VisitRow is one row of emr.visits.
type VisitRow struct {
	VisitID        *string
	PatientID      *string
	ProviderID     *string
	VisitDate      *time.Time
	Location       *string
	ReasonForVisit *string
	ICDCode        *string
	VisitStatus    *string
	BillableAmount *float64
	Currency       *string
	FollowUpDate   *time.Time
}

// VisitColumns returns the ordered column names for COPY into emr.visits.
func VisitColumns() []string {
	return []string{
		"visit_id",
		"patient_id",
		"provider_id",
		"visit_date",
		"location",
		"reason_for_visit",
		"icd_code",
		"visit_status",
		"billable_amount",
		"currency",
		"follow_up_date",
	}
}

// CopyValues returns the row values in the same order as VisitColumns(),
// suitable for pgx CopyFromSource.
func (r *VisitRow) CopyValues() []any {
	return []any{
		r.VisitID,
		r.PatientID,
		r.ProviderID,
		r.VisitDate,
		r.Location,
		r.ReasonForVisit,
		r.ICDCode,
		r.VisitStatus,
		r.BillableAmount,
		r.Currency,
		r.FollowUpDate,
	}
}

// LabResultRow is one row of emr.lab_results.
type LabResultRow struct {
	LabID          *string
	VisitID        *string
	TestName       *string
	TestValue      *string
	TestUnits      *string
	ReferenceRange *string
	DatePerformed  *time.Time
	DateResulted   *time.Time
}

// LabResultColumns returns the ordered column names for COPY into
// emr.lab_results.
func LabResultColumns() []string {
	return []string{
		"lab_id",
		"visit_id",
		"test_name",
		"test_value",
		"test_units",
		"reference_range",
		"date_performed",
		"date_resulted",
	}
}

// CopyValues returns the row values in the same order as
// LabResultColumns(), suitable for pgx CopyFromSource.
func (r *LabResultRow) CopyValues() []any {
	return []any{
		r.LabID,
		r.VisitID,
		r.TestName,
		r.TestValue,
		r.TestUnits,
		r.ReferenceRange,
		r.DatePerformed,
		r.DateResulted,
	}
}
