package clean

import (
	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
)

// Patient normalizes the patient table in place. Patient exports use the
// literal token "invalid" as a placeholder in every column, so all fields
// here use the stricter missing classifier. The patient_id column is the
// table's key; its absence is recorded.
func Patient(t *table.Table, rec *Recorder) error {
	return applyRules(t, []FieldRule{
		{Column: "patient_id", Validate: normalize.PatientID, Missing: normalize.IsMissingOrInvalid, WarnMissing: true},
		{Column: "first_name", Validate: normalize.PersonName, Missing: normalize.IsMissingOrInvalid},
		{Column: "last_name", Validate: normalize.PersonName, Missing: normalize.IsMissingOrInvalid},
		{Column: "date_of_birth", Validate: normalize.Date, Missing: normalize.IsMissingOrInvalid},
		{Column: "gender", Validate: normalize.Gender, Missing: normalize.IsMissingOrInvalid},
		{Column: "address", Validate: normalize.Address, Missing: normalize.IsMissingOrInvalid},
		{Column: "city", Validate: normalize.City, Missing: normalize.IsMissingOrInvalid},
		{Column: "state", Validate: normalize.State, Missing: normalize.IsMissingOrInvalid},
		{Column: "zip", Validate: normalize.Zip, Missing: normalize.IsMissingOrInvalid},
		{Column: "phone", Validate: normalize.Phone, Missing: normalize.IsMissingOrInvalid},
		{Column: "insurance_id", Validate: normalize.InsuranceID, Missing: normalize.IsMissingOrInvalid},
		{Column: "insurance_effective_date", Validate: normalize.Date, Missing: normalize.IsMissingOrInvalid},
	}, rec)
}
