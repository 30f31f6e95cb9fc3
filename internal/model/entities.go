package model

// Entity describes one of the pipeline's entity tables: the workbook
// sheet its rows come from, the raw and staged file names, and the
// canonical column set shared by the raw contract, the staged output,
// and the database table.
type Entity struct {
	Name       string // table name and log tag, e.g. "patients"
	Sheet      string // workbook sheet the raw file is extracted from
	RawFile    string // per-sheet export under the raw directory
	StagedFile string // cleaned output under the staged directory
	Columns    []string
}

// Entity names.
const (
	EntityICDReference = "icd_reference"
	EntityPatients     = "patients"
	EntityVisits       = "visits"
	EntityLabResults   = "lab_results"
)

// AllEntities lists the pipeline entities in load dependency order:
// icd_reference and patients stand alone, visits references both, and
// lab_results references visits.
var AllEntities = []Entity{
	{
		Name:       EntityICDReference,
		Sheet:      "ICD Reference",
		RawFile:    "icd_reference.csv",
		StagedFile: "icd_reference_cln.csv",
		Columns:    []string{"icd_code", "description", "effective_date", "status"},
	},
	{
		Name:       EntityPatients,
		Sheet:      "Patient Data",
		RawFile:    "patient_data.csv",
		StagedFile: "patient_data_cln.csv",
		Columns: []string{
			"patient_id", "first_name", "last_name", "date_of_birth",
			"gender", "address", "city", "state", "zip", "phone",
			"insurance_id", "insurance_effective_date",
		},
	},
	{
		Name:       EntityVisits,
		Sheet:      "Visit Data",
		RawFile:    "visit_data.csv",
		StagedFile: "visit_data_cln.csv",
		Columns: []string{
			"visit_id", "patient_id", "provider_id", "visit_date",
			"location", "reason_for_visit", "icd_code", "visit_status",
			"billable_amount", "currency", "follow_up_date",
		},
	},
	{
		Name:       EntityLabResults,
		Sheet:      "Lab Results",
		RawFile:    "lab_results.csv",
		StagedFile: "lab_results_cln.csv",
		Columns: []string{
			"lab_id", "visit_id", "test_name", "test_value",
			"test_units", "reference_range", "date_performed", "date_resulted",
		},
	},
}

// EntityNames returns just the names of all entities, in load order.
func EntityNames() []string {
	names := make([]string, len(AllEntities))
	for i, ent := range AllEntities {
		names[i] = ent.Name
	}
	return names
}

// EntityByName returns the Entity for the given name, or ok=false.
func EntityByName(name string) (Entity, bool) {
	for _, ent := range AllEntities {
		if ent.Name == name {
			return ent, true
		}
	}
	return Entity{}, false
}
