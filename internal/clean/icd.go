package clean

import (
	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
)

// ICDReference normalizes the ICD code reference table in place.
func ICDReference(t *table.Table, rec *Recorder) error {
	return applyRules(t, []FieldRule{
		{Column: "icd_code", Validate: normalize.ICDCode},
		{Column: "description"},
		{Column: "effective_date", Validate: normalize.Date},
		{Column: "status", Validate: normalize.CodeStatus},
	}, rec)
}
