package workbook

import (
	"fmt"
	"strings"

	"github.com/gyeh/emrpipe/internal/model"
)

// ValidateSheets checks that the workbook contains every sheet the
// pipeline's entities are extracted from.
func ValidateSheets(names []string) error {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[strings.TrimSpace(n)] = true
	}

	var missing []string
	for _, ent := range model.AllEntities {
		if !have[ent.Sheet] {
			missing = append(missing, ent.Sheet)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("workbook missing required sheets: %s", strings.Join(missing, ", "))
	}
	return nil
}

// RawFileName converts a sheet name to its raw CSV file name: trimmed,
// lowercased, spaces as underscores.
func RawFileName(sheet string) string {
	name := strings.TrimSpace(sheet)
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name + ".csv"
}
