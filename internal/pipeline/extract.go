package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gyeh/emrpipe/internal/table"
	"github.com/gyeh/emrpipe/internal/workbook"
)

// Extract exports every sheet of the workbook to a raw CSV under rawDir,
// one file per sheet, named after the sheet. The workbook must contain
// the four entity sheets; extra sheets are exported too. Returns data
// row counts keyed by raw file name.
func Extract(log zerolog.Logger, workbookPath, rawDir string) (map[string]int64, error) {
	wb, err := workbook.Open(workbookPath)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.SheetNames()
	if err := workbook.ValidateSheets(sheets); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		return nil, fmt.Errorf("create raw dir: %w", err)
	}

	counts := make(map[string]int64, len(sheets))
	for _, sheet := range sheets {
		rows, err := wb.Rows(sheet)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			log.Warn().Str("sheet", sheet).Msg("sheet is empty, skipping")
			continue
		}

		t := table.New(rows[0]...)
		for _, row := range rows[1:] {
			t.AppendRow(row...)
		}

		name := workbook.RawFileName(sheet)
		path := filepath.Join(rawDir, name)
		if err := table.WriteCSV(path, t); err != nil {
			return nil, err
		}
		counts[name] = int64(len(t.Rows))

		log.Info().
			Str("sheet", sheet).
			Str("file", name).
			Int("rows", len(t.Rows)).
			Msg("extracted sheet")
	}
	return counts, nil
}
