// Package workbook reads xlsx workbooks for extraction into raw CSVs.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Reader wraps an open xlsx workbook.
type Reader struct {
	file *excelize.File
}

// Open opens a workbook file.
func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Reader{file: f}, nil
}

// SheetNames returns the workbook's sheet names in workbook order.
func (r *Reader) SheetNames() []string {
	return r.file.GetSheetList()
}

// Rows returns all cell rows of the named sheet as strings. Rows come
// back ragged: trailing empty cells are absent, so callers pad to the
// header width.
func (r *Reader) Rows(sheet string) ([][]string, error) {
	rows, err := r.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// Close releases the workbook.
func (r *Reader) Close() error {
	return r.file.Close()
}
