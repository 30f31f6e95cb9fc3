// Package table holds the in-memory tabular form shared by the transform
// stages: an ordered column header plus rows of string cells. Cleaned
// cells contain either a canonical value or Missing, never a raw
// unvalidated string.
package table

import (
	"fmt"
	"strings"
)

// Missing is the canonical empty-cell sentinel used across all entities.
const Missing = ""

// Table is one entity's worth of rows. Rows are mutated in place by the
// normalization passes; every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty table with the given header.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// AppendRow adds a row, padding or truncating to the header width.
func (t *Table) AppendRow(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// ColumnIndex returns the position of name in the header.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Require verifies that every named column exists in the header. A raw
// file missing an expected column is unrecoverable for its entity.
func (t *Table) Require(names ...string) error {
	var absent []string
	for _, name := range names {
		if _, ok := t.ColumnIndex(name); !ok {
			absent = append(absent, name)
		}
	}
	if len(absent) > 0 {
		return fmt.Errorf("missing expected columns: %s", strings.Join(absent, ", "))
	}
	return nil
}
