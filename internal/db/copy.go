package db

import (
	"github.com/jackc/pgx/v5"
)

// Row is a load row that yields its values in COPY column order.
type Row interface {
	CopyValues() []any
}

// RowSource implements pgx.CopyFromSource over a slice of load rows.
// The transform stage keeps each entity table whole in memory, so a
// slice is all the COPY writer ever sees.
type RowSource struct {
	rows []Row
	idx  int
}

// NewRowSource creates a CopyFromSource over rows.
func NewRowSource(rows []Row) *RowSource {
	return &RowSource{rows: rows, idx: -1}
}

// Next advances to the next row.
func (s *RowSource) Next() bool {
	s.idx++
	return s.idx < len(s.rows)
}

// Values returns the current row's values in COPY column order.
func (s *RowSource) Values() ([]any, error) {
	return s.rows[s.idx].CopyValues(), nil
}

// Err returns any error encountered during iteration.
func (s *RowSource) Err() error {
	return nil
}

// Compile-time check that RowSource satisfies the interface.
var _ pgx.CopyFromSource = (*RowSource)(nil)
