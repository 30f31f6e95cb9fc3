package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadRawCSV loads one raw per-sheet export, repairing the quoting damage
// the upstream export is known to produce: whole lines wrapped in an extra
// pair of double quotes, and internal quotes doubled twice over. Blank
// lines are dropped and a leading UTF-8 BOM is skipped.
func ReadRawCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening raw csv: %w", err)
	}
	defer f.Close()

	cleaned, err := scrub(f)
	if err != nil {
		return nil, fmt.Errorf("scrubbing %s: %w", path, err)
	}
	r := csv.NewReader(strings.NewReader(cleaned))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	t, err := parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV loads a well-formed CSV file, such as a staged output written by
// WriteCSV. No scrubbing is applied.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	t, err := parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// WriteCSV writes t to path: header row first, missing cells as empty
// fields, no synthetic row index.
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// scrub undoes line-level quote wrapping before the CSV parser sees the
// bytes. Each line is trimmed; a line wrapped entirely in double quotes
// loses the outer pair; doubled quotes collapse to single ones.
func scrub(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var b strings.Builder
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "﻿")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) >= 2 && strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`) {
			line = line[1 : len(line)-1]
		}
		line = strings.ReplaceAll(line, `""`, `"`)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func parse(r *csv.Reader) (*Table, error) {
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no header row")
	}
	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	t := &Table{Columns: header}
	for n, rec := range records[1:] {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", n, len(rec), len(header))
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
