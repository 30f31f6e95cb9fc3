package model

import "time"

// RunSummary captures metrics from a single pipeline run. Per-entity
// counts are keyed by entity name.
type RunSummary struct {
	WorkbookPath      string
	StagedSHA256      string
	RunID             string
	RowsExtracted     map[string]int64
	RowsStaged        map[string]int64
	CellsRejected     map[string]int64
	CellsRepaired     map[string]int64
	KeysMissing       map[string]int64
	RowsLoaded        map[string]int64
	LoadSkipped       bool
	DurationExtract   time.Duration
	DurationTransform time.Duration
	DurationLoad      time.Duration
	DurationTotal     time.Duration
}

// NewRunSummary returns a summary with all count maps allocated.
func NewRunSummary() *RunSummary {
	return &RunSummary{
		RowsExtracted: make(map[string]int64),
		RowsStaged:    make(map[string]int64),
		CellsRejected: make(map[string]int64),
		CellsRepaired: make(map[string]int64),
		KeysMissing:   make(map[string]int64),
		RowsLoaded:    make(map[string]int64),
	}
}
