package clean

import "github.com/rs/zerolog"

// Kind classifies a recorded normalization event.
type Kind string

const (
	// KindRejected marks a format violation: the cell was degraded to
	// the missing sentinel.
	KindRejected Kind = "rejected"
	// KindRepaired marks a cross-field repair that moved or recovered a
	// value.
	KindRepaired Kind = "repaired"
	// KindMissing marks an absent value in a column that requires one.
	KindMissing Kind = "missing"
)

// Event is one structured warning produced while normalizing a table.
// Row is the zero-based data row index, not counting the header.
type Event struct {
	Entity string
	Kind   Kind
	Row    int
	Column string
	Value  string
	Reason string
}

// Recorder collects the events of a single entity pass and mirrors each
// one to the logger as a warning.
type Recorder struct {
	entity string
	log    zerolog.Logger
	events []Event
}

func NewRecorder(entity string, log zerolog.Logger) *Recorder {
	return &Recorder{entity: entity, log: log}
}

// Rejected records a format violation for a cell.
func (r *Recorder) Rejected(row int, column, value, reason string) {
	r.record(KindRejected, row, column, value, reason)
}

// Repaired records a cross-field repair.
func (r *Recorder) Repaired(row int, column, value, reason string) {
	r.record(KindRepaired, row, column, value, reason)
}

// Missing records an absent value in a column that requires one.
func (r *Recorder) Missing(row int, column, value, reason string) {
	r.record(KindMissing, row, column, value, reason)
}

// Events returns everything recorded so far, in emission order.
func (r *Recorder) Events() []Event {
	return r.events
}

// CountKind returns how many events of kind k were recorded.
func (r *Recorder) CountKind(k Kind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) record(kind Kind, row int, column, value, reason string) {
	r.events = append(r.events, Event{
		Entity: r.entity,
		Kind:   kind,
		Row:    row,
		Column: column,
		Value:  value,
		Reason: reason,
	})
	r.log.Warn().
		Str("entity", r.entity).
		Str("kind", string(kind)).
		Int("row", row).
		Str("column", column).
		Str("value", value).
		Msg(reason)
}
