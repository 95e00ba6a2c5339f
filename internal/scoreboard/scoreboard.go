package scoreboard

import "fmt"

// ValidationError indicates the fetched document is not the expected
// scoreboard page, or a score cell could not be parsed as a number.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Reason
}

// ParseError indicates the score table is missing, ambiguous, or shaped
// differently than the configured columns expect.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Reason
}

// Category classifies one phase cell. The zero value means the cell text
// matched none of the configured labels: such cells keep their raw text and
// are counted in no bucket, which is what happens when the phase point
// configuration does not match the lab instance.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryFullCredit
	CategoryZero
	CategoryPenalized
	CategoryTooLate
	CategoryInvalid
)

// String returns the canonical label for the category, used in reports.
func (c Category) String() string {
	switch c {
	case CategoryFullCredit:
		return "Full Credit"
	case CategoryZero:
		return "0"
	case CategoryPenalized:
		return "Penalized"
	case CategoryTooLate:
		return "Too Late"
	case CategoryInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Cell is one normalized phase cell: its category plus the canonical text
// form (the full-credit numeric label for passed cells, the fixed marker
// text otherwise).
type Cell struct {
	Category Category
	Label    string
}

// Passed reports whether the cell counts as completing its phase, with or
// without penalty.
func (c Cell) Passed() bool {
	return c.Category == CategoryFullCredit || c.Category == CategoryPenalized
}

// RawRow is one extracted table row before normalization: the phase cells
// in configured phase order plus the score cell, all as trimmed text.
type RawRow struct {
	PhaseCells []string
	ScoreCell  string
}

// Row is one entrant's normalized record. Score is taken from the table's
// score column as-is; it is never recomputed from the phase cells.
type Row struct {
	Phases []Cell
	Score  float64
}

// rowError formats a per-row failure with its 1-based table position.
func rowError(idx int, format string, args ...interface{}) string {
	return fmt.Sprintf("row %d: %s", idx+1, fmt.Sprintf(format, args...))
}
