package scoreboard

import (
	"strconv"
	"strings"

	"github.com/kaitosekiya/attacklab-stats/internal/config"
)

// Normalize converts raw rows into normalized rows: every phase cell is
// classified into the closed category vocabulary and the score cell is
// parsed as a number. A non-numeric score cell is a ValidationError.
//
// Classification must happen before any counting: a penalized cell may be
// rendered as numeric text ("29.75") that would otherwise be
// indistinguishable from an ordinary score value.
func Normalize(raw []RawRow, phases []config.Phase) ([]Row, error) {
	rows := make([]Row, 0, len(raw))
	for i, rr := range raw {
		if len(rr.PhaseCells) != len(phases) {
			return nil, &ParseError{Reason: rowError(i, "has %d phase cells, expected %d", len(rr.PhaseCells), len(phases))}
		}

		row := Row{Phases: make([]Cell, len(phases))}
		for j, cell := range rr.PhaseCells {
			row.Phases[j] = normalizeCell(cell, phases[j])
		}

		score, err := strconv.ParseFloat(rr.ScoreCell, 64)
		if err != nil {
			return nil, &ValidationError{Reason: rowError(i, "score %q is not numeric", rr.ScoreCell)}
		}
		row.Score = score

		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeCell classifies one phase cell against the phase's configured
// labels. The penalized comparison is numeric first so that "29.75",
// "29.750" and a float-rendered cell all collapse to Penalized.
func normalizeCell(raw string, phase config.Phase) Cell {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		if pv, perr := phase.PenalizedValue(); perr == nil && v == pv {
			return Cell{Category: CategoryPenalized, Label: "Penalized"}
		}
	}

	// Whole-number scores may be rendered with a trailing ".0".
	canonical := strings.TrimSuffix(raw, ".0")

	switch canonical {
	case phase.Points:
		return Cell{Category: CategoryFullCredit, Label: phase.Points}
	case "0":
		return Cell{Category: CategoryZero, Label: "0"}
	case "Too Late":
		return Cell{Category: CategoryTooLate, Label: "Too Late"}
	case "Invalid":
		return Cell{Category: CategoryInvalid, Label: "Invalid"}
	case phase.PenalizedPoints:
		return Cell{Category: CategoryPenalized, Label: "Penalized"}
	}

	// Configuration mismatch: keep the raw text, count it nowhere.
	return Cell{Category: CategoryUnknown, Label: canonical}
}
