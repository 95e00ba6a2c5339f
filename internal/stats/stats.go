package stats

import (
	"fmt"
	"math"

	"github.com/kaitosekiya/attacklab-stats/internal/scoreboard"
)

// StatsError indicates the entrant set is too small for the requested
// statistics. Sample variance divides by n-1, so fewer than two rows is
// undefined rather than zero.
type StatsError struct {
	Reason string
}

func (e *StatsError) Error() string {
	return "statistics error: " + e.Reason
}

// PhaseSummary holds the per-phase category counts for one phase.
// Passed is full-credit plus penalized solutions.
type PhaseSummary struct {
	Name       string
	Passed     int
	FullCredit int
	Zero       int
	Penalized  int
	TooLate    int
	Invalid    int
}

// Overall is the complete statistics snapshot for one run.
type Overall struct {
	Targets int

	// Phases holds per-phase summaries in declaration order.
	Phases []PhaseSummary

	// NoPhases counts entrants whose total score is exactly zero.
	NoPhases int

	// Joint totals across all phase columns.
	TotalPenalized int
	TotalLate      int
	TotalInvalid   int

	Max      float64
	Min      float64
	Range    float64
	Mean     float64
	Variance float64
	StdDev   float64
}

// Compute aggregates normalized rows into an Overall snapshot. It fails
// with a StatsError when fewer than two rows are present, since the sample
// variance is undefined there.
func Compute(rows []scoreboard.Row, phaseNames []string) (*Overall, error) {
	if len(rows) < 2 {
		return nil, &StatsError{Reason: fmt.Sprintf("need at least 2 targets for sample variance, have %d", len(rows))}
	}

	o := &Overall{
		Targets: len(rows),
		Phases:  make([]PhaseSummary, len(phaseNames)),
	}
	for i, name := range phaseNames {
		o.Phases[i].Name = name
	}

	var sum float64
	o.Min = math.Inf(1)
	o.Max = math.Inf(-1)

	for _, row := range rows {
		for i, cell := range row.Phases {
			switch cell.Category {
			case scoreboard.CategoryFullCredit:
				o.Phases[i].FullCredit++
			case scoreboard.CategoryZero:
				o.Phases[i].Zero++
			case scoreboard.CategoryPenalized:
				o.Phases[i].Penalized++
				o.TotalPenalized++
			case scoreboard.CategoryTooLate:
				o.Phases[i].TooLate++
				o.TotalLate++
			case scoreboard.CategoryInvalid:
				o.Phases[i].Invalid++
				o.TotalInvalid++
			}
		}

		if row.Score == 0 {
			o.NoPhases++
		}
		sum += row.Score
		o.Min = math.Min(o.Min, row.Score)
		o.Max = math.Max(o.Max, row.Score)
	}

	for i := range o.Phases {
		o.Phases[i].Passed = o.Phases[i].FullCredit + o.Phases[i].Penalized
	}

	o.Range = o.Max - o.Min
	o.Mean = sum / float64(len(rows))

	var sq float64
	for _, row := range rows {
		d := row.Score - o.Mean
		sq += d * d
	}
	o.Variance = sq / float64(len(rows)-1)
	o.StdDev = math.Sqrt(o.Variance)

	return o, nil
}

// CompletionDistribution attributes every entrant to the furthest phase
// they passed. Phases are walked last to first over a remaining pool: rows
// passing the current phase are counted there and removed, so each entrant
// is counted exactly once. The input slice is never mutated.
//
// The returned counts are in phase declaration order (index 0 is the first
// phase); they sum to the number of entrants who passed at least one phase.
func CompletionDistribution(rows []scoreboard.Row, phaseCount int) []int {
	remaining := make([]scoreboard.Row, len(rows))
	copy(remaining, rows)

	counts := make([]int, phaseCount)
	for p := phaseCount - 1; p >= 0; p-- {
		keep := remaining[:0]
		for _, row := range remaining {
			if p < len(row.Phases) && row.Phases[p].Passed() {
				counts[p]++
			} else {
				keep = append(keep, row)
			}
		}
		remaining = keep
	}
	return counts
}
