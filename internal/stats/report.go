package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Report formats the fixed-structure text report. Phases appear most
// advanced first. When hasUpdated is false the header carries a clearly
// marked placeholder instead of aborting the run.
func (o *Overall) Report(updatedAt time.Time, hasUpdated bool) string {
	date := "unknown date"
	clock := "unknown time"
	if hasUpdated {
		date = updatedAt.Format("Monday, January 02")
		clock = updatedAt.Format("03:04 PM")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The Attack Project Stats on %s at %s:\n\n", date, clock)
	fmt.Fprintf(&b, "Total number of targets: %d\n", o.Targets)

	for i := len(o.Phases) - 1; i >= 0; i-- {
		p := o.Phases[i]
		fmt.Fprintf(&b, "● %s - %d targets\n", p.Name, p.Passed)
		fmt.Fprintf(&b, "  ○ penalized - %d\n", p.Penalized)
		fmt.Fprintf(&b, "  ○ too late - %d\n", p.TooLate)
		fmt.Fprintf(&b, "  ○ invalid - %d\n", p.Invalid)
	}
	fmt.Fprintf(&b, "● No phases - %d targets\n\n", o.NoPhases)

	fmt.Fprintf(&b, "Total number of penalized phases: %d\n", o.TotalPenalized)
	fmt.Fprintf(&b, "Total number of late phases: %d\n", o.TotalLate)
	fmt.Fprintf(&b, "Total number of invalid phases: %d\n\n", o.TotalInvalid)

	fmt.Fprintf(&b, "Highest score: %s\n", formatScore(o.Max))
	fmt.Fprintf(&b, "Lowest score: %s\n", formatScore(o.Min))
	fmt.Fprintf(&b, "Range: %s\n", formatScore(o.Range))
	fmt.Fprintf(&b, "Mean: %.4f\n", o.Mean)
	fmt.Fprintf(&b, "Variance: %.4f\n", o.Variance)
	fmt.Fprintf(&b, "Standard deviation: %.4f\n", o.StdDev)

	return b.String()
}

// formatScore renders a score the way the scoreboard does: shortest
// decimal form, but whole numbers keep one trailing zero (100.0, not 100).
func formatScore(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
