package render

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// PhaseCompletion renders the furthest-phase bar chart: one bar per phase,
// earliest to latest, bar height is the share of attributed entrants. Each
// bar label carries the phase name, its percentage to one decimal place,
// and the raw count. Returns the encoded PNG bytes.
//
// counts is the precomputed furthest-phase distribution in phase
// declaration order; this renderer does not touch the row set.
func PhaseCompletion(phaseNames []string, counts []int, dpi float64) ([]byte, error) {
	if len(phaseNames) != len(counts) {
		return nil, fmt.Errorf("rendering phase chart: %d phase names for %d counts", len(phaseNames), len(counts))
	}

	var total int
	for _, c := range counts {
		total += c
	}

	bars := make([]chart.Value, len(counts))
	var maxProp float64
	for i, c := range counts {
		var prop float64
		if total > 0 {
			prop = float64(c) / float64(total)
		}
		maxProp = math.Max(maxProp, prop)

		bars[i] = chart.Value{
			Value: prop,
			Label: fmt.Sprintf("%s: %.1f%% (%d)", phaseNames[i], prop*100, c),
			Style: chart.Style{
				FillColor:   phaseColor(i),
				StrokeColor: phaseColor(i),
			},
		}
	}

	yMax := math.Ceil(maxProp*10) / 10
	if yMax == 0 {
		yMax = 0.1
	}
	var ticks []chart.Tick
	for v := 0.0; v <= yMax+1e-9; v += 0.1 {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}

	width, height := canvasSize(dpi)
	barWidth, barSpacing := fitBars(width, len(counts))

	bc := chart.BarChart{
		Title:      "Completed the Attack Project up to:",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      width,
		Height:     height,
		DPI:        dpi,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		XAxis:      chart.Style{},
		YAxis: chart.YAxis{
			Style: chart.Style{},
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: ticks,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering phase chart: %w", err)
	}
	return buf.Bytes(), nil
}
