package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/kaitosekiya/attacklab-stats/internal/config"
)

// Histogram renders the percent-normalized score distribution over fixed
// bins of cfg.BinWidth spanning [0, cfg.MaxScore). Scores at or beyond the
// top edge land in the last bin. Returns the encoded PNG bytes.
func Histogram(scores []float64, cfg config.Histogram, dpi float64) ([]byte, error) {
	binCount := int(math.Ceil(cfg.MaxScore / cfg.BinWidth))
	if binCount < 1 {
		binCount = 1
	}

	counts := make([]int, binCount)
	for _, s := range scores {
		i := int(s / cfg.BinWidth)
		if i < 0 {
			i = 0
		}
		if i >= binCount {
			i = binCount - 1
		}
		counts[i]++
	}

	bars := make([]chart.Value, binCount)
	var maxPct float64
	for i, c := range counts {
		var pct float64
		if len(scores) > 0 {
			pct = 100 * float64(c) / float64(len(scores))
		}
		maxPct = math.Max(maxPct, pct)

		// Label bin edges at multiples of 10 only, to keep the axis legible.
		label := ""
		if edge := float64(i) * cfg.BinWidth; math.Mod(edge, 10) == 0 {
			label = strconv.FormatFloat(edge, 'f', -1, 64)
		}

		bars[i] = chart.Value{
			Value: pct,
			Label: label,
			Style: chart.Style{
				FillColor:   spectralColor(i, binCount),
				StrokeColor: spectralColor(i, binCount),
			},
		}
	}

	yMax := math.Ceil(maxPct/10) * 10
	if yMax == 0 {
		yMax = 10
	}
	var ticks []chart.Tick
	for v := 0.0; v <= yMax; v += 10 {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f%%", v)})
	}

	width, height := canvasSize(dpi)
	barWidth, barSpacing := fitBars(width, binCount)

	bc := chart.BarChart{
		Title:      "Score Distribution of the Attack Project:",
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
		return nil, fmt.Errorf("rendering histogram: %w", err)
	}
	return buf.Bytes(), nil
}

// fitBars sizes bars and spacing so all of them fit the canvas width.
func fitBars(width, n int) (barWidth, barSpacing int) {
	per := (width - 80) / n
	barSpacing = per / 5
	barWidth = per - barSpacing
	if barWidth < 1 {
		barWidth = 1
	}
	if barSpacing < 1 {
		barSpacing = 1
	}
	return barWidth, barSpacing
}
