package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Figure proportions in inches, scaled by the configured DPI.
const (
	figureWidthIn  = 6
	figureHeightIn = 4
)

// canvasSize returns the pixel dimensions for the configured DPI.
func canvasSize(dpi float64) (int, int) {
	return int(figureWidthIn * dpi), int(figureHeightIn * dpi)
}

// phasePalette colors the furthest-phase bars from least advanced (red)
// to most advanced (green).
var phasePalette = []drawing.Color{
	drawing.ColorFromHex("ED4D36"),
	drawing.ColorFromHex("F29B28"),
	drawing.ColorFromHex("E9D536"),
	drawing.ColorFromHex("D3EF5E"),
	drawing.ColorFromHex("6FE180"),
}

// spectralAnchors are evenly spaced stops of the red-to-blue spectral
// gradient used for the histogram bars.
var spectralAnchors = []drawing.Color{
	drawing.ColorFromHex("9E0142"),
	drawing.ColorFromHex("D53E4F"),
	drawing.ColorFromHex("F46D43"),
	drawing.ColorFromHex("FDAE61"),
	drawing.ColorFromHex("FEE08B"),
	drawing.ColorFromHex("FFFFBF"),
	drawing.ColorFromHex("E6F598"),
	drawing.ColorFromHex("ABDDA4"),
	drawing.ColorFromHex("66C2A5"),
	drawing.ColorFromHex("3288BD"),
	drawing.ColorFromHex("5E4FA2"),
}

// phaseColor returns the palette color for phase i of n, repeating the
// last color when a lab defines more phases than the palette has steps.
func phaseColor(i int) drawing.Color {
	if i >= len(phasePalette) {
		return phasePalette[len(phasePalette)-1]
	}
	return phasePalette[i]
}

// spectralColor interpolates the gradient for bar i of n.
func spectralColor(i, n int) drawing.Color {
	if n <= 1 {
		return spectralAnchors[0]
	}
	t := float64(i) / float64(n-1) * float64(len(spectralAnchors)-1)
	lo := int(t)
	if lo >= len(spectralAnchors)-1 {
		return spectralAnchors[len(spectralAnchors)-1]
	}
	frac := t - float64(lo)
	a, b := spectralAnchors[lo], spectralAnchors[lo+1]
	return drawing.Color{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
