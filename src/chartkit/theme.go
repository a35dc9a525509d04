package chartkit

import "github.com/wcharczuk/go-chart/v2/drawing"

// Palette tuned for documentation embeds: panels are filled with translucent
// white so they stay legible over both light and dark page backgrounds.
var (
	colorFigureFill = drawing.Color{R: 255, G: 255, B: 255, A: 217} // white @ 0.85
	colorLegendFill = drawing.Color{R: 255, G: 255, B: 255, A: 242} // white @ 0.95
	colorLabel      = drawing.ColorFromHex("24292e")                // labels, ticks, titles
	colorSpine      = drawing.ColorFromHex("586069")                // spines
	colorGrid       = drawing.Color{R: 0x58, G: 0x60, B: 0x69, A: 64} // spine @ 0.25

	colorBefore = drawing.ColorFromHex("d62728")
	colorAfter  = drawing.ColorFromHex("2ca02c")
	colorAccent = drawing.ColorFromHex("0366d6")
)

// SeriesStyle is the fixed visual identity of one logical run.
type SeriesStyle struct {
	Color       drawing.Color
	StrokeWidth float64
	DotWidth    float64
	DashArray   []float64 // nil for a solid line
}

// Style keys. Styles are looked up by key at draw time, never cycled by call
// order, so the same run keeps the same identity on every panel of a
// document.
const (
	StyleBefore = "before"
	StyleAfter  = "after"
	StyleAccent = "accent"
	StyleTarget = "target"
)

var seriesStyles = map[string]SeriesStyle{
	StyleBefore: {Color: colorBefore, StrokeWidth: 2, DotWidth: 5},
	StyleAfter:  {Color: colorAfter, StrokeWidth: 2, DotWidth: 5},
	StyleAccent: {Color: colorAccent, StrokeWidth: 2, DotWidth: 6},
	StyleTarget: {Color: colorAccent, StrokeWidth: 1, DashArray: []float64{5, 5}},
}

// LookupStyle returns the style registered for key. Rendering fails on
// unknown keys rather than inventing a style.
func LookupStyle(key string) (SeriesStyle, bool) {
	s, ok := seriesStyles[key]
	return s, ok
}
