// Package chartkit composes one or more measurement series into themed,
// possibly multi-panel comparison figures and renders them to PNG files.
package chartkit

// Scale selects the axis transform for one axis of one panel. It is always
// asserted by the caller, never inferred from the data.
type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLog
)

// Series is one named run drawn as a connected line with point markers.
// X and Y are aligned positionally and must have equal length; two series on
// the same panel may have different lengths since each carries its own x
// positions.
type Series struct {
	Label    string
	StyleKey string
	X, Y     []float64
}

// RefLine is a horizontal constant-value annotation drawn across the full
// x extent of a panel.
type RefLine struct {
	Y        float64
	Label    string
	StyleKey string
}

// Panel is one rectangular plot area: one or more series against a shared
// x axis, plus titles, axis labels and per-axis scales.
type Panel struct {
	Title   string
	XLabel  string
	YLabel  string
	XScale  Scale
	YScale  Scale
	Series  []Series
	RefLine *RefLine
}

// Group is one logical output image: an optional suptitle plus 1, 2, 3 or 6
// panels arranged on a grid. WidthIn and HeightIn are figure dimensions in
// inches; pixel dimensions follow from the fixed 150 DPI.
type Group struct {
	Suptitle string
	WidthIn  float64
	HeightIn float64
	Panels   []Panel
}
