package chartkit

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders an axis value with thousands separators for large
// counts and a sensible number of decimals for small ones.
func formatCount(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	av := math.Abs(f)
	switch {
	case av >= 100 || f == math.Trunc(f):
		return countPrinter.Sprintf("%.0f", f)
	case av >= 10:
		return countPrinter.Sprintf("%.1f", f)
	default:
		return countPrinter.Sprintf("%.2f", f)
	}
}

// niceAxisBounds expands [min, max] to rounded bounds based on the span's
// order of magnitude.
func niceAxisBounds(min, max float64) (float64, float64) {
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if math.IsInf(mag, 0) || mag <= 0 {
		return min, max
	}
	return math.Floor(min/mag) * mag, math.Ceil(max/mag) * mag
}

// niceTicks generates up to n desired tick marks between [min, max] using
// nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatCount(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// logBounds returns powers of ten enclosing [min, max], always spanning at
// least one decade so the axis range is never degenerate.
func logBounds(min, max float64) (float64, float64) {
	if min <= 0 {
		min = 1
	}
	if max < min {
		max = min
	}
	lo := math.Floor(math.Log10(min))
	hi := math.Ceil(math.Log10(max))
	if hi <= lo {
		hi = lo + 1
	}
	return math.Pow(10, lo), math.Pow(10, hi)
}

// logTicks returns one tick per power of ten across [lo, hi], where lo and
// hi are the bounds produced by logBounds.
func logTicks(lo, hi float64) []chart.Tick {
	ticks := []chart.Tick{}
	for v := lo; v <= hi*1.0000001; v *= 10 {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatCount(v)})
	}
	return ticks
}
