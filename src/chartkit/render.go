package chartkit

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/scalebench/benchviz/src/logger"
)

// DPI is the fixed raster density for every emitted figure.
const DPI = 150

// suptitleBandIn is the vertical space (inches) reserved above the panel
// grid when a group carries a suptitle, so panel titles never collide with
// it.
const suptitleBandIn = 0.45

// Emit renders the group and writes exactly one PNG at path, creating the
// output directory if missing. The figure is composed fully in memory before
// anything touches the filesystem, so a failing panel leaves no partial
// file. One console line reports each image written.
func Emit(g Group, path string) error {
	img, err := renderGroup(g)
	if err != nil {
		return fmt.Errorf("compose %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Infof("Saved %s", path)
	return nil
}

// suptitleBandPx converts the band height to pixels at the fixed DPI.
func suptitleBandPx() int {
	return int(math.Round(suptitleBandIn * float64(DPI)))
}

// gridShape maps a panel count onto the supported grid layouts.
func gridShape(n int) (rows, cols int, err error) {
	switch n {
	case 1:
		return 1, 1, nil
	case 2:
		return 1, 2, nil
	case 3:
		return 1, 3, nil
	case 6:
		return 2, 3, nil
	}
	return 0, 0, fmt.Errorf("unsupported panel count %d (want 1, 2, 3 or 6)", n)
}

func renderGroup(g Group) (image.Image, error) {
	rows, cols, err := gridShape(len(g.Panels))
	if err != nil {
		return nil, err
	}
	w := int(g.WidthIn * DPI)
	h := int(g.HeightIn * DPI)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("figure size %gx%g inches is not positive", g.WidthIn, g.HeightIn)
	}
	band := 0
	if g.Suptitle != "" {
		band = suptitleBandPx()
	}
	cellW := w / cols
	cellH := (h - band) / rows

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 217})
	draw.Draw(out, out.Bounds(), fill, image.Point{}, draw.Src)

	for i, p := range g.Panels {
		img, err := renderPanel(p, cellW, cellH)
		if err != nil {
			return nil, err
		}
		x := (i % cols) * cellW
		y := band + (i/cols)*cellH
		draw.Draw(out, image.Rect(x, y, x+cellW, y+cellH), img, img.Bounds().Min, draw.Src)
	}
	if band > 0 {
		drawSuptitle(out, g.Suptitle, band)
	}
	return out, nil
}

// renderPanel draws one panel as an independent chart sized w x h pixels.
func renderPanel(p Panel, w, h int) (image.Image, error) {
	if len(p.Series) == 0 {
		return nil, fmt.Errorf("panel %q has no series", p.Title)
	}
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	series := make([]chart.Series, 0, len(p.Series)+1)
	for _, s := range p.Series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("panel %q series %q: x/y length mismatch (%d vs %d)", p.Title, s.Label, len(s.X), len(s.Y))
		}
		if len(s.X) == 0 {
			return nil, fmt.Errorf("panel %q series %q: no data points", p.Title, s.Label)
		}
		st, ok := LookupStyle(s.StyleKey)
		if !ok {
			return nil, fmt.Errorf("panel %q series %q: unknown style key %q", p.Title, s.Label, s.StyleKey)
		}
		for _, v := range s.X {
			minX = math.Min(minX, v)
			maxX = math.Max(maxX, v)
		}
		for _, v := range s.Y {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: s.X,
			YValues: s.Y,
			Style:   seriesChartStyle(st),
		})
	}
	if rl := p.RefLine; rl != nil {
		st, ok := LookupStyle(rl.StyleKey)
		if !ok {
			return nil, fmt.Errorf("panel %q ref line %q: unknown style key %q", p.Title, rl.Label, rl.StyleKey)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    rl.Label,
			XValues: []float64{minX, maxX},
			YValues: []float64{rl.Y, rl.Y},
			Style:   seriesChartStyle(st),
		})
		minY = math.Min(minY, rl.Y)
		maxY = math.Max(maxY, rl.Y)
	}

	ch := chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontColor: colorLabel, FontSize: 12},
		Width:      w,
		Height:     h,
		DPI:        DPI,
		Background: chart.Style{
			FillColor: colorFigureFill,
			Padding:   chart.Box{Top: 18, Left: 18, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: colorFigureFill},
		XAxis:  makeAxisX(p, minX, maxX),
		YAxis:  makeAxisY(p, minY, maxY),
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{
		FillColor:   colorLegendFill,
		FontColor:   colorLabel,
		StrokeColor: colorSpine,
		FontSize:    9,
	})}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render panel %q: %w", p.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel %q: %w", p.Title, err)
	}
	return img, nil
}

func seriesChartStyle(st SeriesStyle) chart.Style {
	s := chart.Style{
		StrokeWidth:     st.StrokeWidth,
		StrokeColor:     st.Color,
		StrokeDashArray: st.DashArray,
	}
	// Dot markers only for styles that ask for them; a ref line stays a bare
	// dashed stroke.
	if st.DotWidth > 0 {
		s.DotWidth = st.DotWidth
		s.DotColor = st.Color
	}
	return s
}

func makeAxisX(p Panel, minX, maxX float64) chart.XAxis {
	ax := chart.XAxis{
		Name:           p.XLabel,
		NameStyle:      chart.Style{FontColor: colorLabel, FontSize: 10},
		Style:          chart.Style{FontColor: colorLabel, FontSize: 10, StrokeColor: colorSpine, StrokeWidth: 0.8},
		ValueFormatter: formatCount,
		GridMajorStyle: chart.Style{StrokeColor: colorGrid, StrokeWidth: 0.5},
	}
	if p.XScale == ScaleLog {
		lo, hi := logBounds(minX, maxX)
		ax.Range = &chart.LogarithmicRange{Min: lo, Max: hi}
		ax.Ticks = logTicks(lo, hi)
	} else {
		nMin, nMax := niceAxisBounds(minX, maxX)
		ax.Range = &chart.ContinuousRange{Min: nMin, Max: nMax}
		ax.Ticks = niceTicks(nMin, nMax, 6)
	}
	return ax
}

func makeAxisY(p Panel, minY, maxY float64) chart.YAxis {
	ax := chart.YAxis{
		Name:           p.YLabel,
		NameStyle:      chart.Style{FontColor: colorLabel, FontSize: 10},
		Style:          chart.Style{FontColor: colorLabel, FontSize: 10, StrokeColor: colorSpine, StrokeWidth: 0.8},
		ValueFormatter: formatCount,
		GridMajorStyle: chart.Style{StrokeColor: colorGrid, StrokeWidth: 0.5},
	}
	if p.YScale == ScaleLog {
		lo, hi := logBounds(minY, maxY)
		ax.Range = &chart.LogarithmicRange{Min: lo, Max: hi}
		ax.Ticks = logTicks(lo, hi)
	} else {
		// Linear panels get a zero baseline with a nice rounded max.
		if maxY <= 0 {
			maxY = 1
		}
		_, nMax := niceAxisBounds(0, maxY)
		ax.Range = &chart.ContinuousRange{Min: 0, Max: nMax}
		ax.Ticks = niceTicks(0, nMax, 6)
	}
	return ax
}

// drawSuptitle centers the figure title in the reserved top band. basicfont
// only ships a 13px face, so the text is rendered small and scaled up 2x.
func drawSuptitle(dst *image.RGBA, text string, band int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Src:  image.NewUniform(color.NRGBA{R: 0x24, G: 0x29, B: 0x2e, A: 0xff}),
		Face: face,
	}
	tw := d.MeasureString(text).Ceil()
	th := face.Metrics().Ascent.Ceil() + face.Metrics().Descent.Ceil()
	small := image.NewRGBA(image.Rect(0, 0, tw+2, th+2))
	d.Dst = small
	d.Dot = fixed.Point26_6{X: fixed.I(1), Y: fixed.I(1 + face.Metrics().Ascent.Ceil())}
	d.DrawString(text)

	const scale = 2
	sw, sh := (tw+2)*scale, (th+2)*scale
	x := (dst.Bounds().Dx() - sw) / 2
	y := (band - sh) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	xdraw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+sw, y+sh), small, small.Bounds(), xdraw.Over, nil)
}
