package figure

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/graphinglib/internal/config"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	ErrDuplicateLabel = errors.New("figure: duplicate element label")
	ErrNothingToDraw  = errors.New("figure: no element can be drawn in the terminal")
)

// Element is anything a figure can draw.
type Element interface {
	Label() string
	Plot(p *plot.Plot, st *config.Style, index int) error
}

// Traceable elements can be resampled for terminal charts.
type Traceable interface {
	Element
	Domain() (lo, hi float64)
	ValuesAt(xs []float64) []float64
}

// Figure is an ordered list of elements plus the axes they share. Width and
// Height are in inches.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64
	Height float64
	Style  *config.Style

	elements []Element
}

func New(title string, st *config.Style) *Figure {
	if st == nil {
		st = config.GetStyle(config.DefaultStyle)
	}
	return &Figure{
		Title:  title,
		Width:  config.DefaultWidth,
		Height: config.DefaultHeight,
		Style:  st,
	}
}

// Add appends elements in drawing order.
func (f *Figure) Add(els ...Element) {
	f.elements = append(f.elements, els...)
}

func (f *Figure) Elements() []Element {
	return append([]Element(nil), f.elements...)
}

// Plot assembles a gonum plot with every element drawn in order.
func (f *Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Legend.Top = true

	if err := f.applyStyle(p); err != nil {
		return nil, err
	}
	for i, el := range f.elements {
		if err := el.Plot(p, f.Style, i); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (f *Figure) applyStyle(p *plot.Plot) error {
	if f.Style.Background != "" {
		bg, err := config.ParseColor(f.Style.Background)
		if err != nil {
			return fmt.Errorf("style %s: background: %w", f.Style.Name, err)
		}
		p.BackgroundColor = bg
	}
	fg := color.Color(color.Black)
	if f.Style.Foreground != "" {
		c, err := config.ParseColor(f.Style.Foreground)
		if err != nil {
			return fmt.Errorf("style %s: foreground: %w", f.Style.Name, err)
		}
		fg = c
	}
	p.Title.TextStyle.Color = fg
	p.Legend.TextStyle.Color = fg
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = fg
		ax.Label.TextStyle.Color = fg
		ax.Tick.LineStyle.Color = fg
		ax.Tick.Label.Color = fg
	}
	if f.Style.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = config.WithAlpha(fg, 0.2)
		grid.Horizontal.Color = config.WithAlpha(fg, 0.2)
		p.Add(grid)
	}
	return nil
}

func (f *Figure) size() (vg.Length, vg.Length) {
	return vg.Length(f.Width) * vg.Inch, vg.Length(f.Height) * vg.Inch
}

// Save renders to path; the extension picks the format (png, svg, pdf, eps,
// jpg, tif).
func (f *Figure) Save(path string) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}
	w, h := f.size()
	return p.Save(w, h, path)
}

// Encode renders in the given format to w.
func (f *Figure) Encode(w io.Writer, format string) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}
	width, height := f.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Terminal draws every traceable element as an asciigraph chart, resampled
// onto a shared grid of width points spanning all their domains. Elements
// with a degenerate domain or no finite value on the grid are left out.
func (f *Figure) Terminal(width, height int, colors ...asciigraph.AnsiColor) (string, error) {
	var traces []Traceable
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, el := range f.elements {
		t, ok := el.(Traceable)
		if !ok {
			continue
		}
		a, b := t.Domain()
		if !(b > a) {
			continue
		}
		traces = append(traces, t)
		lo = math.Min(lo, a)
		hi = math.Max(hi, b)
	}
	if len(traces) == 0 {
		return "", ErrNothingToDraw
	}
	if width < 2 {
		width = 2
	}
	grid := floats.Span(make([]float64, width), lo, hi)

	var data [][]float64
	var legends []string
	for _, t := range traces {
		v := t.ValuesAt(grid)
		if !hasFinite(v) {
			continue
		}
		data = append(data, v)
		legends = append(legends, t.Label())
	}
	if len(data) == 0 {
		return "", ErrNothingToDraw
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s  [%.3g, %.3g]", f.Title, lo, hi)),
		asciigraph.SeriesLegends(legends...),
	}
	if len(colors) > 0 {
		series := make([]asciigraph.AnsiColor, len(data))
		for i := range series {
			series[i] = colors[i%len(colors)]
		}
		opts = append(opts, asciigraph.SeriesColors(series...))
	}
	return asciigraph.PlotMany(data, opts...), nil
}

func hasFinite(v []float64) bool {
	for _, f := range v {
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return true
		}
	}
	return false
}
