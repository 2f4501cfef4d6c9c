package curves

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/graphinglib/internal/config"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

func dashes(ls LineStyle) []vg.Length {
	switch ls {
	case Dashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case Dotted:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DashDot:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Plot draws the curve onto p. index selects the style's cycle color when no
// color is set.
func (c *Curve) Plot(p *plot.Plot, st *config.Style, index int) error {
	col, err := st.Color(c.Color, index)
	if err != nil {
		return fmt.Errorf("curve %q: %w", c.label, err)
	}
	line, err := plotter.NewLine(xys(c.x, c.y))
	if err != nil {
		return fmt.Errorf("curve %q: %w", c.label, err)
	}
	line.LineStyle.Color = col
	line.LineStyle.Width = vg.Points(orDefault(c.LineWidth, st.LineWidth))
	line.LineStyle.Dashes = dashes(c.LineStyle)
	p.Add(line)
	if err := plotErrorbars(p, &c.samples, col); err != nil {
		return fmt.Errorf("curve %q: %w", c.label, err)
	}
	if c.label != "" {
		p.Legend.Add(c.label, line)
	}
	return nil
}

type markerShapes struct {
	face, edge draw.GlyphDrawer
}

// polygonGlyph draws a polygon whose vertices are given in units of the
// glyph radius around the point.
type polygonGlyph struct {
	vertices [][2]float64
	fill     bool
}

var (
	downTriangle = [][2]float64{{0, -1}, {-math.Sqrt(3) / 2, 0.5}, {math.Sqrt(3) / 2, 0.5}}
	diamond      = [][2]float64{{0, 1}, {0.7, 0}, {0, -1}, {-0.7, 0}}
)

func (g polygonGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	for i, v := range g.vertices {
		q := vg.Point{X: pt.X + sty.Radius*vg.Length(v[0]), Y: pt.Y + sty.Radius*vg.Length(v[1])}
		if i == 0 {
			p.Move(q)
			continue
		}
		p.Line(q)
	}
	p.Close()
	if g.fill {
		c.SetColor(sty.Color)
		c.Fill(p)
		return
	}
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	c.Stroke(p)
}

var markers = map[string]markerShapes{
	"o": {draw.CircleGlyph{}, draw.RingGlyph{}},
	"s": {draw.SquareGlyph{}, draw.BoxGlyph{}},
	"^": {draw.PyramidGlyph{}, draw.TriangleGlyph{}},
	"v": {polygonGlyph{downTriangle, true}, polygonGlyph{downTriangle, false}},
	"d": {polygonGlyph{diamond, true}, polygonGlyph{diamond, false}},
	"+": {nil, draw.PlusGlyph{}},
	"x": {nil, draw.CrossGlyph{}},
}

// Plot draws the scatter as filled markers outlined with the edge color.
func (s *Scatter) Plot(p *plot.Plot, st *config.Style, index int) error {
	face, err := st.Color(s.FaceColor, index)
	if err != nil {
		return fmt.Errorf("scatter %q: %w", s.label, err)
	}
	edge, err := st.Edge(s.EdgeColor, index)
	if err != nil {
		return fmt.Errorf("scatter %q: %w", s.label, err)
	}
	style := s.MarkerStyle
	if style == "" || style == "default" {
		style = st.MarkerStyle
	}
	shape, ok := markers[style]
	if !ok {
		return fmt.Errorf("scatter %q: unknown marker style %q", s.label, style)
	}
	radius := vg.Points(orDefault(s.MarkerSize, st.MarkerSize))

	var thumbs []plot.Thumbnailer
	if shape.face != nil {
		filled, err := plotter.NewScatter(xys(s.x, s.y))
		if err != nil {
			return fmt.Errorf("scatter %q: %w", s.label, err)
		}
		filled.GlyphStyle = draw.GlyphStyle{Color: face, Radius: radius, Shape: shape.face}
		p.Add(filled)
		thumbs = append(thumbs, filled)
	} else {
		edge = face
	}
	outline, err := plotter.NewScatter(xys(s.x, s.y))
	if err != nil {
		return fmt.Errorf("scatter %q: %w", s.label, err)
	}
	outline.GlyphStyle = draw.GlyphStyle{Color: edge, Radius: radius, Shape: shape.edge}
	p.Add(outline)
	thumbs = append(thumbs, outline)

	if err := plotErrorbars(p, &s.samples, face); err != nil {
		return fmt.Errorf("scatter %q: %w", s.label, err)
	}
	if s.label != "" {
		p.Legend.Add(s.label, thumbs...)
	}
	return nil
}

type xErrPoints struct {
	plotter.XYs
	plotter.XErrors
}

type yErrPoints struct {
	plotter.XYs
	plotter.YErrors
}

func plotErrorbars(p *plot.Plot, s *samples, col color.Color) error {
	pts := xys(s.x, s.y)
	if len(s.errs.X) > 0 {
		errs := make(plotter.XErrors, len(s.errs.X))
		for i, e := range s.errs.X {
			errs[i].Low, errs[i].High = -e, e
		}
		bars, err := plotter.NewXErrorBars(xErrPoints{pts, errs})
		if err != nil {
			return err
		}
		bars.LineStyle.Color = col
		p.Add(bars)
	}
	if len(s.errs.Y) > 0 {
		errs := make(plotter.YErrors, len(s.errs.Y))
		for i, e := range s.errs.Y {
			errs[i].Low, errs[i].High = -e, e
		}
		bars, err := plotter.NewYErrorBars(yErrPoints{pts, errs})
		if err != nil {
			return err
		}
		bars.LineStyle.Color = col
		p.Add(bars)
	}
	return nil
}

// Plot draws the binned heights. "bar" draws outlined bars, "step" only the
// outline and "stepfilled" a filled outline. A normal overlay with mean and
// one-sigma markers is added when ShowPDF is "normal" or "gaussian".
func (h *Histogram) Plot(p *plot.Plot, st *config.Style, index int) error {
	face, err := st.Color(h.FaceColor, index)
	if err != nil {
		return fmt.Errorf("histogram %q: %w", h.label, err)
	}
	edge, err := st.Edge(h.EdgeColor, index)
	if err != nil {
		return fmt.Errorf("histogram %q: %w", h.label, err)
	}
	face = config.WithAlpha(face, orDefault(h.Alpha, st.HistAlpha))
	width := vg.Points(orDefault(h.LineWidth, st.LineWidth))

	histType := h.HistType
	if histType == "" || histType == "default" {
		histType = st.HistType
	}

	bins := make([]plotter.HistogramBin, h.bins)
	for i := range bins {
		bins[i] = plotter.HistogramBin{Min: h.edges[i], Max: h.edges[i+1], Weight: h.heights[i]}
	}
	bars := &plotter.Histogram{Bins: bins, Width: h.width, LineStyle: plotter.DefaultLineStyle}
	bars.LineStyle.Color = edge
	bars.LineStyle.Width = width

	switch histType {
	case "bar":
		bars.FillColor = face
		p.Add(bars)
	case "step", "stepfilled":
		if histType == "stepfilled" {
			bars.FillColor = face
		}
		bars.LineStyle.Width = 0
		p.Add(bars)
		outline, err := plotter.NewLine(h.stepOutline())
		if err != nil {
			return fmt.Errorf("histogram %q: %w", h.label, err)
		}
		outline.LineStyle.Color = edge
		outline.LineStyle.Width = width
		p.Add(outline)
	default:
		return fmt.Errorf("histogram %q: unknown hist type %q", h.label, histType)
	}
	if h.label != "" {
		p.Legend.Add(h.label, bars)
	}

	switch h.ShowPDF {
	case "normal", "gaussian":
		return h.plotPDF(p, edge, width)
	case "", "default", "none":
		return nil
	}
	return fmt.Errorf("histogram %q: unknown pdf %q", h.label, h.ShowPDF)
}

func (h *Histogram) stepOutline() plotter.XYs {
	pts := make(plotter.XYs, 0, 2*h.bins+2)
	pts = append(pts, plotter.XY{X: h.edges[0], Y: 0})
	for i, height := range h.heights {
		pts = append(pts, plotter.XY{X: h.edges[i], Y: height}, plotter.XY{X: h.edges[i+1], Y: height})
	}
	return append(pts, plotter.XY{X: h.edges[h.bins], Y: 0})
}

func (h *Histogram) plotPDF(p *plot.Plot, col color.Color, width vg.Length) error {
	pdf, err := h.PDFCurve()
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(xys(pdf.x, pdf.y))
	if err != nil {
		return err
	}
	line.LineStyle.Color = col
	line.LineStyle.Width = width
	p.Add(line)

	marks := []struct {
		x   float64
		col color.Color
	}{
		{h.mean - h.stdDev, color.Black},
		{h.mean, color.RGBA{R: 255, A: 255}},
		{h.mean + h.stdDev, color.Black},
	}
	for _, m := range marks {
		v, err := plotter.NewLine(plotter.XYs{{X: m.x, Y: 0}, {X: m.x, Y: h.NormalPDF(m.x)}})
		if err != nil {
			return err
		}
		v.LineStyle.Color = m.col
		v.LineStyle.Width = width
		v.LineStyle.Dashes = dashes(Dashed)
		p.Add(v)
	}
	return nil
}
