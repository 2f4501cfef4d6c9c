package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/graphinglib/internal/curves"
	"github.com/san-kum/graphinglib/internal/viz"
	"gonum.org/v1/gonum/floats"
)

var ErrNoCurves = errors.New("tui: nothing to explore")

// steps is the number of cursor positions across a curve's domain.
const steps = 201

// Explorer is a bubbletea model that walks a cursor along sampled curves.
type Explorer struct {
	title    string
	curves   []*curves.Curve
	selected int
	cursor   int

	themeIdx int
	theme    viz.Theme
	styles   viz.Styles
	help     bool

	width  int
	height int
}

// NewExplorer returns an Explorer that walks a cursor along each curve.
func NewExplorer(title string, cs []*curves.Curve, theme string) (*Explorer, error) {
	if len(cs) == 0 {
		return nil, ErrNoCurves
	}
	m := &Explorer{
		title:  title,
		curves: cs,
		cursor: steps / 2,
		width:  80,
		height: 24,
	}
	m.setTheme(viz.GetTheme(theme))
	return m, nil
}

func (m *Explorer) setTheme(t viz.Theme) {
	m.theme = t
	m.styles = t.Styles()
	for i, th := range viz.Themes {
		if th.Name == t.Name {
			m.themeIdx = i
		}
	}
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "pgdown", "L":
		m.move(10)
	case "pgup", "H":
		m.move(-10)
	case "home", "0":
		m.cursor = 0
	case "end", "$":
		m.cursor = steps - 1
	case "tab", "down", "j":
		m.selected = (m.selected + 1) % len(m.curves)
	case "shift+tab", "up", "k":
		m.selected = (m.selected + len(m.curves) - 1) % len(m.curves)
	case "t":
		m.setTheme(viz.Themes[(m.themeIdx+1)%len(viz.Themes)])
	case "?":
		m.help = !m.help
	}
	return m, nil
}

func (m *Explorer) move(d int) {
	m.cursor = max(0, min(steps-1, m.cursor+d))
}

func (m Explorer) current() *curves.Curve { return m.curves[m.selected] }

// x is the abscissa under the cursor on the selected curve.
func (m Explorer) x() float64 {
	lo, hi := m.current().Domain()
	return lo + (hi-lo)*float64(m.cursor)/float64(steps-1)
}

// readout holds the quantities shown for the cursor position.
type readout struct {
	point  curves.Point
	slope  float64
	area   float64
	length float64
}

func (m Explorer) readout() (readout, error) {
	c := m.current()
	x := m.x()
	lo, _ := c.Domain()

	var r readout
	var err error
	if r.point, err = c.PointAtX(x); err != nil {
		return r, err
	}
	if r.slope, err = c.SlopeAt(x); err != nil {
		return r, err
	}
	if r.area, err = c.AreaBetween(lo, x); err != nil {
		return r, err
	}
	if r.length, err = c.ArcLengthBetween(lo, x); err != nil {
		return r, err
	}
	return r, nil
}

func (m Explorer) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.GradientText(m.title, m.theme.Primary, m.theme.Accent) + "\n")
	c := m.current()
	b.WriteString("  " + m.styles.Label.Render(fmt.Sprintf("curve %d/%d ", m.selected+1, len(m.curves))) +
		m.styles.Value.Render(c.Label()) + "\n\n")

	b.WriteString(m.chart() + "\n\n")

	r, err := m.readout()
	if err != nil {
		b.WriteString("  " + m.styles.Error.Render(err.Error()) + "\n")
	} else {
		rows := []string{
			m.row("x", r.point.X),
			m.row("y", r.point.Y),
			m.row("slope", r.slope),
			m.row("area", r.area),
			m.row("arc length", r.length),
		}
		b.WriteString(m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n")
	}

	if m.help {
		b.WriteString(m.styles.KeyHint.Render("  ←→ move  H/L jump  home/end edges  tab next curve  t theme  q quit") + "\n")
	} else {
		b.WriteString(m.styles.KeyHint.Render("  ? help  q quit") + "\n")
	}
	return b.String()
}

func (m Explorer) row(label string, v float64) string {
	return m.styles.Label.Render(fmt.Sprintf("%-11s", label)) + m.styles.Value.Render(fmt.Sprintf("% .6g", v))
}

// chart plots the selected curve and its tangent at the cursor, clipped to the
// curve's y range.
func (m Explorer) chart() string {
	c := m.current()
	w := max(20, m.width-12)
	h := max(5, m.height-16)

	lo, hi := c.Domain()
	if !(hi > lo) {
		return "  " + m.styles.Error.Render("cannot chart a curve with a degenerate x range")
	}
	grid := floats.Span(make([]float64, w), lo, hi)
	values := c.ValuesAt(grid)
	if !finite(values) {
		return "  " + m.styles.Error.Render("cannot chart a curve without increasing x samples")
	}

	series := [][]float64{values}
	legends := []string{c.Label()}
	if tangent, err := c.TangentCurve(m.x()); err == nil {
		ymin, ymax := c.Min(), c.Max()
		t := tangent.ValuesAt(grid)
		for i, v := range t {
			if v < ymin || v > ymax {
				t[i] = math.NaN()
			}
		}
		if finite(t) {
			series = append(series, t)
			legends = append(legends, "tangent")
		}
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(h),
		asciigraph.Width(w),
		asciigraph.Offset(4),
		asciigraph.SeriesColors(m.theme.Series[0], m.theme.Series[1%len(m.theme.Series)]),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("x = %.4g", m.x())),
	)
}

func finite(v []float64) bool {
	for _, f := range v {
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return true
		}
	}
	return false
}

// Run starts the explorer full screen.
func Run(title string, cs []*curves.Curve, theme string) error {
	m, err := NewExplorer(title, cs, theme)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
