package curves

import (
	"fmt"
	"strings"
)

// DefaultPoints is the number of samples taken when building from a function.
const DefaultPoints = 500

// LineStyle selects the stroke pattern of a curve.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
	DashDot
)

var lineStyleNames = map[string]LineStyle{
	"":        Solid,
	"default": Solid,
	"-":       Solid,
	"solid":   Solid,
	"--":      Dashed,
	"dashed":  Dashed,
	":":       Dotted,
	"dotted":  Dotted,
	"-.":      DashDot,
	"dashdot": DashDot,
}

// ParseLineStyle accepts matplotlib-like tokens ("--") or names ("dashed").
func ParseLineStyle(s string) (LineStyle, error) {
	ls, ok := lineStyleNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Solid, fmt.Errorf("unknown line style: %q", s)
	}
	return ls, nil
}

func (ls LineStyle) String() string {
	switch ls {
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	case DashDot:
		return "dashdot"
	default:
		return "solid"
	}
}

// Interpolation selects how values between samples are computed.
type Interpolation int

const (
	Linear Interpolation = iota
	Akima
	FritschButland
	NaturalCubic
)

var interpolationNames = map[string]Interpolation{
	"":                Linear,
	"default":         Linear,
	"linear":          Linear,
	"akima":           Akima,
	"fritsch-butland": FritschButland,
	"monotone":        FritschButland,
	"cubic":           NaturalCubic,
	"natural-cubic":   NaturalCubic,
}

// ParseInterpolation maps a method name to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	m, ok := interpolationNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Linear, fmt.Errorf("unknown interpolation: %q", s)
	}
	return m, nil
}

func (m Interpolation) String() string {
	switch m {
	case Akima:
		return "akima"
	case FritschButland:
		return "fritsch-butland"
	case NaturalCubic:
		return "cubic"
	default:
		return "linear"
	}
}

// settings collects every cosmetic and construction knob. Empty strings and
// zero numbers mean "use the style default" at render time.
type settings struct {
	points        int
	interpolation Interpolation

	color     string
	lineWidth float64
	lineStyle LineStyle

	faceColor   string
	edgeColor   string
	markerSize  float64
	markerStyle string

	histType   string
	alpha      float64
	normalize  bool
	showPDF    string
	showParams bool
}

// Option configures a Curve, Scatter or Histogram at construction.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{points: DefaultPoints}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithPoints sets the number of samples for the *FromFunc constructors.
func WithPoints(n int) Option {
	return func(s *settings) { s.points = n }
}

func WithInterpolation(m Interpolation) Option {
	return func(s *settings) { s.interpolation = m }
}

func WithColor(c string) Option {
	return func(s *settings) { s.color = c }
}

func WithLineWidth(w float64) Option {
	return func(s *settings) { s.lineWidth = w }
}

func WithLineStyle(ls LineStyle) Option {
	return func(s *settings) { s.lineStyle = ls }
}

func WithFaceColor(c string) Option {
	return func(s *settings) { s.faceColor = c }
}

func WithEdgeColor(c string) Option {
	return func(s *settings) { s.edgeColor = c }
}

func WithMarkerSize(size float64) Option {
	return func(s *settings) { s.markerSize = size }
}

// WithMarkerStyle takes one of "o", "s", "^", "v", "d", "+", "x".
func WithMarkerStyle(m string) Option {
	return func(s *settings) { s.markerStyle = m }
}

// WithHistType takes "bar", "step" or "stepfilled".
func WithHistType(t string) Option {
	return func(s *settings) { s.histType = t }
}

func WithAlpha(a float64) Option {
	return func(s *settings) { s.alpha = a }
}

// Normalized makes histogram heights probability densities.
func Normalized() Option {
	return func(s *settings) { s.normalize = true }
}

// WithPDF overlays a fitted distribution on a histogram ("normal" or "gaussian").
func WithPDF(kind string) Option {
	return func(s *settings) { s.showPDF = kind }
}

// WithParams appends the mean and standard deviation to a histogram label.
func WithParams() Option {
	return func(s *settings) { s.showParams = true }
}
