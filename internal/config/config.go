package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth   = 6.4
	DefaultHeight  = 4.8
	DefaultStyle   = "plain"
	DefaultPoints  = 500
	DefaultBins    = 20
	DefaultDegree  = 1
	DefaultYColumn = 1
)

// Element kinds understood by the figure builder.
const (
	KindCurve      = "curve"
	KindScatter    = "scatter"
	KindHistogram  = "histogram"
	KindFit        = "fit"
	KindResiduals  = "residuals"
	KindDerivative = "derivative"
	KindIntegral   = "integral"
	KindTangent    = "tangent"
	KindNormal     = "normal"
	KindSum        = "sum"
	KindDifference = "difference"
	KindProduct    = "product"
	KindQuotient   = "quotient"
)

var ErrInvalidElement = errors.New("config: invalid element")

// Figure describes one rendered figure.
type Figure struct {
	Title    string    `yaml:"title"`
	XLabel   string    `yaml:"x_label"`
	YLabel   string    `yaml:"y_label"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Style    string    `yaml:"style"`
	Output   string    `yaml:"output"`
	Elements []Element `yaml:"elements"`
}

// Element is one plotted object. Which fields matter depends on Kind.
type Element struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`

	// Sources for curve, scatter and histogram.
	Function string             `yaml:"function"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	XMin     float64            `yaml:"x_min"`
	XMax     float64            `yaml:"x_max"`
	Points   int                `yaml:"points"`
	Data     DataSource         `yaml:"data"`
	Dataset  string             `yaml:"dataset"`

	// References to earlier elements for derived kinds.
	Of   string  `yaml:"of"`
	With string  `yaml:"with"`
	At   float64 `yaml:"at"`

	Degree        int    `yaml:"degree"`
	Bins          int    `yaml:"bins"`
	Normalize     bool   `yaml:"normalize"`
	ShowPDF       string `yaml:"show_pdf"`
	ShowParams    bool   `yaml:"show_params"`
	Interpolation string `yaml:"interpolation"`

	Color       string    `yaml:"color"`
	FaceColor   string    `yaml:"face_color"`
	EdgeColor   string    `yaml:"edge_color"`
	LineWidth   float64   `yaml:"line_width"`
	LineStyle   string    `yaml:"line_style"`
	MarkerSize  float64   `yaml:"marker_size"`
	MarkerStyle string    `yaml:"marker_style"`
	HistType    string    `yaml:"hist_type"`
	Alpha       float64   `yaml:"alpha"`
	Errorbars   Errorbars `yaml:"errorbars"`
}

// DataSource points at columns of a CSV file.
type DataSource struct {
	Path    string `yaml:"path"`
	XColumn int    `yaml:"x_column"`
	YColumn int    `yaml:"y_column"`
}

// Errorbars accepts either a scalar or a list for each axis.
type Errorbars struct {
	X any `yaml:"x"`
	Y any `yaml:"y"`
}

func DefaultConfig() *Figure {
	return &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Style:  DefaultStyle,
	}
}

func DefaultElement() Element {
	return Element{
		Kind:   KindCurve,
		Points: DefaultPoints,
		Bins:   DefaultBins,
		Degree: DefaultDegree,
		Data:   DataSource{YColumn: DefaultYColumn},
	}
}

// UnmarshalYAML fills unspecified fields from DefaultElement.
func (e *Element) UnmarshalYAML(value *yaml.Node) error {
	type plain Element
	el := plain(DefaultElement())
	if err := value.Decode(&el); err != nil {
		return err
	}
	*e = Element(el)
	return nil
}

func Load(path string) (*Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Figure, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Figure) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every element names a known kind, has a source and
// only references elements declared before it.
func (f *Figure) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("config: figure size must be positive (%gx%g)", f.Width, f.Height)
	}
	seen := make(map[string]bool)
	for i, el := range f.Elements {
		if err := el.validate(seen); err != nil {
			return fmt.Errorf("element %d (%s): %w", i, el.Label, err)
		}
		if el.Label != "" {
			seen[el.Label] = true
		}
	}
	return nil
}

func (e *Element) validate(seen map[string]bool) error {
	switch e.Kind {
	case KindCurve, KindScatter:
		if e.Function == "" && e.Data.Path == "" && e.Dataset == "" {
			return fmt.Errorf("%w: %s needs function, data or dataset", ErrInvalidElement, e.Kind)
		}
		if e.Function != "" && !(e.XMax > e.XMin) {
			return fmt.Errorf("%w: x_max must exceed x_min", ErrInvalidElement)
		}
	case KindHistogram:
		if e.Data.Path == "" && e.Of == "" {
			return fmt.Errorf("%w: histogram needs data or of", ErrInvalidElement)
		}
	case KindFit, KindResiduals, KindDerivative, KindIntegral, KindTangent, KindNormal:
		if e.Of == "" {
			return fmt.Errorf("%w: %s needs of", ErrInvalidElement, e.Kind)
		}
	case KindSum, KindDifference, KindProduct, KindQuotient:
		if e.Of == "" || e.With == "" {
			return fmt.Errorf("%w: %s needs of and with", ErrInvalidElement, e.Kind)
		}
		if !seen[e.With] {
			return fmt.Errorf("%w: unknown element %q", ErrInvalidElement, e.With)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidElement, e.Kind)
	}
	if e.Of != "" && !seen[e.Of] {
		return fmt.Errorf("%w: unknown element %q", ErrInvalidElement, e.Of)
	}
	return nil
}

// Values converts both axes to float slices. A scalar becomes a one-element
// slice and a missing value becomes nil.
func (e Errorbars) Values() (x, y []float64, err error) {
	if x, err = toFloats(e.X); err != nil {
		return nil, nil, fmt.Errorf("errorbars.x: %w", err)
	}
	if y, err = toFloats(e.Y); err != nil {
		return nil, nil, fmt.Errorf("errorbars.y: %w", err)
	}
	return x, y, nil
}

func toFloats(v any) ([]float64, error) {
	if v == nil {
		return nil, nil
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return []float64{f}, nil
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		if out[i], err = cast.ToFloat64E(item); err != nil {
			return nil, err
		}
	}
	return out, nil
}
