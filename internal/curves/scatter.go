package curves

// Scatter is a set of (x, y) samples drawn as discrete markers. It answers
// the same sample-based queries as Curve.
type Scatter struct {
	samples
	label string

	FaceColor   string
	EdgeColor   string
	MarkerSize  float64
	MarkerStyle string
}

// NewScatter copies x and y into a new Scatter.
func NewScatter(x, y []float64, label string, opts ...Option) (*Scatter, error) {
	s := newSettings(opts)
	smp, err := newSamples(x, y, s.interpolation)
	if err != nil {
		return nil, err
	}
	face := s.faceColor
	if face == "" {
		face = s.color
	}
	return &Scatter{
		samples:     smp,
		label:       label,
		FaceColor:   face,
		EdgeColor:   s.edgeColor,
		MarkerSize:  s.markerSize,
		MarkerStyle: s.markerStyle,
	}, nil
}

// ScatterFromFunc samples f at evenly spaced points over [xmin, xmax].
func ScatterFromFunc(f func(float64) float64, xmin, xmax float64, label string, opts ...Option) (*Scatter, error) {
	x, y, err := sampleFunc(f, xmin, xmax, newSettings(opts).points)
	if err != nil {
		return nil, err
	}
	return NewScatter(x, y, label, opts...)
}

// Label is the legend text.
func (s *Scatter) Label() string { return s.label }

// WithLabel returns a copy of s with a new label.
func (s *Scatter) WithLabel(label string) *Scatter {
	cp := *s
	cp.label = label
	return &cp
}

// WithErrorbars returns a copy of s carrying error bars, broadcast like
// Curve.WithErrorbars.
func (s *Scatter) WithErrorbars(xErr, yErr []float64) (*Scatter, error) {
	errs, err := s.buildErrorbars(xErr, yErr)
	if err != nil {
		return nil, err
	}
	cp := *s
	cp.errs = errs
	return &cp, nil
}

func (s *Scatter) derive(x, y []float64, label string) *Scatter {
	return &Scatter{
		samples:     samples{x: x, y: y, method: s.method},
		label:       label,
		FaceColor:   s.FaceColor,
		EdgeColor:   s.EdgeColor,
		MarkerSize:  s.MarkerSize,
		MarkerStyle: s.MarkerStyle,
	}
}

// AsCurve returns the same samples as a line curve.
func (s *Scatter) AsCurve() *Curve {
	return &Curve{
		samples: samples{x: s.X(), y: s.Y(), method: s.method},
		label:   s.label,
		Color:   s.FaceColor,
	}
}
