package curves

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Curve is a continuous curve through ordered (x, y) samples. The samples are
// fixed at construction; every derived curve is a new value.
type Curve struct {
	samples
	label string

	// Cosmetics. Empty or zero values resolve to the figure style.
	Color     string
	LineWidth float64
	LineStyle LineStyle
}

// NewCurve copies x and y into a new Curve.
func NewCurve(x, y []float64, label string, opts ...Option) (*Curve, error) {
	s := newSettings(opts)
	smp, err := newSamples(x, y, s.interpolation)
	if err != nil {
		return nil, err
	}
	return &Curve{
		samples:   smp,
		label:     label,
		Color:     s.color,
		LineWidth: s.lineWidth,
		LineStyle: s.lineStyle,
	}, nil
}

// CurveFromFunc samples f at evenly spaced points over [xmin, xmax].
func CurveFromFunc(f func(float64) float64, xmin, xmax float64, label string, opts ...Option) (*Curve, error) {
	x, y, err := sampleFunc(f, xmin, xmax, newSettings(opts).points)
	if err != nil {
		return nil, err
	}
	return NewCurve(x, y, label, opts...)
}

func sampleFunc(f func(float64) float64, xmin, xmax float64, n int) ([]float64, []float64, error) {
	if n < 2 {
		return nil, nil, ErrTooFewSamples
	}
	if !(xmax > xmin) {
		return nil, nil, fmt.Errorf("%w: xmin %g >= xmax %g", ErrUnsorted, xmin, xmax)
	}
	x := floats.Span(make([]float64, n), xmin, xmax)
	y := make([]float64, n)
	for i, xi := range x {
		y[i] = f(xi)
	}
	return x, y, nil
}

// Label is the legend text.
func (c *Curve) Label() string { return c.label }

// WithLabel returns a copy of c with a new label.
func (c *Curve) WithLabel(label string) *Curve {
	cp := *c
	cp.label = label
	return &cp
}

// WithErrorbars returns a copy of c carrying error bars. Each slice may be
// empty, a single value applied to every sample, or one value per sample.
func (c *Curve) WithErrorbars(xErr, yErr []float64) (*Curve, error) {
	errs, err := c.buildErrorbars(xErr, yErr)
	if err != nil {
		return nil, err
	}
	cp := *c
	cp.errs = errs
	return &cp, nil
}

// derive builds a curve that keeps the receiver's cosmetics.
func (c *Curve) derive(x, y []float64, label string) *Curve {
	return &Curve{
		samples:   samples{x: x, y: y, method: c.method},
		label:     label,
		Color:     c.Color,
		LineWidth: c.LineWidth,
		LineStyle: c.LineStyle,
	}
}

// DerivativeCurve returns dy/dx sampled on the same grid.
func (c *Curve) DerivativeCurve() (*Curve, error) {
	if err := c.checkOrdered(); err != nil {
		return nil, err
	}
	return c.derive(c.X(), gradient(c.x, c.y), c.label+" derivative"), nil
}

// IntegralCurve returns the running integral from the first sample.
func (c *Curve) IntegralCurve() (*Curve, error) {
	if err := c.checkOrdered(); err != nil {
		return nil, err
	}
	return c.derive(c.X(), cumulativeTrapezoid(c.x, c.y), c.label+" integral"), nil
}

// SlopeAt is the derivative curve evaluated at x.
func (c *Curve) SlopeAt(x float64) (float64, error) {
	d, err := c.DerivativeCurve()
	if err != nil {
		return 0, err
	}
	p, err := d.PointAtX(x)
	if err != nil {
		return 0, err
	}
	return p.Y, nil
}

// TangentCurve is the line through the point at x with the local slope,
// sampled on the curve's grid.
func (c *Curve) TangentCurve(x float64) (*Curve, error) {
	p, slope, err := c.pointAndSlope(x)
	if err != nil {
		return nil, err
	}
	return c.line(p, slope, fmt.Sprintf("Tangent at x = %.2f", x)), nil
}

// NormalCurve is the line through the point at x perpendicular to the
// tangent. A horizontal tangent yields a vertical line spanning the curve's
// y range.
func (c *Curve) NormalCurve(x float64) (*Curve, error) {
	p, slope, err := c.pointAndSlope(x)
	if err != nil {
		return nil, err
	}
	label := fmt.Sprintf("Normal at x = %.2f", x)
	if slope == 0 {
		return c.derive([]float64{p.X, p.X}, []float64{c.Min(), c.Max()}, label), nil
	}
	return c.line(p, -1/slope, label), nil
}

func (c *Curve) pointAndSlope(x float64) (Point, float64, error) {
	p, err := c.PointAtX(x)
	if err != nil {
		return Point{}, 0, err
	}
	slope, err := c.SlopeAt(x)
	if err != nil {
		return Point{}, 0, err
	}
	return p, slope, nil
}

func (c *Curve) line(through Point, slope float64, label string) *Curve {
	y := make([]float64, len(c.x))
	for i, xi := range c.x {
		y[i] = slope*(xi-through.X) + through.Y
	}
	return c.derive(c.X(), y, label)
}

// section interpolates the curve over [x1, x2] at both bounds and every
// sample in between.
func (c *Curve) section(op string, x1, x2 float64) ([]float64, []float64, error) {
	p, err := c.predictor()
	if err != nil {
		return nil, nil, err
	}
	for _, x := range []float64{x1, x2} {
		if !c.inDomain(x) {
			return nil, nil, c.domainError(op, x)
		}
	}
	xs := subGrid(c.x, x1, x2)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Predict(x)
	}
	return xs, ys, nil
}

// AreaBetween integrates the curve from x1 to x2. Swapped bounds negate the
// result.
func (c *Curve) AreaBetween(x1, x2 float64) (float64, error) {
	sign := 1.0
	if x1 > x2 {
		x1, x2, sign = x2, x1, -1
	}
	xs, ys, err := c.section("AreaBetween", x1, x2)
	if err != nil {
		return 0, err
	}
	switch len(xs) {
	case 1:
		return 0, nil
	case 2:
		return sign * integrate.Trapezoidal(xs, ys), nil
	}
	return sign * integrate.Simpsons(xs, ys), nil
}

// ArcLengthBetween is the length of the curve between x1 and x2.
func (c *Curve) ArcLengthBetween(x1, x2 float64) (float64, error) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	xs, ys, err := c.section("ArcLengthBetween", x1, x2)
	if err != nil {
		return 0, err
	}
	segments := make([]float64, len(xs)-1)
	for i := range segments {
		segments[i] = math.Hypot(xs[i+1]-xs[i], ys[i+1]-ys[i])
	}
	return floats.Sum(segments), nil
}
