package curves

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Point is a single (x, y) result of a query.
type Point struct {
	X, Y float64
}

// Errorbars holds per-sample uncertainties. A nil slice means no bars on that axis.
type Errorbars struct {
	X []float64
	Y []float64
}

// samples is the ordered (x, y) sequence shared by Curve and Scatter.
type samples struct {
	x, y   []float64
	method Interpolation
	errs   Errorbars
}

// Sampled is implemented by Curve and Scatter.
type Sampled interface {
	sampleSet() *samples
}

func newSamples(x, y []float64, method Interpolation) (samples, error) {
	if len(x) != len(y) {
		return samples{}, ErrLength
	}
	if len(x) == 0 {
		return samples{}, ErrEmpty
	}
	return samples{
		x:      append([]float64(nil), x...),
		y:      append([]float64(nil), y...),
		method: method,
	}, nil
}

func (s *samples) sampleSet() *samples { return s }

// X returns a copy of the x samples.
func (s *samples) X() []float64 { return append([]float64(nil), s.x...) }

// Y returns a copy of the y samples.
func (s *samples) Y() []float64 { return append([]float64(nil), s.y...) }

// Len is the number of samples.
func (s *samples) Len() int { return len(s.x) }

// Interpolation reports the method used between samples.
func (s *samples) Interpolation() Interpolation { return s.method }

// Errorbars returns a copy of the attached error bars.
func (s *samples) Errorbars() Errorbars {
	return Errorbars{
		X: append([]float64(nil), s.errs.X...),
		Y: append([]float64(nil), s.errs.Y...),
	}
}

// Domain returns the first and last x sample.
func (s *samples) Domain() (lo, hi float64) {
	return s.x[0], s.x[len(s.x)-1]
}

// Min returns the smallest y sample.
func (s *samples) Min() float64 { return floats.Min(s.y) }

// Max returns the largest y sample.
func (s *samples) Max() float64 { return floats.Max(s.y) }

// checkOrdered reports whether the samples can be treated as a function of x.
func (s *samples) checkOrdered() error {
	if len(s.x) < 2 {
		return ErrTooFewSamples
	}
	for i := 1; i < len(s.x); i++ {
		if !(s.x[i] > s.x[i-1]) {
			return ErrUnsorted
		}
	}
	return nil
}

func (s *samples) predictor() (interp.Predictor, error) {
	if err := s.checkOrdered(); err != nil {
		return nil, err
	}
	var fp interp.FittablePredictor
	switch s.method {
	case Akima:
		fp = &interp.AkimaSpline{}
	case FritschButland:
		fp = &interp.FritschButland{}
	case NaturalCubic:
		if len(s.x) < 3 {
			fp = &interp.PiecewiseLinear{}
			break
		}
		fp = &interp.NaturalCubic{}
	default:
		fp = &interp.PiecewiseLinear{}
	}
	if err := fp.Fit(s.x, s.y); err != nil {
		return nil, err
	}
	return fp, nil
}

func (s *samples) inDomain(x float64) bool {
	lo, hi := s.Domain()
	return x >= lo && x <= hi
}

func (s *samples) domainError(op string, x float64) error {
	lo, hi := s.Domain()
	return &QueryError{Op: op, X: x, Min: lo, Max: hi, Err: ErrOutOfDomain}
}

// PointAtX interpolates y at x. x must lie inside the sampled domain.
func (s *samples) PointAtX(x float64) (Point, error) {
	p, err := s.predictor()
	if err != nil {
		return Point{}, err
	}
	if !s.inDomain(x) {
		return Point{}, s.domainError("PointAtX", x)
	}
	return Point{X: x, Y: p.Predict(x)}, nil
}

// ValuesAt interpolates at every xs; values outside the domain are NaN.
func (s *samples) ValuesAt(xs []float64) []float64 {
	out := make([]float64, len(xs))
	p, err := s.predictor()
	for i, x := range xs {
		if err != nil || !s.inDomain(x) {
			out[i] = math.NaN()
			continue
		}
		out[i] = p.Predict(x)
	}
	return out
}

// PointsAtY returns every point where the piecewise-linear path through the
// samples equals y, in ascending x order. Samples lying exactly on y are
// reported as they are.
func (s *samples) PointsAtY(y float64) ([]Point, error) {
	if err := s.checkOrdered(); err != nil {
		return nil, err
	}
	var points []Point
	for i := range s.x {
		d0 := s.y[i] - y
		if d0 == 0 {
			points = append(points, Point{X: s.x[i], Y: y})
		}
		if i == len(s.x)-1 {
			break
		}
		d1 := s.y[i+1] - y
		if d0*d1 < 0 {
			frac := d0 / (d0 - d1)
			points = append(points, Point{X: s.x[i] + frac*(s.x[i+1]-s.x[i]), Y: y})
		}
	}
	return points, nil
}

// Intersection returns the points where both sample sets take the same value,
// in ascending x order.
func (s *samples) Intersection(other Sampled) ([]Point, error) {
	o := other.sampleSet()
	pa, err := s.predictor()
	if err != nil {
		return nil, err
	}
	pb, err := o.predictor()
	if err != nil {
		return nil, err
	}
	grid, err := overlapGrid(s.x, o.x)
	if err != nil {
		return nil, err
	}

	diff := func(x float64) float64 { return pa.Predict(x) - pb.Predict(x) }
	d := make([]float64, len(grid))
	for i, x := range grid {
		d[i] = diff(x)
	}

	var points []Point
	for i := range grid {
		if d[i] == 0 {
			points = append(points, Point{X: grid[i], Y: pa.Predict(grid[i])})
		}
		if i == len(grid)-1 {
			break
		}
		if d[i]*d[i+1] < 0 {
			x := bracketRoot(diff, grid[i], grid[i+1], d[i], d[i+1])
			points = append(points, Point{X: x, Y: pa.Predict(x)})
		}
	}
	return points, nil
}
