package fits

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/graphinglib/internal/curves"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrUnderdetermined = errors.New("fits: fewer samples than parameters")
	ErrDegree          = errors.New("fits: degree must be non-negative")
)

// base holds what every fit shares: the fitted data and its label.
type base struct {
	data    *curves.Curve
	label   string
	predict func(x float64) float64
}

func (b *base) Predict(x float64) float64 { return b.predict(x) }

// Data is the curve the model was fitted to.
func (b *base) Data() *curves.Curve { return b.data }

func (b *base) Label() string { return b.label }

// Residuals are fitted minus actual values at every sample.
func (b *base) Residuals() []float64 { return curves.Residuals(b) }

// RSquared is the coefficient of determination over the fitted samples.
func (b *base) RSquared() float64 {
	x, y := b.data.X(), b.data.Y()
	est := make([]float64, len(x))
	for i, xi := range x {
		est[i] = b.predict(xi)
	}
	return stat.RSquaredFrom(est, y, nil)
}

// Curve samples the model over the data's domain.
func (b *base) Curve(n int) (*curves.Curve, error) {
	lo, hi := b.data.Domain()
	return curves.CurveFromFunc(b.predict, lo, hi, b.label, curves.WithPoints(n))
}

// PolyFit is a least-squares polynomial.
type PolyFit struct {
	base
	coeffs []float64
}

// Polynomial fits a polynomial of the given degree to the curve's samples by
// solving the Vandermonde system in the least-squares sense.
func Polynomial(c *curves.Curve, degree int) (*PolyFit, error) {
	if degree < 0 {
		return nil, ErrDegree
	}
	x, y := c.X(), c.Y()
	if len(x) < degree+1 {
		return nil, fmt.Errorf("%w: %d samples for degree %d", ErrUnderdetermined, len(x), degree)
	}

	a := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= xi
		}
	}
	var sol mat.VecDense
	if err := sol.SolveVec(a, mat.NewVecDense(len(y), y)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("fits: polynomial: %w", err)
		}
	}

	f := &PolyFit{coeffs: make([]float64, degree+1)}
	for i := range f.coeffs {
		f.coeffs[i] = sol.AtVec(i)
	}
	f.base = base{data: c, label: "Fit of " + c.Label(), predict: f.eval}
	return f, nil
}

func (f *PolyFit) eval(x float64) float64 {
	var y float64
	for i := len(f.coeffs) - 1; i >= 0; i-- {
		y = y*x + f.coeffs[i]
	}
	return y
}

// Coefficients are ordered from the constant term up.
func (f *PolyFit) Coefficients() []float64 { return append([]float64(nil), f.coeffs...) }

func (f *PolyFit) Degree() int { return len(f.coeffs) - 1 }

// String formats the polynomial highest power first, e.g. "y = 2.000x + 1.000".
func (f *PolyFit) String() string {
	var sb strings.Builder
	sb.WriteString("y =")
	for i := len(f.coeffs) - 1; i >= 0; i-- {
		c := f.coeffs[i]
		sign := "+"
		if c < 0 {
			sign = "-"
		}
		if i == len(f.coeffs)-1 {
			if c < 0 {
				sb.WriteString(" -")
			} else {
				sb.WriteString(" ")
			}
		} else {
			sb.WriteString(" " + sign + " ")
		}
		fmt.Fprintf(&sb, "%.3f", math.Abs(c))
		switch i {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}
	return sb.String()
}

// ModelFunc evaluates a parametric model at x.
type ModelFunc func(x float64, params []float64) float64

// ModelFit is a general least-squares fit of a ModelFunc.
type ModelFit struct {
	base
	model  ModelFunc
	params []float64
	sse    float64
}

// Model minimizes the sum of squared residuals of f over the curve's samples,
// starting from guess, with Nelder-Mead.
func Model(c *curves.Curve, f ModelFunc, guess []float64) (*ModelFit, error) {
	if len(guess) == 0 {
		return nil, fmt.Errorf("fits: model: empty initial guess")
	}
	x, y := c.X(), c.Y()
	if len(x) < len(guess) {
		return nil, fmt.Errorf("%w: %d samples for %d parameters", ErrUnderdetermined, len(x), len(guess))
	}

	sse := func(params []float64) float64 {
		var sum float64
		for i, xi := range x {
			r := f(xi, params) - y[i]
			sum += r * r
		}
		return sum
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{Absolute: 1e-14, Iterations: 200},
	}
	result, err := optimize.Minimize(optimize.Problem{Func: sse}, guess, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("fits: model: %w", err)
	}

	m := &ModelFit{model: f, params: append([]float64(nil), result.X...), sse: result.F}
	m.base = base{data: c, label: "Fit of " + c.Label(), predict: m.eval}
	return m, nil
}

func (m *ModelFit) eval(x float64) float64 { return m.model(x, m.params) }

// Params are the fitted parameters in the order of the initial guess.
func (m *ModelFit) Params() []float64 { return append([]float64(nil), m.params...) }

// SSE is the sum of squared residuals at the optimum.
func (m *ModelFit) SSE() float64 { return m.sse }

func (m *ModelFit) String() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = fmt.Sprintf("p%d = %.3f", i, p)
	}
	return strings.Join(parts, ", ")
}
