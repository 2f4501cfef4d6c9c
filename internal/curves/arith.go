package curves

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

type binaryOp struct {
	symbol string
	apply  func(dst, s, t []float64) []float64
}

var (
	opAdd = binaryOp{"+", floats.AddTo}
	opSub = binaryOp{"-", floats.SubTo}
	opMul = binaryOp{"*", floats.MulTo}
	opDiv = binaryOp{"/", floats.DivTo}
)

func sameGrid(a, b []float64) bool {
	return len(a) == len(b) && floats.EqualApprox(a, b, gridTolerance)
}

// combine evaluates op pointwise. Operands on the same grid combine sample by
// sample; otherwise both are resampled onto the union of their grids over
// the shared domain.
func combine(a, b *samples, op binaryOp) (x, y []float64, err error) {
	if sameGrid(a.x, b.x) {
		x = append([]float64(nil), a.x...)
		return x, op.apply(make([]float64, len(x)), a.y, b.y), nil
	}
	if err := a.checkOrdered(); err != nil {
		return nil, nil, err
	}
	if err := b.checkOrdered(); err != nil {
		return nil, nil, err
	}
	if math.Max(a.x[0], b.x[0]) >= math.Min(a.x[len(a.x)-1], b.x[len(b.x)-1]) {
		return nil, nil, ErrNoOverlap
	}
	x, err = overlapGrid(a.x, b.x)
	if err != nil {
		return nil, nil, err
	}
	return x, op.apply(make([]float64, len(x)), a.ValuesAt(x), b.ValuesAt(x)), nil
}

func (c *Curve) arith(other *Curve, op binaryOp) (*Curve, error) {
	x, y, err := combine(&c.samples, &other.samples, op)
	if err != nil {
		return nil, fmt.Errorf("%s %s %s: %w", c.label, op.symbol, other.label, err)
	}
	return c.derive(x, y, c.label+" "+op.symbol+" "+other.label), nil
}

// Add returns c + other.
func (c *Curve) Add(other *Curve) (*Curve, error) { return c.arith(other, opAdd) }

// Sub returns c - other.
func (c *Curve) Sub(other *Curve) (*Curve, error) { return c.arith(other, opSub) }

// Mul returns c * other.
func (c *Curve) Mul(other *Curve) (*Curve, error) { return c.arith(other, opMul) }

// Div returns c / other. Zero denominators give IEEE infinities or NaN.
func (c *Curve) Div(other *Curve) (*Curve, error) { return c.arith(other, opDiv) }

// AddConst shifts every y sample by v.
func (c *Curve) AddConst(v float64) *Curve {
	y := c.Y()
	floats.AddConst(v, y)
	return c.derive(c.X(), y, fmt.Sprintf("%s + %g", c.label, v))
}

// MulConst scales every y sample by v.
func (c *Curve) MulConst(v float64) *Curve {
	y := c.Y()
	floats.Scale(v, y)
	return c.derive(c.X(), y, fmt.Sprintf("%g %s", v, c.label))
}

// Pow raises every y sample to exp.
func (c *Curve) Pow(exp float64) *Curve {
	y := c.Y()
	for i, v := range y {
		y[i] = math.Pow(v, exp)
	}
	return c.derive(c.X(), y, fmt.Sprintf("%s ^ %g", c.label, exp))
}

func (s *Scatter) arith(other *Scatter, op binaryOp) (*Scatter, error) {
	if !sameGrid(s.x, other.x) {
		return nil, fmt.Errorf("%s %s %s: %w", s.label, op.symbol, other.label, ErrGridMismatch)
	}
	x, y, err := combine(&s.samples, &other.samples, op)
	if err != nil {
		return nil, err
	}
	return s.derive(x, y, s.label+" "+op.symbol+" "+other.label), nil
}

// Add returns s + other. Both scatters must share the same x grid.
func (s *Scatter) Add(other *Scatter) (*Scatter, error) { return s.arith(other, opAdd) }

// Sub returns s - other.
func (s *Scatter) Sub(other *Scatter) (*Scatter, error) { return s.arith(other, opSub) }

// Mul returns s * other.
func (s *Scatter) Mul(other *Scatter) (*Scatter, error) { return s.arith(other, opMul) }

// Div returns s / other.
func (s *Scatter) Div(other *Scatter) (*Scatter, error) { return s.arith(other, opDiv) }

// AddConst shifts every y sample by v.
func (s *Scatter) AddConst(v float64) *Scatter {
	y := s.Y()
	floats.AddConst(v, y)
	return s.derive(s.X(), y, fmt.Sprintf("%s + %g", s.label, v))
}

// MulConst scales every y sample by v.
func (s *Scatter) MulConst(v float64) *Scatter {
	y := s.Y()
	floats.Scale(v, y)
	return s.derive(s.X(), y, fmt.Sprintf("%g %s", v, s.label))
}
