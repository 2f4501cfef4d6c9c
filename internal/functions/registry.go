package functions

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Func is a generating function for a curve.
type Func func(x float64) float64

type entry struct {
	doc  string
	make func(params map[string]float64) (Func, error)
}

type Registry struct {
	funcs map[string]entry
}

func unary(doc string, f Func) entry {
	return entry{doc: doc, make: func(map[string]float64) (Func, error) { return f, nil }}
}

func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]entry)}

	r.funcs["sin"] = unary("sin(x)", math.Sin)
	r.funcs["cos"] = unary("cos(x)", math.Cos)
	r.funcs["tan"] = unary("tan(x)", math.Tan)
	r.funcs["exp"] = unary("e^x", math.Exp)
	r.funcs["log"] = unary("ln(x)", math.Log)
	r.funcs["sqrt"] = unary("sqrt(x)", math.Sqrt)
	r.funcs["abs"] = unary("|x|", math.Abs)
	r.funcs["tanh"] = unary("tanh(x)", math.Tanh)
	r.funcs["sinc"] = unary("sin(x)/x, 1 at 0", func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Sin(x) / x
	})

	r.funcs["poly"] = entry{
		doc: "c0 + c1 x + c2 x^2 + ... (params c0, c1, ...)",
		make: func(params map[string]float64) (Func, error) {
			coeffs, err := polyCoefficients(params)
			if err != nil {
				return nil, err
			}
			return func(x float64) float64 {
				var y float64
				for i := len(coeffs) - 1; i >= 0; i-- {
					y = y*x + coeffs[i]
				}
				return y
			}, nil
		},
	}
	r.funcs["gaussian"] = entry{
		doc: "a exp(-(x-mu)^2 / 2 sigma^2) (params a=1, mu=0, sigma=1)",
		make: func(params map[string]float64) (Func, error) {
			a := param(params, "a", 1)
			mu := param(params, "mu", 0)
			sigma := param(params, "sigma", 1)
			if sigma <= 0 {
				return nil, fmt.Errorf("gaussian: sigma must be positive, got %g", sigma)
			}
			return func(x float64) float64 {
				z := (x - mu) / sigma
				return a * math.Exp(-z*z/2)
			}, nil
		},
	}
	r.funcs["power"] = entry{
		doc: "a x^n (params a=1, n=2)",
		make: func(params map[string]float64) (Func, error) {
			a := param(params, "a", 1)
			n := param(params, "n", 2)
			return func(x float64) float64 { return a * math.Pow(x, n) }, nil
		},
	}
	r.funcs["sine"] = entry{
		doc: "a sin(w x + phi) + c (params a=1, w=1, phi=0, c=0)",
		make: func(params map[string]float64) (Func, error) {
			a := param(params, "a", 1)
			w := param(params, "w", 1)
			phi := param(params, "phi", 0)
			c := param(params, "c", 0)
			return func(x float64) float64 { return a*math.Sin(w*x+phi) + c }, nil
		},
	}

	return r
}

func param(params map[string]float64, name string, def float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}

// polyCoefficients reads c0..cN; gaps in the sequence are zero.
func polyCoefficients(params map[string]float64) ([]float64, error) {
	degree := -1
	for name := range params {
		if len(name) < 2 || name[0] != 'c' {
			return nil, fmt.Errorf("poly: unknown parameter %q", name)
		}
		i, err := strconv.Atoi(name[1:])
		if err != nil || i < 0 {
			return nil, fmt.Errorf("poly: unknown parameter %q", name)
		}
		degree = max(degree, i)
	}
	if degree < 0 {
		return nil, fmt.Errorf("poly: no coefficients given")
	}
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = params["c"+strconv.Itoa(i)]
	}
	return coeffs, nil
}

func (r *Registry) Get(name string, params map[string]float64) (Func, error) {
	e, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("unknown function: %s", name)
	}
	return e.make(params)
}

// Describe returns the one-line description of a function.
func (r *Registry) Describe(name string) (string, error) {
	e, ok := r.funcs[name]
	if !ok {
		return "", fmt.Errorf("unknown function: %s", name)
	}
	return e.doc, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
