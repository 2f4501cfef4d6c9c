package curves

import (
	"math"
	"slices"
)

// gridTolerance is the relative spacing below which two abscissae are merged.
const gridTolerance = 1e-9

// overlapGrid merges two sorted grids over the range both cover.
func overlapGrid(a, b []float64) ([]float64, error) {
	lo := math.Max(a[0], b[0])
	hi := math.Min(a[len(a)-1], b[len(b)-1])
	if lo > hi {
		return nil, ErrNoOverlap
	}
	grid := make([]float64, 0, len(a)+len(b)+2)
	grid = append(grid, lo, hi)
	for _, x := range a {
		if x > lo && x < hi {
			grid = append(grid, x)
		}
	}
	for _, x := range b {
		if x > lo && x < hi {
			grid = append(grid, x)
		}
	}
	slices.Sort(grid)
	return compactGrid(grid, (hi-lo)*gridTolerance), nil
}

// compactGrid drops abscissae closer than eps to their predecessor. The last
// value is always kept.
func compactGrid(grid []float64, eps float64) []float64 {
	if len(grid) < 2 {
		return grid
	}
	out := grid[:1]
	for _, x := range grid[1:] {
		if x-out[len(out)-1] > eps {
			out = append(out, x)
		}
	}
	if last := grid[len(grid)-1]; out[len(out)-1] != last {
		out[len(out)-1] = last
	}
	return out
}

// subGrid returns x1, every sample strictly inside (x1, x2), then x2.
func subGrid(xs []float64, x1, x2 float64) []float64 {
	grid := []float64{x1}
	for _, x := range xs {
		if x > x1 && x < x2 {
			grid = append(grid, x)
		}
	}
	grid = append(grid, x2)
	return compactGrid(grid, (x2-x1)*gridTolerance)
}

// bracketRoot refines a sign change of f on [a, b] with the Illinois variant
// of regula falsi.
func bracketRoot(f func(float64) float64, a, b, fa, fb float64) float64 {
	const maxIter = 100
	xtol := 1e-13 * math.Max(1, math.Abs(a)+math.Abs(b))
	ftol := 1e-15 * math.Max(math.Abs(fa), math.Abs(fb))

	side := 0
	c := a
	for i := 0; i < maxIter; i++ {
		c = (a*fb - b*fa) / (fb - fa)
		fc := f(c)
		if math.Abs(fc) <= ftol || b-a <= xtol {
			return c
		}
		if fc*fb > 0 {
			b, fb = c, fc
			if side == -1 {
				fa /= 2
			}
			side = -1
		} else {
			a, fa = c, fc
			if side == 1 {
				fb /= 2
			}
			side = 1
		}
	}
	return c
}

// gradient estimates dy/dx with second-order central differences on a
// non-uniform grid and first-order one-sided differences at the ends.
func gradient(x, y []float64) []float64 {
	n := len(x)
	g := make([]float64, n)
	g[0] = (y[1] - y[0]) / (x[1] - x[0])
	g[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])
	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]
		g[i] = (hs*hs*y[i+1] + (hd*hd-hs*hs)*y[i] - hd*hd*y[i-1]) / (hs * hd * (hd + hs))
	}
	return g
}

// cumulativeTrapezoid integrates y over x, starting from zero.
func cumulativeTrapezoid(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		out[i] = out[i-1] + (x[i]-x[i-1])*(y[i]+y[i-1])/2
	}
	return out
}
