package fits

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/graphinglib/internal/curves"
)

func mustCurve(t *testing.T, f func(float64) float64, n int) *curves.Curve {
	t.Helper()
	c, err := curves.CurveFromFunc(f, 0, 4, "data", curves.WithPoints(n))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestPolynomial(t *testing.T) {
	g := NewWithT(t)
	data := mustCurve(t, func(x float64) float64 { return 0.5*x*x - 2*x + 1 }, 30)

	fit, err := Polynomial(data, 2)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fit.Degree()).To(Equal(2))

	want := []float64{1, -2, 0.5}
	for i, c := range fit.Coefficients() {
		g.Expect(c).To(BeNumerically("~", want[i], 1e-9))
	}
	g.Expect(fit.Predict(3)).To(BeNumerically("~", 0.5*9-6+1, 1e-9))
	g.Expect(fit.RSquared()).To(BeNumerically("~", 1, 1e-12))
	g.Expect(fit.String()).To(Equal("y = 0.500x^2 - 2.000x + 1.000"))
	g.Expect(fit.Label()).To(Equal("Fit of data"))
	g.Expect(fit.Data()).To(BeIdenticalTo(data))

	for _, r := range fit.Residuals() {
		g.Expect(r).To(BeNumerically("~", 0, 1e-9))
	}
}

func TestPolynomial_Line(t *testing.T) {
	g := NewWithT(t)
	c, err := curves.NewCurve([]float64{0, 1, 2, 3}, []float64{1.1, 2.9, 5.1, 6.9}, "noisy")
	g.Expect(err).NotTo(HaveOccurred())

	fit, err := Polynomial(c, 1)
	g.Expect(err).NotTo(HaveOccurred())
	coeffs := fit.Coefficients()
	g.Expect(coeffs[0]).To(BeNumerically("~", 1.06, 1e-9))
	g.Expect(coeffs[1]).To(BeNumerically("~", 1.96, 1e-9))

	h, err := curves.HistogramFromResiduals(fit, 2, "Residuals")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(h.Data()).To(HaveLen(4))
	g.Expect(h.Mean()).To(BeNumerically("~", 0, 1e-9))
}

func TestPolynomial_Errors(t *testing.T) {
	c, err := curves.NewCurve([]float64{0, 1}, []float64{0, 1}, "short")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Polynomial(c, 2); !errors.Is(err, ErrUnderdetermined) {
		t.Errorf("expected ErrUnderdetermined, got %v", err)
	}
	if _, err := Polynomial(c, -1); !errors.Is(err, ErrDegree) {
		t.Errorf("expected ErrDegree, got %v", err)
	}
}

func TestFitCurve(t *testing.T) {
	g := NewWithT(t)
	data := mustCurve(t, func(x float64) float64 { return 3*x - 1 }, 10)

	fit, err := Polynomial(data, 1)
	g.Expect(err).NotTo(HaveOccurred())

	c, err := fit.Curve(50)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(c.Len()).To(Equal(50))
	g.Expect(c.Label()).To(Equal("Fit of data"))
	lo, hi := c.Domain()
	g.Expect(lo).To(Equal(0.0))
	g.Expect(hi).To(BeNumerically("~", 4, 1e-12))
}

func TestModel(t *testing.T) {
	g := NewWithT(t)
	data := mustCurve(t, func(x float64) float64 { return 2 * math.Exp(-0.5*x) }, 40)

	decay := func(x float64, p []float64) float64 { return p[0] * math.Exp(p[1]*x) }
	fit, err := Model(data, decay, []float64{1, -1})
	g.Expect(err).NotTo(HaveOccurred())

	params := fit.Params()
	g.Expect(params[0]).To(BeNumerically("~", 2, 1e-3))
	g.Expect(params[1]).To(BeNumerically("~", -0.5, 1e-3))
	g.Expect(fit.SSE()).To(BeNumerically("<", 1e-5))
	g.Expect(fit.Predict(1)).To(BeNumerically("~", 2*math.Exp(-0.5), 1e-3))
	g.Expect(fit.String()).To(HavePrefix("p0 = 2.000"))
}

func TestModel_Errors(t *testing.T) {
	c, err := curves.NewCurve([]float64{0}, []float64{1}, "single")
	if err != nil {
		t.Fatal(err)
	}
	line := func(x float64, p []float64) float64 { return p[0] + p[1]*x }

	if _, err := Model(c, line, nil); err == nil {
		t.Error("expected error for empty guess")
	}
	if _, err := Model(c, line, []float64{0, 1}); !errors.Is(err, ErrUnderdetermined) {
		t.Errorf("expected ErrUnderdetermined, got %v", err)
	}
}
