package curves_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/graphinglib/internal/curves"
)

var _ = Describe("Scatter", func() {
	var sine, quad *curves.Scatter

	BeforeEach(func() {
		var err error
		sine, err = curves.ScatterFromFunc(math.Sin, 0, 3*math.Pi, "Test Scatter", curves.WithPoints(200), curves.WithColor("r"))
		Expect(err).NotTo(HaveOccurred())
		quad, err = curves.ScatterFromFunc(quadratic, 0, 3*math.Pi, "Other Scatter", curves.WithPoints(200))
		Expect(err).NotTo(HaveOccurred())
	})

	It("uses the color as face color when none is given", func() {
		Expect(sine.FaceColor).To(Equal("r"))
		s, err := curves.NewScatter([]float64{0, 1}, []float64{0, 1}, "faced", curves.WithColor("r"), curves.WithFaceColor("b"))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.FaceColor).To(Equal("b"))
	})

	It("answers sample queries like a curve", func() {
		p, err := sine.PointAtX(0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Y).To(BeNumerically("~", math.Sin(0.5), 5e-4))

		points, err := sine.PointsAtY(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(3))

		crossings, err := sine.Intersection(quad)
		Expect(err).NotTo(HaveOccurred())
		Expect(crossings).To(HaveLen(4))
	})

	It("combines scatters on the same grid", func() {
		sum, err := sine.Add(quad)
		Expect(err).NotTo(HaveOccurred())
		Expect(sum.Label()).To(Equal("Test Scatter + Other Scatter"))
		Expect(sum.Len()).To(Equal(200))
		p, err := sum.PointAtX(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Y).To(BeNumerically("~", 1.029, 5e-4))

		diff, err := sine.Sub(quad)
		Expect(err).NotTo(HaveOccurred())
		Expect(diff.Y()[0]).To(BeNumerically("~", -0.1, 1e-12))

		prod, err := sine.Mul(quad)
		Expect(err).NotTo(HaveOccurred())
		Expect(prod.Y()[0]).To(BeNumerically("~", 0, 1e-12))

		quot, err := sine.Div(quad)
		Expect(err).NotTo(HaveOccurred())
		Expect(quot.Y()[0]).To(BeNumerically("~", 0, 1e-12))
	})

	It("refuses scatters of different sizes", func() {
		coarse, err := curves.ScatterFromFunc(quadratic, 0, 3*math.Pi, "Coarse", curves.WithPoints(100))
		Expect(err).NotTo(HaveOccurred())
		_, err = sine.Add(coarse)
		Expect(err).To(MatchError(curves.ErrGridMismatch))
	})

	It("applies constants", func() {
		Expect(quad.AddConst(1).Y()[0]).To(BeNumerically("~", 1.1, 1e-12))
		Expect(quad.MulConst(10).Y()[0]).To(BeNumerically("~", 1, 1e-12))
	})

	It("converts to a curve with the same samples", func() {
		c := sine.AsCurve()
		Expect(c.Label()).To(Equal("Test Scatter"))
		Expect(c.X()).To(Equal(sine.X()))
		Expect(c.Y()).To(Equal(sine.Y()))
	})

	It("attaches per-sample error bars", func() {
		s, err := curves.NewScatter([]float64{0, 1, 2}, []float64{1, 2, 3}, "bars")
		Expect(err).NotTo(HaveOccurred())
		s, err = s.WithErrorbars([]float64{0.1, 0.2, 0.3}, []float64{0.5})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Errorbars().X).To(Equal([]float64{0.1, 0.2, 0.3}))
		Expect(s.Errorbars().Y).To(Equal([]float64{0.5, 0.5, 0.5}))
	})
})
