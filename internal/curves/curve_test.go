package curves_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/graphinglib/internal/curves"
)

func quadratic(x float64) float64 { return 0.005*x*x + 0.1 }

var _ = Describe("Curve", func() {
	var sine, quad *curves.Curve

	BeforeEach(func() {
		var err error
		sine, err = curves.CurveFromFunc(math.Sin, 0, 3*math.Pi, "Test Curve", curves.WithPoints(200), curves.WithColor("k"))
		Expect(err).NotTo(HaveOccurred())
		quad, err = curves.CurveFromFunc(quadratic, 0, 3*math.Pi, "Other Curve", curves.WithPoints(200))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("keeps label and cosmetics", func() {
			Expect(sine.Label()).To(Equal("Test Curve"))
			Expect(sine.Color).To(Equal("k"))
			Expect(sine.Len()).To(Equal(200))
			lo, hi := sine.Domain()
			Expect(lo).To(Equal(0.0))
			Expect(hi).To(BeNumerically("~", 3*math.Pi, 1e-12))
		})

		It("copies its input", func() {
			x := []float64{0, 1, 2}
			y := []float64{0, 1, 4}
			c, err := curves.NewCurve(x, y, "copy")
			Expect(err).NotTo(HaveOccurred())
			y[1] = 100
			Expect(c.Y()).To(Equal([]float64{0, 1, 4}))
		})

		It("rejects mismatched lengths", func() {
			_, err := curves.NewCurve([]float64{0, 1}, []float64{0}, "bad")
			Expect(err).To(MatchError(curves.ErrLength))
		})

		It("rejects empty samples", func() {
			_, err := curves.NewCurve(nil, nil, "empty")
			Expect(err).To(MatchError(curves.ErrEmpty))
		})

		It("rejects an inverted function range", func() {
			_, err := curves.CurveFromFunc(math.Sin, 1, 0, "inverted")
			Expect(err).To(MatchError(curves.ErrUnsorted))
		})

		It("relabels without touching the original", func() {
			renamed := sine.WithLabel("renamed")
			Expect(renamed.Label()).To(Equal("renamed"))
			Expect(sine.Label()).To(Equal("Test Curve"))
		})
	})

	Describe("PointAtX", func() {
		It("interpolates between samples", func() {
			p, err := sine.PointAtX(0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.X).To(Equal(0.5))
			Expect(p.Y).To(BeNumerically("~", math.Sin(0.5), 5e-4))
		})

		It("reports queries outside the domain", func() {
			_, err := sine.PointAtX(-1)
			Expect(err).To(MatchError(curves.ErrOutOfDomain))
			var qe *curves.QueryError
			Expect(errors.As(err, &qe)).To(BeTrue())
			Expect(qe.Op).To(Equal("PointAtX"))
			Expect(qe.X).To(Equal(-1.0))
		})

		It("rejects unordered samples", func() {
			c, err := curves.NewCurve([]float64{0, 2, 1}, []float64{0, 1, 2}, "unordered")
			Expect(err).NotTo(HaveOccurred())
			_, err = c.PointAtX(1)
			Expect(err).To(MatchError(curves.ErrUnsorted))
		})

		It("supports spline interpolation", func() {
			c, err := curves.CurveFromFunc(math.Sin, 0, math.Pi, "akima", curves.WithPoints(20), curves.WithInterpolation(curves.Akima))
			Expect(err).NotTo(HaveOccurred())
			p, err := c.PointAtX(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Y).To(BeNumerically("~", math.Sin(1), 1e-3))
		})
	})

	Describe("PointsAtY", func() {
		It("finds every crossing", func() {
			points, err := sine.PointsAtY(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(3))
			for i, p := range points {
				Expect(p.X).To(BeNumerically("~", float64(i)*math.Pi, 5e-4))
				Expect(p.Y).To(Equal(0.0))
			}
		})

		It("returns nothing when y is never reached", func() {
			points, err := sine.PointsAtY(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(BeEmpty())
		})
	})

	Describe("Intersection", func() {
		It("finds the crossings with another curve", func() {
			points, err := sine.Intersection(quad)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(4))
			wantX := []float64{0.1, 2.9962, 6.6072, 8.9052}
			wantY := []float64{0.1, 0.14489, 0.3183, 0.4965}
			for i, p := range points {
				Expect(p.X).To(BeNumerically("~", wantX[i], 5e-3))
				Expect(p.Y).To(BeNumerically("~", wantY[i], 5e-4))
			}
		})

		It("accepts a scatter", func() {
			sc, err := curves.ScatterFromFunc(quadratic, 0, 3*math.Pi, "Scatter", curves.WithPoints(50))
			Expect(err).NotTo(HaveOccurred())
			points, err := sine.Intersection(sc)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(4))
		})

		It("fails on disjoint domains", func() {
			far, err := curves.CurveFromFunc(quadratic, 20, 30, "far")
			Expect(err).NotTo(HaveOccurred())
			_, err = sine.Intersection(far)
			Expect(err).To(MatchError(curves.ErrNoOverlap))
		})
	})

	Describe("arithmetic", func() {
		at := func(c *curves.Curve, x float64) float64 {
			GinkgoHelper()
			p, err := c.PointAtX(x)
			Expect(err).NotTo(HaveOccurred())
			return p.Y
		}

		It("adds", func() {
			sum, err := sine.Add(quad)
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Label()).To(Equal("Test Curve + Other Curve"))
			Expect(at(sum, 0)).To(BeNumerically("~", 0.1, 5e-4))
			Expect(at(sum, 2)).To(BeNumerically("~", 1.029, 5e-4))
		})

		It("subtracts", func() {
			diff, err := sine.Sub(quad)
			Expect(err).NotTo(HaveOccurred())
			Expect(at(diff, 0)).To(BeNumerically("~", -0.1, 5e-4))
			Expect(at(diff, 2)).To(BeNumerically("~", 0.789, 5e-4))
		})

		It("multiplies", func() {
			prod, err := sine.Mul(quad)
			Expect(err).NotTo(HaveOccurred())
			Expect(at(prod, 0)).To(BeNumerically("~", 0, 5e-4))
			Expect(at(prod, 2)).To(BeNumerically("~", 0.109, 5e-4))
		})

		It("divides", func() {
			quot, err := sine.Div(quad)
			Expect(err).NotTo(HaveOccurred())
			Expect(at(quot, 0)).To(BeNumerically("~", 0, 5e-4))
			Expect(at(quot, 2)).To(BeNumerically("~", 7.57748, 5e-3))
		})

		It("resamples curves on different grids", func() {
			coarse, err := curves.CurveFromFunc(quadratic, 0, 3*math.Pi, "Coarse", curves.WithPoints(100))
			Expect(err).NotTo(HaveOccurred())
			sum, err := sine.Add(coarse)
			Expect(err).NotTo(HaveOccurred())
			Expect(at(sum, 0)).To(BeNumerically("~", 0.1, 5e-4))
			Expect(at(sum, 2)).To(BeNumerically("~", 1.029, 5e-3))
		})

		It("restricts resampling to the shared domain", func() {
			half, err := curves.CurveFromFunc(quadratic, math.Pi, 5*math.Pi, "Half")
			Expect(err).NotTo(HaveOccurred())
			sum, err := sine.Add(half)
			Expect(err).NotTo(HaveOccurred())
			lo, hi := sum.Domain()
			Expect(lo).To(BeNumerically("~", math.Pi, 1e-12))
			Expect(hi).To(BeNumerically("~", 3*math.Pi, 1e-12))
		})

		It("fails without overlap", func() {
			far, err := curves.CurveFromFunc(quadratic, 20, 30, "far")
			Expect(err).NotTo(HaveOccurred())
			_, err = sine.Add(far)
			Expect(err).To(MatchError(curves.ErrNoOverlap))
		})

		It("applies constants", func() {
			Expect(at(sine.AddConst(1), 0)).To(BeNumerically("~", 1, 1e-12))
			Expect(at(sine.MulConst(2), math.Pi/2)).To(BeNumerically("~", 2, 1e-3))
			Expect(at(quad.Pow(2), 0)).To(BeNumerically("~", 0.01, 1e-12))
		})
	})

	Describe("extrema", func() {
		It("reports the sampled maximum and minimum", func() {
			Expect(sine.Max()).To(BeNumerically("~", 1, 5e-4))
			Expect(sine.Min()).To(BeNumerically("~", -1, 5e-4))
		})
	})

	Describe("calculus", func() {
		It("integrates between bounds", func() {
			area, err := sine.AreaBetween(0, math.Pi)
			Expect(err).NotTo(HaveOccurred())
			Expect(area).To(BeNumerically("~", 2, 5e-4))
		})

		It("negates the area for swapped bounds", func() {
			area, err := sine.AreaBetween(math.Pi, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(area).To(BeNumerically("~", -2, 5e-4))
		})

		It("rejects bounds outside the domain", func() {
			_, err := sine.AreaBetween(0, 20)
			Expect(err).To(MatchError(curves.ErrOutOfDomain))
		})

		It("measures arc length", func() {
			length, err := sine.ArcLengthBetween(0, math.Pi)
			Expect(err).NotTo(HaveOccurred())
			Expect(length).To(BeNumerically("~", 3.820, 5e-4))
		})

		It("estimates the slope", func() {
			slope, err := sine.SlopeAt(math.Pi / 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(slope).To(BeNumerically("~", 0, 5e-6))
		})

		It("builds a derivative curve", func() {
			d, err := sine.DerivativeCurve()
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Label()).To(Equal("Test Curve derivative"))
			p, err := d.PointAtX(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Y).To(BeNumerically("~", math.Cos(1), 1e-3))
		})

		It("builds an integral curve", func() {
			ic, err := sine.IntegralCurve()
			Expect(err).NotTo(HaveOccurred())
			Expect(ic.Y()[0]).To(Equal(0.0))
			p, err := ic.PointAtX(math.Pi)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Y).To(BeNumerically("~", 2, 1e-3))
		})

		It("builds tangent and normal lines", func() {
			tangent, err := sine.TangentCurve(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(tangent.Label()).To(Equal("Tangent at x = 0.00"))
			p, err := tangent.PointAtX(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Y).To(BeNumerically("~", 1, 1e-3))

			normal, err := sine.NormalCurve(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(normal.Label()).To(Equal("Normal at x = 0.00"))
			p, err = normal.PointAtX(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Y).To(BeNumerically("~", -1, 1e-3))
		})

		It("draws a vertical normal at a flat point", func() {
			flat, err := curves.NewCurve([]float64{0, 1, 2}, []float64{1, 1, 3}, "flat")
			Expect(err).NotTo(HaveOccurred())
			normal, err := flat.NormalCurve(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(normal.X()).To(Equal([]float64{0, 0}))
			Expect(normal.Y()).To(Equal([]float64{1, 3}))
		})
	})

	Describe("error bars", func() {
		It("broadcasts a scalar", func() {
			c, err := sine.WithErrorbars(nil, []float64{0.1})
			Expect(err).NotTo(HaveOccurred())
			bars := c.Errorbars()
			Expect(bars.X).To(BeEmpty())
			Expect(bars.Y).To(HaveLen(200))
			Expect(bars.Y[199]).To(Equal(0.1))
			Expect(sine.Errorbars().HasErrorbars()).To(BeFalse())
		})

		It("rejects mismatched lengths", func() {
			_, err := sine.WithErrorbars([]float64{1, 2}, nil)
			Expect(err).To(MatchError(curves.ErrLength))
		})
	})
})
