package curves_test

import (
	"bytes"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/graphinglib/internal/config"
	"github.com/san-kum/graphinglib/internal/curves"
)

func renderSVG(p *plot.Plot) string {
	GinkgoHelper()
	w, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "svg")
	Expect(err).NotTo(HaveOccurred())
	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	Expect(err).NotTo(HaveOccurred())
	return buf.String()
}

var _ = Describe("Plot", func() {
	var (
		p     *plot.Plot
		style *config.Style
	)

	BeforeEach(func() {
		p = plot.New()
		style = config.GetStyle("plain")
	})

	It("draws a dashed curve with error bars", func() {
		c, err := curves.CurveFromFunc(math.Sin, 0, math.Pi, "sine", curves.WithPoints(20), curves.WithLineStyle(curves.Dashed))
		Expect(err).NotTo(HaveOccurred())
		c, err = c.WithErrorbars([]float64{0.05}, []float64{0.1})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Plot(p, style, 0)).To(Succeed())
		Expect(renderSVG(p)).To(ContainSubstring("<svg"))
	})

	It("draws every marker style", func() {
		for _, marker := range []string{"o", "s", "^", "v", "d", "+", "x"} {
			s, err := curves.ScatterFromFunc(math.Cos, 0, 1, marker, curves.WithPoints(5), curves.WithMarkerStyle(marker))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Plot(p, style, 1)).To(Succeed())
		}
		Expect(renderSVG(p)).To(ContainSubstring("<svg"))
	})

	It("draws distinct shapes for each marker", func() {
		markerSVG := func(marker string) string {
			q := plot.New()
			s, err := curves.NewScatter([]float64{0, 1}, []float64{0, 1}, "m", curves.WithMarkerStyle(marker))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Plot(q, style, 0)).To(Succeed())
			return renderSVG(q)
		}
		Expect(markerSVG("v")).NotTo(Equal(markerSVG("^")))
		Expect(markerSVG("d")).NotTo(Equal(markerSVG("s")))
		Expect(markerSVG("v")).To(Equal(markerSVG("v")))
	})

	It("rejects unknown markers and colors", func() {
		s, err := curves.NewScatter([]float64{0, 1}, []float64{0, 1}, "bad", curves.WithMarkerStyle("*"))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Plot(p, style, 0)).To(MatchError(ContainSubstring("unknown marker style")))

		c, err := curves.NewCurve([]float64{0, 1}, []float64{0, 1}, "bad", curves.WithColor("not-a-color"))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Plot(p, style, 0)).NotTo(Succeed())
	})

	It("draws each histogram type with a normal overlay", func() {
		for _, kind := range []string{"bar", "step", "stepfilled"} {
			h, err := curves.NewHistogram(randomData(50), 10, kind, curves.WithHistType(kind), curves.WithPDF("normal"))
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Plot(p, style, 0)).To(Succeed())
		}
		Expect(renderSVG(p)).To(ContainSubstring("<svg"))
	})

	It("rejects an unknown histogram type", func() {
		h, err := curves.NewHistogram(randomData(10), 3, "bad", curves.WithHistType("pie"))
		Expect(err).NotTo(HaveOccurred())
		Expect(h.Plot(p, style, 0)).To(MatchError(ContainSubstring("unknown hist type")))
	})
})
