package curves_test

import (
	"math"
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/graphinglib/internal/curves"
)

type lineFit struct {
	data *curves.Curve
}

func (f lineFit) Predict(x float64) float64 { return 2 * x }
func (f lineFit) Data() *curves.Curve       { return f.data }

func randomData(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return data
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

var _ = Describe("Histogram", func() {
	var data []float64

	BeforeEach(func() {
		data = randomData(100)
	})

	It("bins every value", func() {
		h, err := curves.NewHistogram(data, 20, "Random Distribution")
		Expect(err).NotTo(HaveOccurred())
		Expect(h.NumberOfBins()).To(Equal(20))
		Expect(h.BinHeights()).To(HaveLen(20))
		Expect(h.BinCenters()).To(HaveLen(20))
		Expect(h.BinEdges()).To(HaveLen(21))
		Expect(sum(h.BinHeights())).To(Equal(100.0))
		Expect(h.Label()).To(Equal("Random Distribution"))
	})

	It("includes the maximum in the last bin", func() {
		h, err := curves.NewHistogram([]float64{0, 1, 2, 3}, 3, "edges")
		Expect(err).NotTo(HaveOccurred())
		Expect(h.BinEdges()).To(Equal([]float64{0, 1, 2, 3}))
		Expect(h.BinHeights()).To(Equal([]float64{1, 1, 2}))
		Expect(h.BinCenters()).To(Equal([]float64{0.5, 1.5, 2.5}))
		Expect(h.BinWidth()).To(Equal(1.0))
	})

	It("normalizes to unit area", func() {
		h, err := curves.NewHistogram(data, 20, "density", curves.Normalized())
		Expect(err).NotTo(HaveOccurred())
		Expect(h.Normalized()).To(BeTrue())
		Expect(sum(h.BinHeights()) * h.BinWidth()).To(BeNumerically("~", 1, 1e-9))
	})

	It("computes population statistics", func() {
		h, err := curves.NewHistogram([]float64{1, 2, 3, 4}, 2, "stats")
		Expect(err).NotTo(HaveOccurred())
		Expect(h.Mean()).To(BeNumerically("~", 2.5, 1e-12))
		Expect(h.StdDev()).To(BeNumerically("~", math.Sqrt(1.25), 1e-12))
	})

	It("appends the parameters to the label", func() {
		h, err := curves.NewHistogram(data, 20, "Random Distribution", curves.WithParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(h.ShowsParams()).To(BeTrue())
		Expect(strings.HasPrefix(h.Label(), "Random Distribution :\nμ = ")).To(BeTrue())
		Expect(h.Label()).To(ContainSubstring("σ = "))
	})

	It("widens a zero-width range", func() {
		h, err := curves.NewHistogram([]float64{2, 2, 2}, 4, "flat")
		Expect(err).NotTo(HaveOccurred())
		lo, hi := h.Domain()
		Expect(lo).To(Equal(1.5))
		Expect(hi).To(Equal(2.5))
		Expect(sum(h.BinHeights())).To(Equal(3.0))
	})

	It("rejects bad input", func() {
		_, err := curves.NewHistogram(nil, 10, "empty")
		Expect(err).To(MatchError(curves.ErrEmpty))
		_, err = curves.NewHistogram(data, 0, "no bins")
		Expect(err).To(MatchError(curves.ErrBins))
		_, err = curves.NewHistogram([]float64{1, math.NaN()}, 2, "nan")
		Expect(err).To(MatchError(curves.ErrNonFinite))
		_, err = curves.NewHistogram([]float64{1, 2, math.Inf(1)}, 5, "inf")
		Expect(err).To(MatchError(curves.ErrNonFinite))
		_, err = curves.NewHistogram([]float64{math.Inf(-1), 2}, 5, "-inf")
		Expect(err).To(MatchError(curves.ErrNonFinite))
	})

	It("looks up bin heights", func() {
		h, err := curves.NewHistogram([]float64{0, 1, 2, 3}, 3, "edges")
		Expect(err).NotTo(HaveOccurred())
		v := h.ValuesAt([]float64{-1, 0.5, 2.5, 3, 4})
		Expect(math.IsNaN(v[0])).To(BeTrue())
		Expect(v[1:4]).To(Equal([]float64{1, 2, 2}))
		Expect(math.IsNaN(v[4])).To(BeTrue())
	})

	It("evaluates the fitted normal distribution", func() {
		h, err := curves.NewHistogram(data, 20, "density", curves.Normalized())
		Expect(err).NotTo(HaveOccurred())
		peak := 1 / (h.StdDev() * math.Sqrt(2*math.Pi))
		Expect(h.NormalPDF(h.Mean())).To(BeNumerically("~", peak, 1e-12))

		pdf, err := h.PDFCurve()
		Expect(err).NotTo(HaveOccurred())
		Expect(pdf.Label()).To(HavePrefix("N("))
		Expect(pdf.Len()).To(Equal(curves.DefaultPoints))
	})

	It("scales the pdf to counts when not normalized", func() {
		h, err := curves.NewHistogram(data, 20, "counts")
		Expect(err).NotTo(HaveOccurred())
		peak := 100 * h.BinWidth() / (h.StdDev() * math.Sqrt(2*math.Pi))
		Expect(h.NormalPDF(h.Mean())).To(BeNumerically("~", peak, 1e-9))
	})

	Describe("residuals", func() {
		var fit lineFit

		BeforeEach(func() {
			x := []float64{0, 1, 2, 3}
			y := []float64{0.1, 1.9, 4.1, 5.9}
			c, err := curves.NewCurve(x, y, "data")
			Expect(err).NotTo(HaveOccurred())
			fit = lineFit{data: c}
		})

		It("subtracts the data from the prediction", func() {
			res := curves.Residuals(fit)
			want := []float64{-0.1, 0.1, -0.1, 0.1}
			for i := range want {
				Expect(res[i]).To(BeNumerically("~", want[i], 1e-12))
			}
		})

		It("bins the residuals", func() {
			h, err := curves.HistogramFromResiduals(fit, 2, "Residuals")
			Expect(err).NotTo(HaveOccurred())
			Expect(h.BinHeights()).To(Equal([]float64{2, 2}))
			Expect(h.Mean()).To(BeNumerically("~", 0, 1e-12))
		})
	})
})
