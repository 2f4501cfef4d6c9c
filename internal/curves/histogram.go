package curves

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fit is a best-fit model over a curve's samples.
type Fit interface {
	Predict(x float64) float64
	Data() *Curve
}

// Residuals returns fitted minus actual y for every sample of the fitted curve.
func Residuals(f Fit) []float64 {
	data := f.Data()
	res := make([]float64, len(data.x))
	for i, x := range data.x {
		res[i] = f.Predict(x) - data.y[i]
	}
	return res
}

// Histogram bins a raw sample sequence. Statistics and bins are computed once
// at construction.
type Histogram struct {
	data       []float64
	bins       int
	label      string
	normalize  bool
	showParams bool

	mean, stdDev float64
	edges        []float64
	centers      []float64
	heights      []float64
	width        float64

	FaceColor string
	EdgeColor string
	HistType  string
	Alpha     float64
	LineWidth float64
	ShowPDF   string
}

// NewHistogram bins data into the given number of equal-width bins spanning
// its range. The last bin includes the maximum; a zero-width range is widened
// by 0.5 on each side.
func NewHistogram(data []float64, bins int, label string, opts ...Option) (*Histogram, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if bins < 1 {
		return nil, ErrBins
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	s := newSettings(opts)

	h := &Histogram{
		data:       append([]float64(nil), data...),
		bins:       bins,
		normalize:  s.normalize,
		showParams: s.showParams,
		FaceColor:  s.faceColor,
		EdgeColor:  s.edgeColor,
		HistType:   s.histType,
		Alpha:      s.alpha,
		LineWidth:  s.lineWidth,
		ShowPDF:    s.showPDF,
	}
	h.mean, h.stdDev = stat.PopMeanStdDev(h.data, nil)
	h.binData()
	h.label = h.buildLabel(label)
	return h, nil
}

// HistogramFromResiduals bins the residuals of a fit.
func HistogramFromResiduals(f Fit, bins int, label string, opts ...Option) (*Histogram, error) {
	return NewHistogram(Residuals(f), bins, label, opts...)
}

func (h *Histogram) binData() {
	sorted := append([]float64(nil), h.data...)
	slices.Sort(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h.edges = floats.Span(make([]float64, h.bins+1), lo, hi)
	dividers := append([]float64(nil), h.edges...)
	dividers[h.bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	h.width = h.edges[1] - h.edges[0]
	h.centers = make([]float64, h.bins)
	h.heights = make([]float64, h.bins)
	total := float64(len(sorted))
	for i := range counts {
		h.centers[i] = h.edges[i+1] - h.width/2
		h.heights[i] = counts[i]
		if h.normalize {
			h.heights[i] = counts[i] / (total * (h.edges[i+1] - h.edges[i]))
		}
	}
}

func (h *Histogram) buildLabel(label string) string {
	if !h.showParams {
		return label
	}
	if label != "" {
		label += " :\n"
	}
	return label + fmt.Sprintf("μ = %.3f, σ = %.3f", h.mean, h.stdDev)
}

func (h *Histogram) Label() string { return h.label }
func (h *Histogram) Data() []float64 { return append([]float64(nil), h.data...) }
func (h *Histogram) NumberOfBins() int { return h.bins }
func (h *Histogram) Normalized() bool { return h.normalize }
func (h *Histogram) ShowsParams() bool { return h.showParams }
func (h *Histogram) Mean() float64 { return h.mean }
func (h *Histogram) StdDev() float64 { return h.stdDev }
func (h *Histogram) BinWidth() float64 { return h.width }
func (h *Histogram) BinEdges() []float64 { return append([]float64(nil), h.edges...) }
func (h *Histogram) BinCenters() []float64 { return append([]float64(nil), h.centers...) }
func (h *Histogram) BinHeights() []float64 { return append([]float64(nil), h.heights...) }

// Domain spans the outer bin edges.
func (h *Histogram) Domain() (lo, hi float64) {
	return h.edges[0], h.edges[h.bins]
}

// ValuesAt returns the height of the bin holding each x, NaN outside the bins.
func (h *Histogram) ValuesAt(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.NaN()
		if x < h.edges[0] || x > h.edges[h.bins] {
			continue
		}
		j := int((x - h.edges[0]) / h.width)
		if j >= h.bins {
			j = h.bins - 1
		}
		out[i] = h.heights[j]
	}
	return out
}

// NormalPDF evaluates the normal distribution with the histogram's mean and
// standard deviation. Unnormalized histograms scale it to the bin counts.
func (h *Histogram) NormalPDF(x float64) float64 {
	p := distuv.Normal{Mu: h.mean, Sigma: h.stdDev}.Prob(x)
	if h.normalize {
		return p
	}
	return floats.Sum(h.heights) * h.width * p
}

// PDFCurve samples NormalPDF across the binned range.
func (h *Histogram) PDFCurve() (*Curve, error) {
	label := fmt.Sprintf("N(%.3f, %.3f)", h.mean, h.stdDev)
	return CurveFromFunc(h.NormalPDF, h.edges[0], h.edges[h.bins], label, WithColor(h.EdgeColor))
}
