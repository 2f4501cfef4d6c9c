package figure

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/san-kum/graphinglib/internal/config"
	"github.com/san-kum/graphinglib/internal/curves"
	"github.com/san-kum/graphinglib/internal/fits"
	"github.com/san-kum/graphinglib/internal/functions"
	"github.com/san-kum/graphinglib/internal/storage"
)

var ErrNoStore = errors.New("figure: dataset requested without a store")

// node is a built element plus the fit behind it, if any.
type node struct {
	element Element
	fit     curves.Fit
}

type builder struct {
	reg   *functions.Registry
	store *storage.Store
	nodes map[string]node
}

// Build turns a figure description into a Figure. Elements may refer to
// earlier ones by label. store may be nil when no element names a dataset.
func Build(cfg *config.Figure, reg *functions.Registry, store *storage.Store) (*Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	st, err := config.ResolveStyle(cfg.Style)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		reg = functions.NewRegistry()
	}

	f := New(cfg.Title, st)
	f.XLabel = cfg.XLabel
	f.YLabel = cfg.YLabel
	f.Width = cfg.Width
	f.Height = cfg.Height

	b := &builder{reg: reg, store: store, nodes: make(map[string]node)}
	for i, el := range cfg.Elements {
		n, err := b.build(el)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s %s): %w", i, el.Kind, el.Label, err)
		}
		if el.Label != "" {
			if _, dup := b.nodes[el.Label]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, el.Label)
			}
			b.nodes[el.Label] = n
		}
		f.Add(n.element)
	}
	return f, nil
}

func (b *builder) build(el config.Element) (node, error) {
	opts, err := options(el)
	if err != nil {
		return node{}, err
	}

	switch el.Kind {
	case config.KindCurve:
		x, y, name, err := b.source(el)
		if err != nil {
			return node{}, err
		}
		c, err := curves.NewCurve(x, y, labelOr(el, name), opts...)
		if err != nil {
			return node{}, err
		}
		xe, ye, err := el.Errorbars.Values()
		if err != nil {
			return node{}, err
		}
		if c, err = c.WithErrorbars(xe, ye); err != nil {
			return node{}, err
		}
		return node{element: c}, nil

	case config.KindScatter:
		x, y, name, err := b.source(el)
		if err != nil {
			return node{}, err
		}
		s, err := curves.NewScatter(x, y, labelOr(el, name), opts...)
		if err != nil {
			return node{}, err
		}
		xe, ye, err := el.Errorbars.Values()
		if err != nil {
			return node{}, err
		}
		if s, err = s.WithErrorbars(xe, ye); err != nil {
			return node{}, err
		}
		return node{element: s}, nil

	case config.KindHistogram:
		data, name, err := b.histogramData(el)
		if err != nil {
			return node{}, err
		}
		h, err := curves.NewHistogram(data, el.Bins, labelOr(el, name), opts...)
		if err != nil {
			return node{}, err
		}
		return node{element: h}, nil

	case config.KindFit:
		c, err := b.curveOf(el.Of)
		if err != nil {
			return node{}, err
		}
		fit, err := fits.Polynomial(c, el.Degree)
		if err != nil {
			return node{}, err
		}
		fc, err := fit.Curve(el.Points)
		if err != nil {
			return node{}, err
		}
		return node{element: styled(fc, el), fit: fit}, nil

	case config.KindResiduals:
		n, err := b.lookup(el.Of)
		if err != nil {
			return node{}, err
		}
		if n.fit == nil {
			return node{}, fmt.Errorf("%q is not a fit", el.Of)
		}
		h, err := curves.HistogramFromResiduals(n.fit, el.Bins, labelOr(el, "Residuals"), opts...)
		if err != nil {
			return node{}, err
		}
		return node{element: h}, nil

	case config.KindDerivative, config.KindIntegral, config.KindTangent, config.KindNormal:
		c, err := b.curveOf(el.Of)
		if err != nil {
			return node{}, err
		}
		var derived *curves.Curve
		switch el.Kind {
		case config.KindDerivative:
			derived, err = c.DerivativeCurve()
		case config.KindIntegral:
			derived, err = c.IntegralCurve()
		case config.KindTangent:
			derived, err = c.TangentCurve(el.At)
		default:
			derived, err = c.NormalCurve(el.At)
		}
		if err != nil {
			return node{}, err
		}
		return node{element: styled(derived, el)}, nil

	case config.KindSum, config.KindDifference, config.KindProduct, config.KindQuotient:
		return b.arithmetic(el)
	}
	return node{}, fmt.Errorf("%w: unknown kind %q", config.ErrInvalidElement, el.Kind)
}

func (b *builder) arithmetic(el config.Element) (node, error) {
	a, err := b.lookup(el.Of)
	if err != nil {
		return node{}, err
	}
	o, err := b.lookup(el.With)
	if err != nil {
		return node{}, err
	}

	sa, aok := a.element.(*curves.Scatter)
	so, ook := o.element.(*curves.Scatter)
	if aok && ook {
		var s *curves.Scatter
		switch el.Kind {
		case config.KindSum:
			s, err = sa.Add(so)
		case config.KindDifference:
			s, err = sa.Sub(so)
		case config.KindProduct:
			s, err = sa.Mul(so)
		default:
			s, err = sa.Div(so)
		}
		if err != nil {
			return node{}, err
		}
		if el.Label != "" {
			s = s.WithLabel(el.Label)
		}
		return node{element: s}, nil
	}

	ca, err := asCurve(el.Of, a)
	if err != nil {
		return node{}, err
	}
	co, err := asCurve(el.With, o)
	if err != nil {
		return node{}, err
	}
	var c *curves.Curve
	switch el.Kind {
	case config.KindSum:
		c, err = ca.Add(co)
	case config.KindDifference:
		c, err = ca.Sub(co)
	case config.KindProduct:
		c, err = ca.Mul(co)
	default:
		c, err = ca.Div(co)
	}
	if err != nil {
		return node{}, err
	}
	return node{element: styled(c, el)}, nil
}

// source loads the (x, y) samples of a curve or scatter element and a
// fallback label.
func (b *builder) source(el config.Element) (x, y []float64, name string, err error) {
	switch {
	case el.Function != "":
		f, err := b.reg.Get(el.Function, el.Params)
		if err != nil {
			return nil, nil, "", err
		}
		c, err := curves.CurveFromFunc(f, el.XMin, el.XMax, el.Function, curves.WithPoints(el.Points))
		if err != nil {
			return nil, nil, "", err
		}
		return c.X(), c.Y(), el.Function, nil

	case el.Data.Path != "":
		x, y, err := storage.ReadColumns(el.Data.Path, el.Data.XColumn, el.Data.YColumn)
		if err != nil {
			return nil, nil, "", err
		}
		return x, y, filepath.Base(el.Data.Path), nil

	case el.Dataset != "":
		if b.store == nil {
			return nil, nil, "", ErrNoStore
		}
		meta, err := b.store.Load(el.Dataset)
		if err != nil {
			return nil, nil, "", err
		}
		x, y, err := b.store.LoadSamples(el.Dataset)
		if err != nil {
			return nil, nil, "", err
		}
		return x, y, meta.Label, nil
	}
	return nil, nil, "", fmt.Errorf("%w: no source", config.ErrInvalidElement)
}

// histogramData reads the x_column of a data file, or the y samples of an
// earlier curve or scatter.
func (b *builder) histogramData(el config.Element) ([]float64, string, error) {
	if el.Data.Path != "" {
		data, err := storage.ReadColumn(el.Data.Path, el.Data.XColumn)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(el.Data.Path), nil
	}
	c, err := b.curveOf(el.Of)
	if err != nil {
		return nil, "", err
	}
	return c.Y(), c.Label(), nil
}

func (b *builder) lookup(label string) (node, error) {
	n, ok := b.nodes[label]
	if !ok {
		return node{}, fmt.Errorf("%w: unknown element %q", config.ErrInvalidElement, label)
	}
	return n, nil
}

func (b *builder) curveOf(label string) (*curves.Curve, error) {
	n, err := b.lookup(label)
	if err != nil {
		return nil, err
	}
	return asCurve(label, n)
}

func asCurve(label string, n node) (*curves.Curve, error) {
	switch e := n.element.(type) {
	case *curves.Curve:
		return e, nil
	case *curves.Scatter:
		return e.AsCurve(), nil
	}
	return nil, fmt.Errorf("%q is not a curve or scatter", label)
}

func labelOr(el config.Element, fallback string) string {
	if el.Label != "" {
		return el.Label
	}
	return fallback
}

// styled relabels a derived curve and applies any cosmetics the element sets.
func styled(c *curves.Curve, el config.Element) *curves.Curve {
	if el.Label != "" {
		c = c.WithLabel(el.Label)
	}
	if el.Color != "" {
		c.Color = el.Color
	}
	if el.LineWidth > 0 {
		c.LineWidth = el.LineWidth
	}
	if ls, err := curves.ParseLineStyle(el.LineStyle); err == nil && el.LineStyle != "" {
		c.LineStyle = ls
	}
	return c
}

func options(el config.Element) ([]curves.Option, error) {
	method, err := curves.ParseInterpolation(el.Interpolation)
	if err != nil {
		return nil, err
	}
	ls, err := curves.ParseLineStyle(el.LineStyle)
	if err != nil {
		return nil, err
	}

	opts := []curves.Option{
		curves.WithPoints(el.Points),
		curves.WithInterpolation(method),
		curves.WithColor(el.Color),
		curves.WithLineWidth(el.LineWidth),
		curves.WithLineStyle(ls),
		curves.WithFaceColor(el.FaceColor),
		curves.WithEdgeColor(el.EdgeColor),
		curves.WithMarkerSize(el.MarkerSize),
		curves.WithMarkerStyle(el.MarkerStyle),
		curves.WithHistType(el.HistType),
		curves.WithAlpha(el.Alpha),
		curves.WithPDF(el.ShowPDF),
	}
	if el.Normalize {
		opts = append(opts, curves.Normalized())
	}
	if el.ShowParams {
		opts = append(opts, curves.WithParams())
	}
	return opts, nil
}
