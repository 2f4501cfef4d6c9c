package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/san-kum/graphinglib/internal/config"
	"github.com/san-kum/graphinglib/internal/curves"
	"github.com/san-kum/graphinglib/internal/figure"
	"github.com/san-kum/graphinglib/internal/functions"
	"github.com/san-kum/graphinglib/internal/storage"
	"github.com/san-kum/graphinglib/internal/viz"
)

var errNoSource = errors.New("one of --function, --csv or --dataset is required")

func curveCommand() *cobra.Command {
	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "query a single curve",
	}
	f := curveCmd.PersistentFlags()
	f.StringVarP(&function, "function", "f", "", "generating function")
	f.StringToStringVar(&params, "params", nil, "function parameters (a=1,b=2)")
	f.Float64Var(&xMin, "xmin", 0, "lower x bound")
	f.Float64Var(&xMax, "xmax", 10, "upper x bound")
	f.IntVar(&points, "points", config.DefaultPoints, "number of samples")
	f.StringVar(&csvPath, "csv", "", "read samples from a CSV file")
	f.IntVar(&xCol, "xcol", 0, "x column index")
	f.IntVar(&yCol, "ycol", 1, "y column index")
	f.StringVar(&dataset, "dataset", "", "stored dataset id")
	f.StringVar(&interpName, "interp", "linear", "interpolation (linear, akima, fritsch-butland, cubic)")

	atXCmd := &cobra.Command{
		Use:   "at-x [x]",
		Short: "y value at x",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := floatArgs(args)
			if err != nil {
				return err
			}
			c, err := loadCurve()
			if err != nil {
				return err
			}
			p, err := c.PointAtX(x[0])
			if err != nil {
				return err
			}
			printPoints(p)
			return nil
		},
	}

	atYCmd := &cobra.Command{
		Use:   "at-y [y]",
		Short: "every point where the curve reaches y",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := floatArgs(args)
			if err != nil {
				return err
			}
			c, err := loadCurve()
			if err != nil {
				return err
			}
			pts, err := c.PointsAtY(y[0])
			if err != nil {
				return err
			}
			printPoints(pts...)
			return nil
		},
	}

	slopeCmd := &cobra.Command{
		Use:   "slope [x]",
		Short: "slope of the curve at x",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := floatArgs(args)
			if err != nil {
				return err
			}
			c, err := loadCurve()
			if err != nil {
				return err
			}
			m, err := c.SlopeAt(x[0])
			if err != nil {
				return err
			}
			printValue("slope", m)
			return nil
		},
	}

	areaCmd := &cobra.Command{
		Use:   "area [x1] [x2]",
		Short: "signed area under the curve between x1 and x2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return between(args, "area", (*curves.Curve).AreaBetween)
		},
	}

	arcCmd := &cobra.Command{
		Use:   "arclength [x1] [x2]",
		Short: "length of the curve between x1 and x2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return between(args, "arc length", (*curves.Curve).ArcLengthBetween)
		},
	}

	extremaCmd := &cobra.Command{
		Use:   "extrema",
		Short: "minimum and maximum sampled y",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCurve()
			if err != nil {
				return err
			}
			lo, hi := c.Domain()
			printValue("min", c.Min())
			printValue("max", c.Max())
			printValue("x min", lo)
			printValue("x max", hi)
			return nil
		},
	}

	intersectCmd := &cobra.Command{
		Use:   "intersect",
		Short: "points where the curve crosses another function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if withFunction == "" {
				return errors.New("--with-function is required")
			}
			c, err := loadCurve()
			if err != nil {
				return err
			}
			lo, hi := c.Domain()
			other, err := functionCurve(withFunction, withParams, lo, hi)
			if err != nil {
				return err
			}
			pts, err := c.Intersection(other)
			if err != nil {
				return err
			}
			printPoints(pts...)
			return nil
		},
	}
	intersectCmd.Flags().StringVar(&withFunction, "with-function", "", "function to intersect with")
	intersectCmd.Flags().StringToStringVar(&withParams, "with-params", nil, "parameters of the other function")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "draw the curve in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCurve()
			if err != nil {
				return err
			}
			fig := figure.New(c.Label(), nil)
			fig.Add(c)
			chart, err := fig.Terminal(termCols, termRows, viz.GetTheme(theme).Series...)
			if err != nil {
				return err
			}
			fmt.Println(chart)
			return nil
		},
	}
	plotCmd.Flags().IntVar(&termCols, "cols", 80, "chart width")
	plotCmd.Flags().IntVar(&termRows, "rows", 15, "chart height")

	curveCmd.AddCommand(atXCmd, atYCmd, slopeCmd, areaCmd, arcCmd, extremaCmd, intersectCmd, plotCmd)
	return curveCmd
}

// loadCurve builds the curve selected by the source flags.
func loadCurve() (*curves.Curve, error) {
	method, err := curves.ParseInterpolation(interpName)
	if err != nil {
		return nil, err
	}
	opt := curves.WithInterpolation(method)

	switch {
	case function != "":
		return functionCurve(function, params, xMin, xMax, opt)
	case csvPath != "":
		x, y, err := storage.ReadColumns(csvPath, xCol, yCol)
		if err != nil {
			return nil, err
		}
		return curves.NewCurve(x, y, filepath.Base(csvPath), opt)
	case dataset != "":
		return storage.New(dataDir).LoadCurve(dataset, opt)
	}
	return nil, errNoSource
}

func functionCurve(name string, raw map[string]string, lo, hi float64, opts ...curves.Option) (*curves.Curve, error) {
	p := make(map[string]float64, len(raw))
	for k, v := range raw {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		p[k] = f
	}
	fn, err := functions.NewRegistry().Get(name, p)
	if err != nil {
		return nil, err
	}
	opts = append(opts, curves.WithPoints(points))
	return curves.CurveFromFunc(fn, lo, hi, name, opts...)
}

func between(args []string, name string, op func(*curves.Curve, float64, float64) (float64, error)) error {
	x, err := floatArgs(args)
	if err != nil {
		return err
	}
	c, err := loadCurve()
	if err != nil {
		return err
	}
	v, err := op(c, x[0], x[1])
	if err != nil {
		return err
	}
	printValue(name, v)
	return nil
}

func floatArgs(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func printValue(label string, v float64) {
	st := styles()
	fmt.Printf("%s %s\n", st.Label.Render(label), st.Value.Render(strconv.FormatFloat(v, 'g', 8, 64)))
}

func printPoints(pts ...curves.Point) {
	if len(pts) == 0 {
		fmt.Println(styles().Muted.Render("no points"))
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X\tY")
	for _, p := range pts {
		fmt.Fprintf(w, "%.8g\t%.8g\n", p.X, p.Y)
	}
	w.Flush()
}
