package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/graphinglib/internal/curves"
	"github.com/san-kum/graphinglib/internal/figure"
	"github.com/san-kum/graphinglib/internal/fits"
	"github.com/san-kum/graphinglib/internal/storage"
	"github.com/san-kum/graphinglib/internal/viz"
)

func histogram(cmd *cobra.Command, args []string) error {
	data, err := storage.ReadColumn(args[0], xCol)
	if err != nil {
		return err
	}

	var opts []curves.Option
	if normalize {
		opts = append(opts, curves.Normalized())
	}
	h, err := curves.NewHistogram(data, bins, filepath.Base(args[0]), opts...)
	if err != nil {
		return err
	}

	st := styles()
	fmt.Println(st.Title.Render(h.Label()))
	fmt.Printf("%s %s  %s %s  %s %s  %s %d\n",
		st.Label.Render("μ"), st.Value.Render(fmt.Sprintf("%.4g", h.Mean())),
		st.Label.Render("σ"), st.Value.Render(fmt.Sprintf("%.4g", h.StdDev())),
		st.Label.Render("width"), st.Value.Render(fmt.Sprintf("%.4g", h.BinWidth())),
		st.Label.Render("n"), len(data),
	)
	fmt.Println(viz.Sparkline(h.BinHeights()))
	fmt.Println(viz.Separator(60))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if showPDF {
		fmt.Fprintln(w, "FROM\tTO\tHEIGHT\tNORMAL")
	} else {
		fmt.Fprintln(w, "FROM\tTO\tHEIGHT")
	}
	edges, centers, heights := h.BinEdges(), h.BinCenters(), h.BinHeights()
	for i := range heights {
		if showPDF {
			fmt.Fprintf(w, "%.4g\t%.4g\t%.4g\t%.4g\n", edges[i], edges[i+1], heights[i], h.NormalPDF(centers[i]))
			continue
		}
		fmt.Fprintf(w, "%.4g\t%.4g\t%.4g\n", edges[i], edges[i+1], heights[i])
	}
	return w.Flush()
}

func fitData(cmd *cobra.Command, args []string) error {
	x, y, err := storage.ReadColumns(args[0], xCol, yCol)
	if err != nil {
		return err
	}
	data, err := curves.NewCurve(x, y, filepath.Base(args[0]))
	if err != nil {
		return err
	}
	fit, err := fits.Polynomial(data, degree)
	if err != nil {
		return err
	}

	st := styles()
	fmt.Println(st.Title.Render(fit.Label()))
	fmt.Println(st.Value.Render(fit.String()))
	fmt.Printf("%s %s\n", st.Label.Render("R²"), st.Value.Render(fmt.Sprintf("%.6f", fit.RSquared())))

	res, err := curves.HistogramFromResiduals(fit, residualBins, "residuals")
	if err != nil {
		return err
	}
	fmt.Printf("%s μ = %.4g, σ = %.4g  %s\n",
		st.Label.Render("residuals"), res.Mean(), res.StdDev(), viz.Sparkline(res.BinHeights()))

	line, err := fit.Curve(len(x))
	if err != nil {
		return err
	}
	fig := figure.New(fit.Label(), nil)
	fig.Add(data, line)
	chart, err := fig.Terminal(80, 15, viz.GetTheme(theme).Series...)
	if err != nil {
		return err
	}
	fmt.Println(viz.Separator(60))
	fmt.Println(chart)
	return nil
}
