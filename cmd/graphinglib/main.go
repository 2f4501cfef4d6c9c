package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	dataDir string
	theme   string

	// render
	outPath    string
	figWidth   float64
	figHeight  float64
	styleName  string
	terminal   bool
	termCols   int
	termRows   int
	formatName string
	workers    int

	// curve sources
	function   string
	params     map[string]string
	xMin       float64
	xMax       float64
	points     int
	csvPath    string
	xCol       int
	yCol       int
	dataset    string
	interpName string

	// intersect
	withFunction string
	withParams   map[string]string

	// hist / fit
	bins         int
	normalize    bool
	showPDF      bool
	degree       int
	residualBins int
	asJSON       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "graphinglib",
		Short:        "curves, scatters and histograms from the command line",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".graphinglib", "dataset directory")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "terminal theme")

	renderCmd := &cobra.Command{
		Use:   "render [figure.yaml]...",
		Short: "render figure descriptions to images or the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE:  renderFigure,
	}
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (extension picks the format)")
	renderCmd.Flags().StringVar(&formatName, "format", "", "write to stdout in this format (png, svg, pdf, ...)")
	renderCmd.Flags().Float64Var(&figWidth, "width", 0, "figure width in inches")
	renderCmd.Flags().Float64Var(&figHeight, "height", 0, "figure height in inches")
	renderCmd.Flags().StringVar(&styleName, "style", "", "style preset or style file")
	renderCmd.Flags().BoolVarP(&terminal, "terminal", "t", false, "draw in the terminal")
	renderCmd.Flags().IntVar(&termCols, "cols", 80, "terminal chart width")
	renderCmd.Flags().IntVar(&termRows, "rows", 15, "terminal chart height")
	renderCmd.Flags().IntVarP(&workers, "workers", "j", 0, "concurrent renders when given several files (0 = one per CPU)")

	exploreCmd := &cobra.Command{
		Use:   "explore [figure.yaml]",
		Short: "walk along the curves of a figure interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  exploreFigure,
	}

	saveCmd := &cobra.Command{
		Use:   "save [figure.yaml]",
		Short: "store the samples of every curve and scatter in a figure",
		Args:  cobra.ExactArgs(1),
		RunE:  saveFigure,
	}

	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "list stored datasets",
		RunE:  listDatasets,
	}
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "print a stored dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  showDataset,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "delete a stored dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  removeDataset,
	}
	datasetsCmd.AddCommand(showCmd, rmCmd)

	histCmd := &cobra.Command{
		Use:   "hist [data.csv]",
		Short: "bin one column of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  histogram,
	}
	histCmd.Flags().IntVar(&xCol, "col", 0, "column index")
	histCmd.Flags().IntVar(&bins, "bins", 20, "number of bins")
	histCmd.Flags().BoolVar(&normalize, "normalize", false, "show densities instead of counts")
	histCmd.Flags().BoolVar(&showPDF, "pdf", false, "compare bins with the fitted normal distribution")

	fitCmd := &cobra.Command{
		Use:   "fit [data.csv]",
		Short: "least-squares polynomial fit of two CSV columns",
		Args:  cobra.ExactArgs(1),
		RunE:  fitData,
	}
	fitCmd.Flags().IntVar(&degree, "degree", 1, "polynomial degree")
	fitCmd.Flags().IntVar(&xCol, "xcol", 0, "x column index")
	fitCmd.Flags().IntVar(&yCol, "ycol", 1, "y column index")
	fitCmd.Flags().IntVar(&residualBins, "bins", 10, "residual histogram bins")

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "list style presets",
		RunE:  listStyles,
	}

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "list generating functions",
		RunE:  listFunctions,
	}

	rootCmd.AddCommand(renderCmd, exploreCmd, saveCmd, datasetsCmd, histCmd, fitCmd, curveCommand(), stylesCmd, functionsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errStyle().Render("error: "+err.Error()))
		os.Exit(1)
	}
}
