package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/graphinglib/internal/config"
	"github.com/san-kum/graphinglib/internal/curves"
	"github.com/san-kum/graphinglib/internal/figure"
	"github.com/san-kum/graphinglib/internal/functions"
	"github.com/san-kum/graphinglib/internal/storage"
	"github.com/san-kum/graphinglib/internal/tui"
	"github.com/san-kum/graphinglib/internal/viz"
)

func styles() viz.Styles { return viz.GetTheme(theme).Styles() }

func errStyle() lipgloss.Style { return styles().Error }

// overrides applies the render flags the user set.
func overrides(cmd *cobra.Command) func(*config.Figure) {
	return func(cfg *config.Figure) {
		if cmd.Flags().Lookup("width") == nil {
			return
		}
		if cmd.Flags().Changed("width") {
			cfg.Width = figWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.Height = figHeight
		}
		if cmd.Flags().Changed("style") {
			cfg.Style = styleName
		}
		if cmd.Flags().Changed("out") {
			cfg.Output = outPath
		}
	}
}

// loadFigure reads a figure file and applies command-line overrides.
func loadFigure(cmd *cobra.Command, path string) (*config.Figure, *figure.Figure, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load figure: %w", err)
	}
	overrides(cmd)(cfg)

	fig, err := figure.Build(cfg, functions.NewRegistry(), storage.New(dataDir))
	if err != nil {
		return nil, nil, err
	}
	return cfg, fig, nil
}

func renderFigure(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return renderBatch(cmd, args)
	}
	cfg, fig, err := loadFigure(cmd, args[0])
	if err != nil {
		return err
	}

	if terminal {
		chart, err := fig.Terminal(termCols, termRows, viz.GetTheme(theme).Series...)
		if err != nil {
			return err
		}
		fmt.Println(chart)
		return nil
	}
	if formatName != "" {
		return fig.Encode(os.Stdout, formatName)
	}

	out := cfg.Output
	if out == "" {
		out = "figure.png"
	}
	if err := fig.Save(out); err != nil {
		return err
	}
	st := styles()
	fmt.Println(st.Label.Render("wrote ") + st.Value.Render(out))
	return nil
}

func renderBatch(cmd *cobra.Command, paths []string) error {
	if terminal || formatName != "" || cmd.Flags().Changed("out") {
		return errors.New("--terminal, --format and --out take a single figure")
	}
	b := &figure.Batch{
		Store:    storage.New(dataDir),
		Workers:  workers,
		Override: overrides(cmd),
	}

	st := styles()
	failed := 0
	for _, r := range b.Render(cmd.Context(), paths) {
		if r.Err != nil {
			failed++
			fmt.Println(st.Error.Render(fmt.Sprintf("%s: %v", r.Config, r.Err)))
			continue
		}
		fmt.Println(st.Label.Render(r.Config+" -> ") + st.Value.Render(r.Output))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d figures failed", failed, len(paths))
	}
	return nil
}

// sampled collects the curves and scatters of a figure as curves.
func sampled(fig *figure.Figure) []*curves.Curve {
	var cs []*curves.Curve
	for _, el := range fig.Elements() {
		switch e := el.(type) {
		case *curves.Curve:
			cs = append(cs, e)
		case *curves.Scatter:
			cs = append(cs, e.AsCurve())
		}
	}
	return cs
}

func exploreFigure(cmd *cobra.Command, args []string) error {
	cfg, fig, err := loadFigure(cmd, args[0])
	if err != nil {
		return err
	}
	title := cfg.Title
	if title == "" {
		title = args[0]
	}
	return tui.Run(title, sampled(fig), theme)
}

func saveFigure(cmd *cobra.Command, args []string) error {
	_, fig, err := loadFigure(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tLABEL\tPOINTS")
	for _, el := range fig.Elements() {
		var kind string
		var series storage.Series
		switch e := el.(type) {
		case *curves.Curve:
			kind, series = config.KindCurve, e
		case *curves.Scatter:
			kind, series = config.KindScatter, e
		default:
			continue
		}
		meta, err := st.Save(kind, args[0], series)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", meta.ID, meta.Kind, meta.Label, meta.Points)
	}
	return w.Flush()
}

func listDatasets(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sets, err := st.List()
	if err != nil {
		return err
	}

	if len(sets) == 0 {
		fmt.Println("no datasets found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tLABEL\tCREATED\tPOINTS\tX RANGE\tY RANGE")
	for _, s := range sets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t[%.4g, %.4g]\t[%.4g, %.4g]\n",
			s.ID,
			s.Kind,
			s.Label,
			s.Created.Local().Format("2006-01-02 15:04:05"),
			s.Points,
			s.XMin, s.XMax,
			s.YMin, s.YMax,
		)
	}
	return w.Flush()
}

func showDataset(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if asJSON {
		return st.Export(os.Stdout, args[0])
	}

	c, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	fig := figure.New(c.Label(), nil)
	fig.Add(c)
	chart, err := fig.Terminal(80, 12, viz.GetTheme(theme).Series...)
	if err != nil {
		return err
	}
	fmt.Println(chart)
	return nil
}

func removeDataset(cmd *cobra.Command, args []string) error {
	if err := storage.New(dataDir).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

func listStyles(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBACKGROUND\tLINE\tMARKER\tHIST\tGRID\tTHEME")
	for _, name := range config.ListStyles() {
		s := config.GetStyle(name)
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\t%t\t%s\n",
			s.Name, s.Background, s.LineWidth, s.MarkerStyle, s.HistType, s.Grid, s.Theme)
	}
	return w.Flush()
}

func listFunctions(cmd *cobra.Command, args []string) error {
	reg := functions.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range reg.Names() {
		doc, err := reg.Describe(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, doc)
	}
	return w.Flush()
}
