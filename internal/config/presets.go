package config

import "sort"

var tableau = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var Presets = map[string]*Style{
	"plain": {
		Name:        "plain",
		Background:  "white",
		Foreground:  "black",
		ColorCycle:  tableau,
		LineWidth:   1.5,
		MarkerSize:  3,
		MarkerStyle: "o",
		EdgeColor:   "k",
		HistType:    "stepfilled",
		HistAlpha:   0.4,
	},
	"dark": {
		Name:        "dark",
		Background:  "#0a0a0a",
		Foreground:  "#e0e0e0",
		ColorCycle:  []string{"#00ffff", "#ff00ff", "#ffff00", "#00ff88", "#ff8800", "#8888ff"},
		LineWidth:   1.5,
		MarkerSize:  3,
		MarkerStyle: "o",
		EdgeColor:   "w",
		HistType:    "stepfilled",
		HistAlpha:   0.5,
		Grid:        true,
		Theme:       "cyberpunk",
	},
	"mono": {
		Name:        "mono",
		Background:  "white",
		Foreground:  "black",
		ColorCycle:  []string{"black", "dimgray", "gray", "darkgray"},
		LineWidth:   1,
		MarkerSize:  2.5,
		MarkerStyle: "s",
		EdgeColor:   "k",
		HistType:    "bar",
		HistAlpha:   0.3,
		Theme:       "minimal",
	},
	"science": {
		Name:        "science",
		Background:  "white",
		Foreground:  "black",
		ColorCycle:  []string{"#0c5da5", "#00b945", "#ff9500", "#ff2c00", "#845b97", "#474747"},
		LineWidth:   1,
		MarkerSize:  2,
		MarkerStyle: "o",
		EdgeColor:   "k",
		HistType:    "step",
		HistAlpha:   0.6,
		Grid:        true,
		Theme:       "ocean",
	},
}

// GetStyle returns a copy of the named preset, or nil.
func GetStyle(name string) *Style {
	st, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *st
	cp.ColorCycle = append([]string(nil), st.ColorCycle...)
	return &cp
}

func ListStyles() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
