package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Style holds the values that "default" cosmetics resolve to.
type Style struct {
	Name        string   `yaml:"name"`
	Background  string   `yaml:"background"`
	Foreground  string   `yaml:"foreground"`
	ColorCycle  []string `yaml:"color_cycle"`
	LineWidth   float64  `yaml:"line_width"`
	MarkerSize  float64  `yaml:"marker_size"`
	MarkerStyle string   `yaml:"marker_style"`
	EdgeColor   string   `yaml:"edge_color"`
	HistType    string   `yaml:"hist_type"`
	HistAlpha   float64  `yaml:"hist_alpha"`
	Grid        bool     `yaml:"grid"`
	Theme       string   `yaml:"theme"`
}

// ResolveStyle returns a preset by name, or loads a style file when name
// ends in .yaml or .yml.
func ResolveStyle(name string) (*Style, error) {
	if name == "" || name == "default" {
		name = DefaultStyle
	}
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return LoadStyle(name)
	}
	st := GetStyle(name)
	if st == nil {
		return nil, fmt.Errorf("unknown style: %s (available: %v)", name, ListStyles())
	}
	return st, nil
}

// LoadStyle reads a style file; unset fields fall back to the default preset.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	st := GetStyle(DefaultStyle)
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, err
	}
	return st, nil
}

// CycleColor returns the index-th color of the cycle, wrapping around.
func (s *Style) CycleColor(index int) color.Color {
	if len(s.ColorCycle) == 0 {
		return color.Black
	}
	c, err := ParseColor(s.ColorCycle[index%len(s.ColorCycle)])
	if err != nil {
		return color.Black
	}
	return c
}

// Color resolves a color name, using the cycle for "" and "default".
func (s *Style) Color(name string, index int) (color.Color, error) {
	if isDefault(name) {
		return s.CycleColor(index), nil
	}
	return ParseColor(name)
}

// Edge resolves an edge color, falling back to the style's edge color.
func (s *Style) Edge(name string, index int) (color.Color, error) {
	if isDefault(name) {
		return s.Color(s.EdgeColor, index)
	}
	return ParseColor(name)
}

func isDefault(name string) bool {
	return name == "" || strings.EqualFold(name, "default")
}

// single-letter matplotlib colors
var shortColors = map[string]color.Color{
	"b": color.RGBA{0, 0, 255, 255},
	"g": color.RGBA{0, 128, 0, 255},
	"r": color.RGBA{255, 0, 0, 255},
	"c": color.RGBA{0, 191, 191, 255},
	"m": color.RGBA{191, 0, 191, 255},
	"y": color.RGBA{191, 191, 0, 255},
	"k": color.RGBA{0, 0, 0, 255},
	"w": color.RGBA{255, 255, 255, 255},
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa", a single matplotlib
// letter, "none", or any SVG/CSS color name.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	if name == "none" || name == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := shortColors[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color: %q", s)
}

func parseHex(hex string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid hex color: #%s", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color: #%s", hex)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// WithAlpha returns c with its opacity replaced by alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 || alpha > 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*255 + 0.5)
	return n
}
