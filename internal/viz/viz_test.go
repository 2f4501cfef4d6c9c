package viz

import (
	"strings"
	"testing"
)

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nonexistent").Name != "cyberpunk" {
		t.Error("expected cyberpunk fallback")
	}
	for _, th := range Themes {
		if len(th.Series) == 0 {
			t.Errorf("theme %s has no series colors", th.Name)
		}
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#ff8000", 255, 128, 0},
		{"#FFFFFF", 255, 255, 255},
		{"#0f0", 0, 255, 0},
		{"navy", 0, 0, 128},
		{"bad", 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := rgb(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("rgb(%q) = %d,%d,%d", tt.in, r, g, b)
		}
	}
	if hexColor(300, -5, 171) != "#ff00ab" {
		t.Errorf("unexpected %s", hexColor(300, -5, 171))
	}
}

func TestSparkline(t *testing.T) {
	if Sparkline(nil) != "" {
		t.Error("expected empty sparkline")
	}
	out := Sparkline([]float64{0, 1, 2, 3})
	for _, c := range []string{"▁", "█"} {
		if !strings.Contains(out, c) {
			t.Errorf("expected %s in %q", c, out)
		}
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("expected empty output")
	}
	if !strings.Contains(GradientText("μ", "#000000", "#ffffff"), "μ") {
		t.Error("expected rune preserved")
	}
}

func TestSeparator(t *testing.T) {
	out := Separator(20)
	if !strings.Contains(out, "◆") || strings.Count(out, "─") != 14 {
		t.Errorf("unexpected separator %q", out)
	}
	if strings.Count(Separator(2), "─") != 2 {
		t.Errorf("expected minimum width, got %q", Separator(2))
	}
}
