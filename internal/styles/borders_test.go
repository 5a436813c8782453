package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColorChar(t *testing.T) {
	red := RGB{255, 0, 0}
	result := colorChar("X", red)

	if !strings.HasPrefix(result, "\x1b[38;2;255;0;0m") {
		t.Error("colorChar should start with ANSI color code")
	}
	if !strings.Contains(result, "X") {
		t.Error("colorChar should contain the character")
	}
	if !strings.HasSuffix(result, ANSIReset) {
		t.Error("colorChar should end with ANSI reset")
	}
}

func TestRenderGradientBorder_MinimumSize(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)

	if result := RenderGradientBorder("test", 2, 2, g, 0); result != "test" {
		t.Errorf("expected content returned for small dimensions, got %q", result)
	}
	if result := RenderGradientBorder("test", 1, 5, g, 0); result != "test" {
		t.Errorf("expected content returned for narrow width, got %q", result)
	}
}

func TestRenderGradientBorder_ContainsBorderChars(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)
	result := RenderGradientBorder("hello", 20, 5, g, 1)

	for _, ch := range []string{"╭", "╮", "╰", "╯", "─", "│"} {
		if !strings.Contains(result, ch) {
			t.Errorf("result should contain %q", ch)
		}
	}
	if !strings.Contains(result, "hello") {
		t.Error("result should contain the content")
	}
}

func TestRenderGradientBorder_Dimensions(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)
	result := RenderGradientBorder("a\nb\nc\nd\ne\nf", 12, 5, g, 1)

	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, want 12", i, w)
		}
	}
}

func TestRenderGradientBorder_TruncatesStyledLines(t *testing.T) {
	g := NewGradient([]string{"#FF0000", "#0000FF"}, 30)
	styled := lipgloss.NewStyle().Bold(true).Render(strings.Repeat("x", 50))
	result := RenderGradientBorder(styled, 10, 3, g, 0)

	for i, line := range strings.Split(result, "\n") {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}

func TestRenderModalFrame_UsesTheme(t *testing.T) {
	result := RenderModalFrame("body", 20, 4)
	want := HexToRGB(GetCurrentTheme().Gradient[0]).ToANSI()
	if !strings.HasPrefix(result, want) {
		t.Errorf("modal frame should start with the theme's first gradient color")
	}
}
