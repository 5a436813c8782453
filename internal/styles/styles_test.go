package styles

import (
	"testing"

	"github.com/marcus/folio/internal/theme"
)

func TestApply_SwitchesPalette(t *testing.T) {
	defer Apply(theme.Dark)

	Apply(theme.Light)
	if got := GetCurrentTheme().Mode; got != theme.Light {
		t.Fatalf("mode = %q, want light", got)
	}
	if GetCurrentTheme().Markdown != "light" {
		t.Error("light theme should use the light markdown style")
	}

	Apply(theme.Dark)
	if got := GetCurrentTheme().Mode; got != theme.Dark {
		t.Fatalf("mode = %q, want dark", got)
	}
}

func TestPaletteFor_UnknownFallsBackToDark(t *testing.T) {
	if got := PaletteFor(theme.Mode("sepia")).Mode; got != theme.Dark {
		t.Errorf("mode = %q, want dark", got)
	}
}

func TestPalettes_HaveValidColors(t *testing.T) {
	for _, p := range []Palette{darkPalette, lightPalette} {
		for _, hex := range append([]string{p.Accent, p.Text, p.Muted, p.Surface, p.Border}, p.Gradient...) {
			if RGBToHex(HexToRGB(hex)) == "#808080" && hex != "#808080" {
				t.Errorf("%s palette: %q is not a valid hex color", p.Mode, hex)
			}
		}
	}
}
