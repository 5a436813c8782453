// Package styles holds the lipgloss palette and styles for both themes.
// Apply swaps the package-level styles when the theme changes.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/folio/internal/theme"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Mode       theme.Mode
	Accent     string
	Text       string
	Muted      string
	Subtle     string
	Surface    string
	Border     string
	Error      string
	Gradient   []string // modal border
	Markdown   string   // glamour standard style name
	BarFilled  string
	BarEmpty   string
	StarFilled string
}

var (
	darkPalette = Palette{
		Mode:       theme.Dark,
		Accent:     "#F5C542",
		Text:       "#E5E7EB",
		Muted:      "#9CA3AF",
		Subtle:     "#6B7280",
		Surface:    "#1F2937",
		Border:     "#374151",
		Error:      "#EF4444",
		Gradient:   []string{"#F5C542", "#F97316", "#A855F7"},
		Markdown:   "dark",
		BarFilled:  "#F5C542",
		BarEmpty:   "#374151",
		StarFilled: "#F5C542",
	}

	lightPalette = Palette{
		Mode:       theme.Light,
		Accent:     "#B45309",
		Text:       "#111827",
		Muted:      "#4B5563",
		Subtle:     "#9CA3AF",
		Surface:    "#F3F4F6",
		Border:     "#D1D5DB",
		Error:      "#B91C1C",
		Gradient:   []string{"#B45309", "#EA580C", "#7C3AED"},
		Markdown:   "light",
		BarFilled:  "#B45309",
		BarEmpty:   "#E5E7EB",
		StarFilled: "#B45309",
	}

	current = darkPalette
)

// Styles used across the views. Rebuilt by Apply.
var (
	Header         lipgloss.Style
	Brand          lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	MenuBox        lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	SectionTitle   lipgloss.Style
	Badge          lipgloss.Style
	Hero           lipgloss.Style
	Body           lipgloss.Style
	Muted          lipgloss.Style
	Subtle         lipgloss.Style
	Accent         lipgloss.Style
	Pill           lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	BarFilled      lipgloss.Style
	BarEmpty       lipgloss.Style
	Star           lipgloss.Style
	Footer         lipgloss.Style
	KeyHint        lipgloss.Style
	Toast          lipgloss.Style
	ToastError     lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalBox       lipgloss.Style
)

func init() {
	Apply(theme.Dark)
}

// GetCurrentTheme returns the active palette.
func GetCurrentTheme() Palette { return current }

// PaletteFor returns the palette for m.
func PaletteFor(m theme.Mode) Palette {
	if m == theme.Light {
		return lightPalette
	}
	return darkPalette
}

// Apply rebuilds every style from the palette for m.
func Apply(m theme.Mode) {
	p := PaletteFor(m)
	current = p

	accent := lipgloss.Color(p.Accent)
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	subtle := lipgloss.Color(p.Subtle)
	surface := lipgloss.Color(p.Surface)
	border := lipgloss.Color(p.Border)

	Header = lipgloss.NewStyle().Foreground(text).Background(surface)
	Brand = lipgloss.NewStyle().Bold(true).Foreground(accent).Background(surface).Padding(0, 1)
	TabActive = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(text).Background(surface).Padding(0, 1)
	TabInactive = lipgloss.NewStyle().Foreground(muted).Background(surface).Padding(0, 1)

	MenuBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	MenuItem = lipgloss.NewStyle().Foreground(muted)
	MenuItemActive = lipgloss.NewStyle().Bold(true).Foreground(accent)

	SectionTitle = lipgloss.NewStyle().Bold(true).Foreground(text).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(accent)
	Badge = lipgloss.NewStyle().Foreground(accent).Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	Hero = lipgloss.NewStyle().Bold(true).Foreground(text)
	Body = lipgloss.NewStyle().Foreground(text)
	Muted = lipgloss.NewStyle().Foreground(muted)
	Subtle = lipgloss.NewStyle().Foreground(subtle)
	Accent = lipgloss.NewStyle().Foreground(accent)
	Pill = lipgloss.NewStyle().Foreground(accent).Background(surface).Padding(0, 1)

	Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	CardSelected = Card.BorderForeground(accent)

	BarFilled = lipgloss.NewStyle().Foreground(lipgloss.Color(p.BarFilled))
	BarEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color(p.BarEmpty))
	Star = lipgloss.NewStyle().Foreground(lipgloss.Color(p.StarFilled))

	Footer = lipgloss.NewStyle().Foreground(muted).Background(surface)
	KeyHint = lipgloss.NewStyle().Foreground(subtle).Background(surface)
	Toast = lipgloss.NewStyle().Foreground(accent).Background(surface)
	ToastError = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Background(surface)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	ModalBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
}
