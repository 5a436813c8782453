package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border characters for rounded borders (matching lipgloss.RoundedBorder)
const (
	borderCornerTL   = "╭"
	borderCornerTR   = "╮"
	borderCornerBL   = "╰"
	borderCornerBR   = "╯"
	borderHorizontal = "─"
	borderVertical   = "│"
)

// colorChar wraps a character with ANSI foreground color.
func colorChar(char string, color RGB) string {
	return color.ToANSI() + char + ANSIReset
}

// RenderGradientBorder renders content inside a box with gradient-colored borders.
// width and height are the outer dimensions including borders. Content
// lines may carry ANSI styling; overflowing lines are truncated.
func RenderGradientBorder(content string, width, height int, gradient Gradient, padding int) string {
	if width < 3 || height < 3 {
		return content
	}

	innerWidth := width - 2
	innerHeight := height - 2
	contentWidth := max(innerWidth-padding*2, 0)
	paddingStr := strings.Repeat(" ", padding)

	lines := strings.Split(content, "\n")

	var b strings.Builder
	b.WriteString(gradientEdge(width, height, 0, borderCornerTL, borderCornerTR, gradient))
	b.WriteString("\n")

	for y := 0; y < innerHeight; y++ {
		var line string
		if y < len(lines) {
			line = lines[y]
		}
		if lipgloss.Width(line) > contentWidth {
			line = ansi.Truncate(line, contentWidth, "")
		}
		rightPad := max(contentWidth-lipgloss.Width(line), 0)

		// y+1 because the top border is row 0
		b.WriteString(colorChar(borderVertical, gradient.ColorAt(gradient.PositionAt(0, y+1, width, height))))
		b.WriteString(paddingStr + line + strings.Repeat(" ", rightPad) + paddingStr)
		b.WriteString(colorChar(borderVertical, gradient.ColorAt(gradient.PositionAt(width-1, y+1, width, height))))
		b.WriteString("\n")
	}

	b.WriteString(gradientEdge(width, height, height-1, borderCornerBL, borderCornerBR, gradient))
	return b.String()
}

// gradientEdge renders the top or bottom border row y.
func gradientEdge(width, height, y int, left, right string, g Gradient) string {
	var sb strings.Builder
	sb.WriteString(colorChar(left, g.ColorAt(g.PositionAt(0, y, width, height))))
	for x := 1; x < width-1; x++ {
		sb.WriteString(colorChar(borderHorizontal, g.ColorAt(g.PositionAt(x, y, width, height))))
	}
	sb.WriteString(colorChar(right, g.ColorAt(g.PositionAt(width-1, y, width, height))))
	return sb.String()
}

// ModalGradient returns the border gradient for the current theme.
func ModalGradient() Gradient {
	p := GetCurrentTheme()
	if len(p.Gradient) < 2 {
		return NewGradient([]string{p.Accent, p.Accent}, DefaultGradientAngle)
	}
	return NewGradient(p.Gradient, DefaultGradientAngle)
}

// RenderModalFrame renders content in a modal box with the theme gradient.
func RenderModalFrame(content string, width, height int) string {
	return RenderGradientBorder(content, width, height, ModalGradient(), 2)
}
