// Package gallery renders the project showcase modal: a media carousel,
// the project description and its tags. It only reports a close action back
// to its owner; the carousel position is its own business.
package gallery

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/msg"
	"github.com/marcus/folio/internal/showcase"
	"github.com/marcus/folio/internal/styles"
)

// ActionClose is returned by HandleKey when the user dismisses the gallery.
const ActionClose = "close"

const (
	maxWidth      = 76
	toastDuration = 2 * time.Second
)

// Gallery is the showcase modal.
type Gallery struct {
	props    showcase.Props
	index    int
	markdown *Markdown
	images   *Images
	copyFn   func(string) error
}

// New creates a gallery rendering descriptions through md.
func New(md *Markdown) *Gallery {
	if md == nil {
		md = NewMarkdown()
	}
	return &Gallery{markdown: md, images: NewImages(""), copyFn: clipboard.WriteAll}
}

// SetMediaRoot sets the directory relative media paths are read from.
func (g *Gallery) SetMediaRoot(dir string) {
	g.images = NewImages(dir)
}

// SetProps updates what the gallery shows. The carousel restarts when the
// shown project changes.
func (g *Gallery) SetProps(p showcase.Props) {
	if p.Title != g.props.Title || !slices.Equal(p.OrderedMedia, g.props.OrderedMedia) {
		g.index = 0
	}
	g.props = p
}

// Props returns what the gallery is showing.
func (g *Gallery) Props() showcase.Props { return g.props }

// Index returns the carousel position.
func (g *Gallery) Index() int { return g.index }

// Current returns the media item under the carousel, if any.
func (g *Gallery) Current() (content.MediaItem, bool) {
	if g.index < 0 || g.index >= len(g.props.OrderedMedia) {
		return content.MediaItem{}, false
	}
	return g.props.OrderedMedia[g.index], true
}

// HandleKey processes keyboard input and returns ActionClose when the user
// dismisses the gallery.
func (g *Gallery) HandleKey(key tea.KeyMsg) (action string, cmd tea.Cmd) {
	if !g.props.Open {
		return "", nil
	}
	switch key.String() {
	case "esc", "q":
		return ActionClose, nil
	case "left", "h":
		g.step(-1)
	case "right", "l", " ":
		g.step(1)
	case "y":
		return "", g.copyCurrent()
	}
	return "", nil
}

// step moves the carousel, wrapping at both ends.
func (g *Gallery) step(delta int) {
	n := len(g.props.OrderedMedia)
	if n == 0 {
		return
	}
	g.index = (g.index + delta + n) % n
}

func (g *Gallery) copyCurrent() tea.Cmd {
	item, ok := g.Current()
	if !ok {
		return nil
	}
	if err := g.copyFn(item.URL); err != nil {
		return msg.ShowError(fmt.Errorf("copy failed: %w", err), toastDuration)
	}
	return msg.ShowToast("Copied "+item.URL, toastDuration)
}

// View renders the modal centered on a screenW x screenH screen.
func (g *Gallery) View(screenW, screenH int) string {
	if !g.props.Open {
		return ""
	}
	width := min(maxWidth, screenW-4)
	if width < 20 {
		width = max(screenW, 3)
	}
	inner := width - 6 // border and padding

	body := g.renderBody(inner)
	height := min(lipgloss.Height(body)+2, max(screenH, 3))
	frame := styles.RenderModalFrame(body, width, height)

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, frame)
}

func (g *Gallery) renderBody(width int) string {
	var b strings.Builder

	b.WriteString(styles.ModalTitle.Render(g.props.Title))
	b.WriteString("\n\n")
	b.WriteString(g.renderMedia(width))
	b.WriteString("\n")

	if desc := g.markdown.Render(g.props.Description, width, styles.GetCurrentTheme().Markdown); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	if len(g.props.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(renderTags(g.props.Tags, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("←/→ media  y copy link  esc close"))
	return b.String()
}

// renderMedia renders the carousel slot and its position indicator.
func (g *Gallery) renderMedia(width int) string {
	box := styles.Card.Width(max(width-2, 1)).Align(lipgloss.Center)

	item, ok := g.Current()
	if !ok {
		return box.Render(styles.Muted.Render("No media"))
	}

	var slot string
	if item.Kind == content.MediaImage {
		if img, ok := g.images.Render(item.URL, max(width-4, 1), imageHeight); ok {
			slot = box.Render(img + "\n" + styles.Muted.Render(item.URL))
		}
	}
	if slot == "" {
		label := "▣ IMAGE"
		if item.Kind == content.MediaVideo {
			label = "▶ VIDEO"
		}
		slot = box.Render(
			styles.Accent.Render(label) + "\n" + styles.Muted.Render(item.URL),
		)
	}

	dots := make([]string, len(g.props.OrderedMedia))
	for i := range dots {
		if i == g.index {
			dots[i] = styles.Accent.Render("●")
		} else {
			dots[i] = styles.Subtle.Render("○")
		}
	}
	indicator := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(dots, " ")+styles.Subtle.Render(fmt.Sprintf("  %d/%d", g.index+1, len(dots))))

	return slot + "\n" + indicator
}

// renderTags lays out tag pills, wrapping onto new lines at width.
func renderTags(tags []string, width int) string {
	var lines []string
	var line string
	for _, tag := range tags {
		pill := styles.Pill.Render(tag)
		switch {
		case line == "":
			line = pill
		case lipgloss.Width(line)+1+lipgloss.Width(pill) > width:
			lines = append(lines, line)
			line = pill
		default:
			line += " " + pill
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
