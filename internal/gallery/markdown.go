package gallery

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const markdownCacheLimit = 64

// Markdown renders markdown with glamour, caching output by style, width
// and source.
type Markdown struct {
	cache map[uint64]string
}

// NewMarkdown returns an empty renderer cache.
func NewMarkdown() *Markdown {
	return &Markdown{cache: make(map[uint64]string)}
}

func markdownKey(src string, width int, style string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(style)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strconv.Itoa(width))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(src)
	return d.Sum64()
}

// Render returns src rendered for width columns in the named glamour
// style. If glamour fails the text is word-wrapped as-is.
func (m *Markdown) Render(src string, width int, style string) string {
	if src == "" {
		return ""
	}
	width = max(width, 10)
	key := markdownKey(src, width, style)
	if out, ok := m.cache[key]; ok {
		return out
	}

	out, err := renderMarkdown(src, width, style)
	if err != nil {
		out = lipgloss.NewStyle().Width(width).Render(src)
	}

	if len(m.cache) >= markdownCacheLimit {
		clear(m.cache)
	}
	m.cache[key] = out
	return out
}

// Len returns the number of cached renders.
func (m *Markdown) Len() int { return len(m.cache) }

func renderMarkdown(src string, width int, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(src)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
