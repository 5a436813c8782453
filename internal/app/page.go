package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/gallery"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/styles"
	"github.com/mattn/go-runewidth"
)

const (
	pageMargin    = 2
	minPageWidth  = 20
	projectCardW  = 34
	reviewCardW   = 40
	skillBarWidth = 20
	maxTagsOnCard = 3
)

// rect is a half-open box in page coordinates.
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// pageLayout is one measurement of the rendered page.
type pageLayout struct {
	content  string
	lines    int
	extents  nav.Extents
	projects []rect // project card boxes, by project index
}

// extent returns the measured extent of s, or false before the first
// layout or when the section is not rendered.
func (l *pageLayout) extent(s nav.Section) (nav.Extent, bool) {
	if l == nil || l.extents == nil {
		return nav.Extent{}, false
	}
	e, ok := l.extents[s]
	return e, ok
}

// projectAt returns the project card under page position (x, y).
func (l *pageLayout) projectAt(x, y int) (int, bool) {
	for i, r := range l.projects {
		if r.contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// block is one vertical slice of the page. Untracked blocks (skills,
// reviews) sit between tracked sections and count as gaps.
type block struct {
	section nav.Section
	tracked bool
	text    string
	cards   []rect // relative to the block
}

// pageRenderer renders the whole page for one width and theme.
type pageRenderer struct {
	site     *content.Site
	markdown *gallery.Markdown
	width    int // usable width inside the margins
	cursor   int // highlighted project, -1 for none
}

// renderPage lays out every block and measures the tracked sections.
func renderPage(site *content.Site, md *gallery.Markdown, width, cursor int) pageLayout {
	r := pageRenderer{
		site:     site,
		markdown: md,
		width:    max(width-2*pageMargin, minPageWidth),
		cursor:   cursor,
	}

	blocks := []block{
		{section: nav.Home, tracked: true, text: r.home()},
		{section: nav.About, tracked: true, text: r.about()},
		{text: r.skills()},
		r.projects(),
		{text: r.reviews()},
		{section: nav.Contact, tracked: true, text: r.contact()},
	}

	layout := pageLayout{
		extents:  make(nav.Extents),
		projects: make([]rect, len(site.Projects)),
	}
	margin := lipgloss.NewStyle().PaddingLeft(pageMargin)
	var parts []string
	top := 0
	for _, b := range blocks {
		if b.text == "" {
			continue
		}
		text := margin.Render(b.text)
		h := lipgloss.Height(text)
		if b.tracked {
			layout.extents[b.section] = nav.Extent{Top: top, Height: h}
		}
		for i, c := range b.cards {
			layout.projects[i] = rect{
				x0: c.x0 + pageMargin, y0: c.y0 + top,
				x1: c.x1 + pageMargin, y1: c.y1 + top,
			}
		}
		parts = append(parts, text)
		top += h + 1 // blank separator line
	}

	layout.content = strings.Join(parts, "\n\n")
	layout.lines = lipgloss.Height(layout.content)
	return layout
}

// padForLastSection appends blank lines until the page can scroll the last
// section up to the header line, so navigating there or scrolling to the
// bottom leaves it active.
func (l *pageLayout) padForLastSection(height, header int) {
	e, ok := l.extent(nav.Sections[len(nav.Sections)-1])
	if !ok {
		return
	}
	need := e.Top - header + height - l.lines
	if need <= 0 {
		return
	}
	l.content += strings.Repeat("\n", need)
	l.lines += need
}

func (r pageRenderer) center(s string) string {
	return lipgloss.NewStyle().Width(r.width).Align(lipgloss.Center).Render(s)
}

func (r pageRenderer) title(s string) string {
	return styles.SectionTitle.Render(s)
}

func (r pageRenderer) home() string {
	p := r.site.Profile
	var b strings.Builder
	b.WriteString("\n")
	if p.Role != "" {
		b.WriteString(r.center(styles.Badge.Render(p.Role)))
		b.WriteString("\n\n")
	}
	b.WriteString(r.center(styles.Hero.Render(strings.ToUpper(p.Name))))
	b.WriteString("\n\n")
	if p.Tagline != "" {
		b.WriteString(r.center(styles.Muted.Render(p.Tagline)))
		b.WriteString("\n\n")
	}
	b.WriteString(r.center(styles.Accent.Render("[ View Projects → ]") + styles.Subtle.Render("  enter")))
	b.WriteString("\n")
	return b.String()
}

func (r pageRenderer) about() string {
	p := r.site.Profile
	var b strings.Builder
	b.WriteString(r.title("About Me"))
	b.WriteString("\n\n")
	if p.About != "" {
		b.WriteString(r.markdown.Render(p.About, r.width, styles.GetCurrentTheme().Markdown))
		b.WriteString("\n\n")
	}

	var cards []string
	for _, svc := range p.Services {
		cards = append(cards, styles.Card.Width(projectCardW-2).Render(
			styles.Accent.Render(svc.Title)+"\n"+styles.Muted.Render(svc.Description)))
	}
	b.WriteString(r.grid(cards, projectCardW))
	return strings.TrimRight(b.String(), "\n")
}

func (r pageRenderer) skills() string {
	if len(r.site.Skills) == 0 {
		return ""
	}
	nameW := 0
	for _, s := range r.site.Skills {
		nameW = max(nameW, runewidth.StringWidth(s.Name))
	}
	nameW = min(nameW, max(r.width-skillBarWidth-8, 8))

	var b strings.Builder
	b.WriteString(r.title("Skills"))
	b.WriteString("\n")
	for _, s := range r.site.Skills {
		filled := s.Level * skillBarWidth / 100
		name := runewidth.FillRight(runewidth.Truncate(s.Name, nameW, "…"), nameW)
		b.WriteString("\n")
		b.WriteString(styles.Body.Render(name) + "  ")
		b.WriteString(styles.BarFilled.Render(strings.Repeat("█", filled)))
		b.WriteString(styles.BarEmpty.Render(strings.Repeat("░", skillBarWidth-filled)))
		b.WriteString(styles.Subtle.Render(fmt.Sprintf(" %3d%%", s.Level)))
	}
	return b.String()
}

func (r pageRenderer) projects() block {
	var b strings.Builder
	title := r.title("Featured Projects")
	b.WriteString(title)
	b.WriteString("\n\n")
	headerLines := lipgloss.Height(title) + 1

	if len(r.site.Projects) == 0 {
		b.WriteString(styles.Muted.Render("Nothing to show yet."))
		return block{section: nav.Projects, tracked: true, text: b.String()}
	}

	inner := projectCardW - 4
	var cards []string
	for i, p := range r.site.Projects {
		style := styles.Card
		if i == r.cursor {
			style = styles.CardSelected
		}
		tags := p.TechTags
		if len(tags) > maxTagsOnCard {
			tags = tags[:maxTagsOnCard]
		}
		var pills []string
		for _, t := range tags {
			pills = append(pills, styles.Pill.Render(runewidth.Truncate(t, inner-2, "…")))
		}
		desc := lipgloss.NewStyle().Width(inner).Render(styles.Muted.Render(p.ShortDescription))
		desc = clampLines(desc, 2)
		cards = append(cards, style.Width(projectCardW-2).Render(
			styles.Accent.Render(runewidth.Truncate(p.Title, inner, "…"))+"\n"+
				desc+"\n"+
				strings.Join(pills, " ")))
	}

	grid, rects := r.gridWithRects(cards, projectCardW)
	for i := range rects {
		rects[i].y0 += headerLines
		rects[i].y1 += headerLines
	}
	b.WriteString(grid)
	return block{section: nav.Projects, tracked: true, text: b.String(), cards: rects}
}

func (r pageRenderer) reviews() string {
	if len(r.site.Reviews) == 0 {
		return ""
	}
	inner := reviewCardW - 4
	var cards []string
	for _, rv := range r.site.Reviews {
		who := styles.Body.Bold(true).Render(rv.Name) + "\n" +
			styles.Muted.Render(rv.Role) + " " + styles.Accent.Render(rv.Company)
		body := lipgloss.NewStyle().Width(inner).Render(styles.Muted.Render(rv.Content))
		stars := styles.Star.Render(strings.Repeat("★", rv.Rating)) +
			styles.Subtle.Render(strings.Repeat("☆", 5-rv.Rating))
		cards = append(cards, styles.Card.Width(reviewCardW-2).Render(who+"\n\n"+body+"\n\n"+stars))
	}
	return r.title("Client Reviews") + "\n\n" + r.grid(cards, reviewCardW)
}

func (r pageRenderer) contact() string {
	p := r.site.Profile
	var b strings.Builder
	b.WriteString(r.title("Get in Touch"))
	b.WriteString("\n\n")
	if p.Pitch != "" {
		b.WriteString(styles.Muted.Render(p.Pitch))
		b.WriteString("\n\n")
	}
	if p.Email != "" {
		b.WriteString(styles.Accent.Render("✉ Contact Me  ") + styles.Body.Render(p.Email))
		b.WriteString("\n")
	}
	for _, l := range p.Links {
		b.WriteString(styles.Body.Render(fmt.Sprintf("• %-10s ", l.Label)) + styles.Subtle.Render(l.URL))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render(fmt.Sprintf("© %s", p.Name)))
	b.WriteString("\n")
	return b.String()
}

func (r pageRenderer) grid(cards []string, cardW int) string {
	s, _ := r.gridWithRects(cards, cardW)
	return s
}

// gridWithRects lays cards out in rows as wide as the page allows and
// returns each card's box relative to the grid.
func (r pageRenderer) gridWithRects(cards []string, cardW int) (string, []rect) {
	if len(cards) == 0 {
		return "", nil
	}
	cols := max(1, (r.width+1)/(cardW+1))

	var rows []string
	var rects []rect
	y := 0
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := cards[start:end]

		var withGaps []string
		x := 0
		rowH := 0
		for i, c := range row {
			if i > 0 {
				withGaps = append(withGaps, " ")
				x++
			}
			withGaps = append(withGaps, c)
			w, h := lipgloss.Width(c), lipgloss.Height(c)
			rects = append(rects, rect{x0: x, y0: y, x1: x + w, y1: y + h})
			x += w
			rowH = max(rowH, h)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, withGaps...))
		y += rowH
	}
	return strings.Join(rows, "\n"), rects
}

// clampLines keeps the first n lines of s.
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
