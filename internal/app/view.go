package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/styles"
	"github.com/marcus/folio/internal/theme"
)

type hitKind int

const (
	hitTab hitKind = iota
	hitMenu
	hitTheme
)

// headerItem is one clickable span of the nav bar.
type headerItem struct {
	kind    hitKind
	section nav.Section
	text    string
	x0, x1  int
}

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.selector.IsOpen() {
		return m.gallery.View(m.width, m.height)
	}

	body := m.scroller.View()
	if m.tracker.MenuOpen() {
		body = m.overlayMenu(body)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(body)
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return b.String()
}

func (m Model) headerItems() []headerItem {
	return buildHeaderItems(m.width, m.tracker.Active(), m.compact(), m.theme.Current())
}

// buildHeaderItems lays out the right-aligned nav bar: section tabs, or a
// menu button when compact, then the theme toggle.
func buildHeaderItems(width int, active nav.Section, compact bool, mode theme.Mode) []headerItem {
	var items []headerItem
	if compact {
		items = append(items, headerItem{kind: hitMenu, text: styles.TabInactive.Render("☰ " + active.Title())})
	} else {
		for _, s := range nav.Sections {
			style := styles.TabInactive
			if s == active {
				style = styles.TabActive
			}
			items = append(items, headerItem{kind: hitTab, section: s, text: style.Render(s.Title())})
		}
	}
	icon := "☾"
	if mode == theme.Light {
		icon = "☀"
	}
	items = append(items, headerItem{kind: hitTheme, text: styles.TabInactive.Render(icon)})

	total := 0
	for _, it := range items {
		total += lipgloss.Width(it.text)
	}
	x := max(width-total, 0)
	for i := range items {
		w := lipgloss.Width(items[i].text)
		items[i].x0, items[i].x1 = x, x+w
		x += w
	}
	return items
}

func hitHeader(items []headerItem, x int) (headerItem, bool) {
	for _, it := range items {
		if x >= it.x0 && x < it.x1 {
			return it, true
		}
	}
	return headerItem{}, false
}

// renderHeaderBar renders the brand on the left and items on the right.
func renderHeaderBar(width int, brand string, items []headerItem) string {
	var right strings.Builder
	for _, it := range items {
		right.WriteString(it.text)
	}
	left := styles.Brand.Render(brand)

	spacing := width - lipgloss.Width(left) - lipgloss.Width(right.String())
	if spacing < 0 {
		left = ""
		spacing = max(width-lipgloss.Width(right.String()), 0)
	}
	line := left + styles.Header.Render(strings.Repeat(" ", spacing)) + right.String()
	return ansi.Truncate(line, width, "")
}

func (m Model) renderHeader() string {
	return renderHeaderBar(m.width, m.site.Profile.Name, m.headerItems())
}

// menuBox renders the compact dropdown and returns its left column.
func (m Model) menuBox() (string, int) {
	active := m.tracker.Active()
	lines := make([]string, len(nav.Sections))
	for i, s := range nav.Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == active {
			lines[i] = styles.MenuItemActive.Render("› " + label)
		} else {
			lines[i] = styles.MenuItem.Render("  " + label)
		}
	}
	box := styles.MenuBox.Render(strings.Join(lines, "\n"))
	return box, max(m.width-lipgloss.Width(box), 0)
}

// menuItemAt maps a screen position to a dropdown entry.
func (m Model) menuItemAt(x, y int) (nav.Section, bool) {
	box, left := m.menuBox()
	if x < left || x >= left+lipgloss.Width(box) {
		return 0, false
	}
	// Entries start below the header and the box's top border.
	i := y - headerHeight - 1
	if i < 0 || i >= len(nav.Sections) {
		return 0, false
	}
	return nav.Sections[i], true
}

// overlayMenu draws the dropdown over the top-right of the page.
func (m Model) overlayMenu(body string) string {
	box, left := m.menuBox()
	lines := strings.Split(body, "\n")
	for i, boxLine := range strings.Split(box, "\n") {
		if i >= len(lines) {
			break
		}
		under := ansi.Truncate(lines[i], left, "")
		if pad := left - ansi.StringWidth(under); pad > 0 {
			under += strings.Repeat(" ", pad)
		}
		lines[i] = under + boxLine
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the bottom bar with key hints and the toast.
func (m Model) renderFooter() string {
	hints := m.help.ShortHelpView(m.keys.ShortHelp())

	var status string
	if m.toast != "" {
		if m.toastError {
			status = styles.ToastError.Render(m.toast)
		} else {
			status = styles.Toast.Render(m.toast)
		}
	}

	pos := styles.KeyHint.Render(fmt.Sprintf("§ %s  %3.0f%%", m.tracker.Active().Title(), m.scroller.vp.ScrollPercent()*100))

	spacing := m.width - lipgloss.Width(hints) - lipgloss.Width(status) - lipgloss.Width(pos)
	if spacing < 2 {
		hints = ""
		spacing = max(m.width-lipgloss.Width(status)-lipgloss.Width(pos), 0)
	}
	footer := hints + strings.Repeat(" ", spacing/2) + status + strings.Repeat(" ", spacing-(spacing/2)) + pos
	return styles.Footer.Width(m.width).Render(ansi.Truncate(footer, m.width, ""))
}

// renderHelpOverlay renders the help modal over the screen.
func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtle.Render("Press esc to close"))

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalBox.Render(b.String()),
	)
}
