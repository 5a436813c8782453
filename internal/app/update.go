package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/gallery"
	appmsg "github.com/marcus/folio/internal/msg"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/styles"
	"github.com/marcus/folio/internal/theme"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case scrollFrameMsg:
		return m, m.scroller.onFrame()

	case appmsg.ToastMsg:
		return m, m.showToast(msg.Message, msg.IsError, msg.Duration)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
			m.toastError = false
		}
		return m, nil

	case configChangedMsg:
		cmd := m.applyConfig()
		return m, tea.Batch(cmd, listenConfig(m.watcher))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	// The gallery owns the keyboard while it is open.
	if m.selector.IsOpen() {
		action, cmd := m.gallery.HandleKey(msg)
		if action == gallery.ActionClose {
			m.selector.Close()
			m.gallery.SetProps(m.selector.Props())
		}
		return m, cmd
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	if msg.String() == "esc" && m.tracker.MenuOpen() {
		m.tracker.ToggleMenu()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Home):
		return m, m.navigate(nav.Home)
	case key.Matches(msg, m.keys.About):
		return m, m.navigate(nav.About)
	case key.Matches(msg, m.keys.Projects):
		return m, m.navigate(nav.Projects)
	case key.Matches(msg, m.keys.Contact):
		return m, m.navigate(nav.Contact)
	case key.Matches(msg, m.keys.NextSection):
		m.tracker.NavigateNext()
		return m, m.scroller.ensureFrames()
	case key.Matches(msg, m.keys.PrevSection):
		m.tracker.NavigatePrev()
		return m, m.scroller.ensureFrames()
	case key.Matches(msg, m.keys.Menu):
		m.tracker.ToggleMenu()
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Up):
		m.scroller.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scroller.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroller.ScrollBy(-m.scroller.Height())
	case key.Matches(msg, m.keys.PageDown):
		m.scroller.ScrollBy(m.scroller.Height())
	case key.Matches(msg, m.keys.Top):
		m.scroller.ScrollToEdge(false)
	case key.Matches(msg, m.keys.Bottom):
		m.scroller.ScrollToEdge(true)
	case key.Matches(msg, m.keys.PrevProject):
		return m, m.moveCursor(-1)
	case key.Matches(msg, m.keys.NextProject):
		return m, m.moveCursor(1)
	case key.Matches(msg, m.keys.Open):
		return m, m.open()
	}
	return m, nil
}

// handleMouse processes wheel scrolling and clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.selector.IsOpen() || m.showHelp {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroller.ScrollBy(-wheelLines)
	case tea.MouseButtonWheelDown:
		m.scroller.ScrollBy(wheelLines)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			return m, m.click(msg.X, msg.Y)
		}
	}
	return m, nil
}

// click dispatches a left click at screen position (x, y).
func (m *Model) click(x, y int) tea.Cmd {
	if m.tracker.MenuOpen() {
		if s, ok := m.menuItemAt(x, y); ok {
			return m.navigate(s)
		}
		if y >= headerHeight {
			m.tracker.ToggleMenu()
			return nil
		}
	}

	if y < headerHeight {
		item, ok := hitHeader(m.headerItems(), x)
		if !ok {
			return nil
		}
		switch item.kind {
		case hitTab:
			return m.navigate(item.section)
		case hitMenu:
			m.tracker.ToggleMenu()
		case hitTheme:
			return m.toggleTheme()
		}
		return nil
	}

	row := y - headerHeight
	if row >= m.pageHeight() {
		return nil
	}
	if i, ok := m.layout.projectAt(x, row+m.scroller.ScrollOffset()); ok {
		m.selectProject(i)
	}
	return nil
}

// navigate jumps to s and starts the scroll animation.
func (m *Model) navigate(s nav.Section) tea.Cmd {
	m.tracker.Navigate(s)
	return m.scroller.ensureFrames()
}

// open acts on enter: the hero jumps to the projects, the projects open
// the highlighted one.
func (m *Model) open() tea.Cmd {
	switch m.tracker.Active() {
	case nav.Home:
		return m.navigate(nav.Projects)
	case nav.Projects:
		m.selectProject(m.cursor)
	}
	return nil
}

func (m *Model) selectProject(i int) {
	if i < 0 || i >= len(m.site.Projects) {
		return
	}
	m.cursor = i
	m.selector.Select(m.site.Projects[i])
	m.gallery.SetProps(m.selector.Props())
	m.logger.Debug("app: project selected", "title", m.site.Projects[i].Title)
	m.relayout()
}

// moveCursor highlights the neighbouring project and scrolls it into view.
func (m *Model) moveCursor(delta int) tea.Cmd {
	n := len(m.site.Projects)
	if n == 0 {
		return nil
	}
	m.cursor = (m.cursor + delta + n) % n
	m.relayout()

	if m.cursor >= len(m.layout.projects) {
		return nil
	}
	card := m.layout.projects[m.cursor]
	top := m.scroller.ScrollOffset()
	bottom := top + m.scroller.Height()
	switch {
	case card.y0 < top:
		m.scroller.SmoothScrollTo(card.y0 - m.cfg.Navigation.HeaderLines)
	case card.y1 > bottom:
		m.scroller.SmoothScrollTo(card.y1 - m.scroller.Height())
	default:
		return nil
	}
	return m.scroller.ensureFrames()
}

// toggleTheme flips the theme through the capability. A failed save still
// switches the theme for this session.
func (m *Model) toggleTheme() tea.Cmd {
	mode, err := theme.Toggle(m.theme)
	styles.Apply(mode)
	m.cfg.UI.Theme = string(mode)
	m.relayout()
	if err != nil {
		m.logger.Warn("app: theme not saved", "err", err)
		return m.showToast(fmt.Sprintf("Theme not saved: %v", err), true, 0)
	}
	return m.showToast(fmt.Sprintf("%s theme", titleCase(string(mode))), false, 0)
}

// applyConfig reloads the config file after it changed on disk.
func (m *Model) applyConfig() tea.Cmd {
	cfg, err := m.reload()
	if err != nil {
		m.logger.Warn("app: config reload failed", "err", err)
		return m.showToast(fmt.Sprintf("Config error: %v", err), true, 0)
	}
	if err := cfg.Validate(); err != nil {
		return m.showToast(fmt.Sprintf("Config error: %v", err), true, 0)
	}

	m.cfg.UI.ShowFooter = cfg.UI.ShowFooter
	m.cfg.UI.CompactWidth = cfg.UI.CompactWidth
	m.cfg.Navigation.ScrollEase = cfg.Navigation.ScrollEase
	m.cfg.Navigation.ScrollFrame = cfg.Navigation.ScrollFrame
	m.showFooter = cfg.UI.ShowFooter
	m.scroller.ease = cfg.Navigation.ScrollEase
	m.scroller.frame = cfg.Navigation.ScrollFrame

	if store, ok := m.theme.(interface{ Sync(*config.Config) bool }); ok && store.Sync(cfg) {
		m.cfg.UI.Theme = string(m.theme.Current())
		styles.Apply(m.theme.Current())
	}
	m.logger.Debug("app: config reloaded")
	m.relayout()
	return nil
}

// quit detaches the tracker and stops background work.
func (m *Model) quit() tea.Cmd {
	m.tracker.Unmount()
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return tea.Quit
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
