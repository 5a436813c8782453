// Package app is the bubbletea program for the portfolio: a single
// scrolling page with a section nav bar, a project gallery modal and a
// theme toggle.
package app

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/gallery"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/showcase"
	"github.com/marcus/folio/internal/styles"
	"github.com/marcus/folio/internal/theme"
)

const (
	headerHeight  = 1
	footerHeight  = 1
	toastDuration = 3 * time.Second
	wheelLines    = 3
)

var (
	errNilConfig  = errors.New("app: config is required")
	errNilContent = errors.New("app: content is required")
	errNilTheme   = errors.New("app: theme capability is required")
)

// Model is the root bubbletea model.
type Model struct {
	cfg    *config.Config
	site   *content.Site
	theme  theme.Capability
	logger *slog.Logger

	keys keyMap
	help help.Model

	tracker  *nav.Tracker
	scroller *pageScroller
	selector *showcase.Selector
	gallery  *gallery.Gallery
	markdown *gallery.Markdown
	layout   *pageLayout
	watcher  *config.Watcher
	reload   func() (*config.Config, error)

	cursor     int
	width      int
	height     int
	ready      bool
	showHelp   bool
	showFooter bool

	toast      string
	toastError bool
	toastID    int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used by the model and its tracker.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithWatcher reloads the config whenever w reports a change.
func WithWatcher(w *config.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// New creates the model. The theme capability and content are required.
func New(cfg *config.Config, site *content.Site, capability theme.Capability, opts ...Option) (Model, error) {
	if cfg == nil {
		return Model{}, errNilConfig
	}
	if site == nil {
		return Model{}, errNilContent
	}
	if capability == nil {
		return Model{}, errNilTheme
	}

	m := Model{
		cfg:        cfg,
		site:       site,
		theme:      capability,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys:       defaultKeyMap(),
		help:       help.New(),
		selector:   showcase.NewSelector(),
		markdown:   gallery.NewMarkdown(),
		layout:     &pageLayout{},
		reload:     config.Load,
		showFooter: cfg.UI.ShowFooter,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.gallery = gallery.New(m.markdown)
	if cfg.Content.Path != "" {
		m.gallery.SetMediaRoot(filepath.Dir(cfg.Content.Path))
	}
	m.scroller = newPageScroller(cfg.Navigation.ScrollEase, cfg.Navigation.ScrollFrame)
	m.tracker = nav.NewTracker(offsetsFrom(cfg), m.scroller, nav.WithLogger(m.logger))
	for _, s := range nav.Sections {
		layout := m.layout
		m.tracker.Register(s, func() (nav.Extent, bool) { return layout.extent(s) })
	}
	styles.Apply(capability.Current())
	return m, nil
}

func offsetsFrom(cfg *config.Config) nav.Offsets {
	return nav.Offsets{
		Lookahead: cfg.Navigation.LookaheadLines,
		Header:    cfg.Navigation.HeaderLines,
	}
}

// Init mounts the section tracker and starts watching the config.
func (m Model) Init() tea.Cmd {
	m.tracker.Mount()
	return listenConfig(m.watcher)
}

// Active returns the active section.
func (m Model) Active() nav.Section { return m.tracker.Active() }

// MenuOpen reports whether the compact menu is open.
func (m Model) MenuOpen() bool { return m.tracker.MenuOpen() }

// Cursor returns the highlighted project.
func (m Model) Cursor() int { return m.cursor }

// GalleryOpen reports whether a project is showing.
func (m Model) GalleryOpen() bool { return m.selector.IsOpen() }

// ScrollOffset returns the page scroll offset.
func (m Model) ScrollOffset() int { return m.scroller.ScrollOffset() }

// compact reports whether the nav bar collapses into a menu.
func (m Model) compact() bool {
	return m.width < m.cfg.UI.CompactWidth
}

func (m Model) pageHeight() int {
	h := m.height - headerHeight
	if m.showFooter {
		h -= footerHeight
	}
	return max(h, 1)
}

// relayout re-renders the page for the current width, theme and cursor,
// then lets the tracker re-measure.
func (m *Model) relayout() {
	if !m.ready {
		return
	}
	*m.layout = renderPage(m.site, m.markdown, m.width, m.cursor)
	m.layout.padForLastSection(m.pageHeight(), m.cfg.Navigation.HeaderLines)
	m.scroller.SetSize(m.width, m.pageHeight())
	m.scroller.SetContent(m.layout.content)
	m.tracker.Refresh()
}

// showToast sets the footer toast and schedules its expiry.
func (m *Model) showToast(text string, isError bool, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = toastDuration
	}
	m.toastID++
	m.toast = text
	m.toastError = isError
	return expireToast(m.toastID, d)
}
