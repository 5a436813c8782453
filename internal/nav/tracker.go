// Package nav tracks which page section is active and drives programmatic
// navigation between sections.
//
// The transition logic lives in Step and ActiveAt, which are pure. Tracker
// wraps them with section registration, a viewport capability and the
// mount/unmount lifecycle of the scroll listener.
package nav

import (
	"io"
	"log/slog"
)

// ExtentFunc returns a section's current extent, or ok=false while the
// section is not mounted.
type ExtentFunc func() (Extent, bool)

// Viewport is the scroll capability the tracker observes and drives.
type Viewport interface {
	// ScrollOffset returns the current vertical scroll offset.
	ScrollOffset() int
	// SmoothScrollTo starts a scroll animation toward y and returns
	// immediately.
	SmoothScrollTo(y int)
	// OnScroll registers fn to run after every scroll change and returns a
	// function that removes it.
	OnScroll(fn func()) (remove func())
}

// Tracker keeps the active section consistent with the viewport.
//
// A nil Viewport puts the tracker in manual-only mode: the active section
// then changes only through Navigate.
type Tracker struct {
	offsets  Offsets
	viewport Viewport
	logger   *slog.Logger

	handles map[Section]ExtentFunc
	state   State

	removeListener func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the tracker's logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTracker creates a tracker over vp, which may be nil.
func NewTracker(off Offsets, vp Viewport, opts ...Option) *Tracker {
	t := &Tracker{
		offsets:  off,
		viewport: vp,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		handles:  make(map[Section]ExtentFunc),
		state:    InitialState(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Register supplies the extent handle for a section. Registering again
// replaces the previous handle.
func (t *Tracker) Register(s Section, fn ExtentFunc) {
	if !s.Valid() || fn == nil {
		return
	}
	t.handles[s] = fn
}

// Mount attaches the scroll listener and takes the initial measurement.
// Calling Mount on an already mounted tracker does nothing.
func (t *Tracker) Mount() {
	if t.viewport == nil {
		t.logger.Debug("nav: no viewport, manual navigation only")
		return
	}
	if t.removeListener != nil {
		return
	}
	t.removeListener = t.viewport.OnScroll(t.Refresh)
	t.Refresh()
}

// Unmount detaches the scroll listener.
func (t *Tracker) Unmount() {
	if t.removeListener == nil {
		return
	}
	t.removeListener()
	t.removeListener = nil
}

// Mounted reports whether the scroll listener is attached.
func (t *Tracker) Mounted() bool {
	return t.removeListener != nil
}

// Measure reads every registered section's extent for this tick.
func (t *Tracker) Measure() Extents {
	ext := make(Extents, len(t.handles))
	for s, fn := range t.handles {
		if e, ok := fn(); ok {
			ext[s] = e
		}
	}
	return ext
}

// Refresh recomputes the active section from the current scroll offset.
func (t *Tracker) Refresh() {
	if t.viewport == nil {
		return
	}
	prev := t.state.Active
	t.state, _ = Step(t.state, Scrolled{Offset: t.viewport.ScrollOffset()}, t.Measure(), t.offsets)
	if t.state.Active != prev {
		t.logger.Debug("nav: active section changed", "from", prev, "to", t.state.Active)
	}
}

// Navigate makes s active, closes the menu and scrolls toward s.
func (t *Tracker) Navigate(s Section) {
	var target ScrollTarget
	t.state, target = Step(t.state, NavigateTo{Section: s}, t.Measure(), t.offsets)
	if !target.OK || t.viewport == nil {
		return
	}
	t.logger.Debug("nav: scrolling", "section", s, "y", target.Y)
	t.viewport.SmoothScrollTo(target.Y)
}

// NavigateNext moves to the section after the active one.
func (t *Tracker) NavigateNext() { t.Navigate(t.state.Active.Next()) }

// NavigatePrev moves to the section before the active one.
func (t *Tracker) NavigatePrev() { t.Navigate(t.state.Active.Prev()) }

// ToggleMenu opens or closes the compact menu.
func (t *Tracker) ToggleMenu() {
	t.state, _ = Step(t.state, ToggleMenu{}, nil, t.offsets)
}

// State returns the current navigation state.
func (t *Tracker) State() State { return t.state }

// Active returns the active section.
func (t *Tracker) Active() Section { return t.state.Active }

// MenuOpen reports whether the compact menu is open.
func (t *Tracker) MenuOpen() bool { return t.state.MenuOpen }
