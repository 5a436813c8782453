package app

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// scrollFrameMsg advances a running scroll animation by one frame.
type scrollFrameMsg struct{}

// pageScroller owns the page viewport and implements nav.Viewport.
// Programmatic scrolls ease toward their target one frame at a time and
// every offset change, animated or manual, notifies the listeners.
type pageScroller struct {
	vp viewport.Model

	listeners map[int]func()
	nextID    int

	target    int
	animating bool
	ticking   bool
	ease      float64
	frame     time.Duration
}

func newPageScroller(ease float64, frame time.Duration) *pageScroller {
	vp := viewport.New(0, 0)
	return &pageScroller{
		vp:        vp,
		listeners: make(map[int]func()),
		ease:      ease,
		frame:     frame,
	}
}

// ScrollOffset implements nav.Viewport.
func (s *pageScroller) ScrollOffset() int { return s.vp.YOffset }

// SmoothScrollTo implements nav.Viewport. It only records the target; the
// frame loop started by ensureFrames does the moving.
func (s *pageScroller) SmoothScrollTo(y int) {
	s.target = s.clamp(y)
	s.animating = s.target != s.vp.YOffset
}

// OnScroll implements nav.Viewport.
func (s *pageScroller) OnScroll(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Listeners returns the number of registered scroll listeners.
func (s *pageScroller) Listeners() int { return len(s.listeners) }

// Animating reports whether a smooth scroll is in progress.
func (s *pageScroller) Animating() bool { return s.animating }

func (s *pageScroller) maxOffset() int {
	return max(0, s.vp.TotalLineCount()-s.vp.Height)
}

func (s *pageScroller) clamp(y int) int {
	return min(max(y, 0), s.maxOffset())
}

// setOffset moves the viewport and notifies listeners if it actually moved.
func (s *pageScroller) setOffset(y int) {
	y = s.clamp(y)
	if y == s.vp.YOffset {
		return
	}
	s.vp.SetYOffset(y)
	s.notify()
}

func (s *pageScroller) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// ScrollBy is a manual scroll. It cancels any running animation.
func (s *pageScroller) ScrollBy(delta int) {
	s.animating = false
	s.setOffset(s.vp.YOffset + delta)
}

// ScrollToEdge jumps to the top or the bottom of the page.
func (s *pageScroller) ScrollToEdge(bottom bool) {
	s.animating = false
	if bottom {
		s.setOffset(s.maxOffset())
		return
	}
	s.setOffset(0)
}

// Frame moves one eased step toward the target and reports whether the
// animation continues.
func (s *pageScroller) Frame() bool {
	if !s.animating {
		return false
	}
	dist := s.target - s.vp.YOffset
	if dist == 0 {
		s.animating = false
		return false
	}
	step := int(math.Ceil(math.Abs(float64(dist)) * s.ease))
	step = max(step, 1)
	if dist < 0 {
		step = -step
	}
	before := s.vp.YOffset
	s.setOffset(before + step)
	if s.vp.YOffset == s.target || s.vp.YOffset == before {
		s.animating = false
	}
	return s.animating
}

// ensureFrames starts the frame loop if an animation is pending and no
// loop is running yet.
func (s *pageScroller) ensureFrames() tea.Cmd {
	if !s.animating || s.ticking {
		return nil
	}
	s.ticking = true
	return s.frameCmd()
}

// onFrame handles a scrollFrameMsg.
func (s *pageScroller) onFrame() tea.Cmd {
	if s.Frame() {
		return s.frameCmd()
	}
	s.ticking = false
	return nil
}

func (s *pageScroller) frameCmd() tea.Cmd {
	return tea.Tick(s.frame, func(time.Time) tea.Msg { return scrollFrameMsg{} })
}

// SetSize resizes the viewport and re-clamps the offset.
func (s *pageScroller) SetSize(w, h int) {
	before := s.vp.YOffset
	s.vp.Width = w
	s.vp.Height = max(h, 1)
	s.reclamp(before)
}

// SetContent replaces the page and re-clamps the offset.
func (s *pageScroller) SetContent(content string) {
	before := s.vp.YOffset
	s.vp.SetContent(content)
	s.reclamp(before)
}

// reclamp keeps the offset and target inside the page after a resize and
// notifies listeners if the offset moved, whoever moved it.
func (s *pageScroller) reclamp(before int) {
	if s.animating {
		s.target = s.clamp(s.target)
	}
	if y := s.clamp(s.vp.YOffset); y != s.vp.YOffset {
		s.vp.SetYOffset(y)
	}
	if s.vp.YOffset != before {
		s.notify()
	}
}

// Height returns the visible page height.
func (s *pageScroller) Height() int { return s.vp.Height }

// View renders the visible part of the page.
func (s *pageScroller) View() string { return s.vp.View() }
