package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScroller(lines, height int) *pageScroller {
	s := newPageScroller(0.35, time.Millisecond)
	s.SetSize(20, height)
	s.SetContent(strings.Repeat("line\n", lines-1) + "line")
	return s
}

func TestScroller_SmoothScrollEasesAndNotifies(t *testing.T) {
	s := newTestScroller(50, 5)
	var offsets []int
	s.OnScroll(func() { offsets = append(offsets, s.ScrollOffset()) })

	s.SmoothScrollTo(20)
	assert.Equal(t, 0, s.ScrollOffset(), "returns before moving")
	require.True(t, s.Animating())

	for i := 0; i < 100 && s.Frame(); i++ {
	}
	assert.Equal(t, 20, s.ScrollOffset())
	assert.False(t, s.Animating())
	require.Greater(t, len(offsets), 1, "every frame notifies")
	for i := 1; i < len(offsets); i++ {
		assert.Greater(t, offsets[i], offsets[i-1])
	}
	assert.Equal(t, 20, offsets[len(offsets)-1])
}

func TestScroller_ClampsTarget(t *testing.T) {
	s := newTestScroller(50, 5)

	s.SmoothScrollTo(1000)
	for i := 0; i < 100 && s.Frame(); i++ {
	}
	assert.Equal(t, 45, s.ScrollOffset())

	s.SmoothScrollTo(-3)
	for i := 0; i < 100 && s.Frame(); i++ {
	}
	assert.Equal(t, 0, s.ScrollOffset())
}

func TestScroller_NoopTarget(t *testing.T) {
	s := newTestScroller(50, 5)
	s.SmoothScrollTo(0)
	assert.False(t, s.Animating())
	assert.Nil(t, s.ensureFrames())
}

func TestScroller_ManualScrollCancelsAnimation(t *testing.T) {
	s := newTestScroller(50, 5)
	s.SmoothScrollTo(30)
	s.Frame()

	s.ScrollBy(-1)
	assert.False(t, s.Animating())
	at := s.ScrollOffset()
	assert.False(t, s.Frame())
	assert.Equal(t, at, s.ScrollOffset())
}

func TestScroller_SingleFrameLoop(t *testing.T) {
	s := newTestScroller(50, 5)
	s.SmoothScrollTo(10)

	require.NotNil(t, s.ensureFrames())
	assert.Nil(t, s.ensureFrames(), "one loop at a time")

	for i := 0; i < 100 && s.onFrame() != nil; i++ {
	}
	assert.Equal(t, 10, s.ScrollOffset())
	assert.False(t, s.ticking)

	s.SmoothScrollTo(0)
	assert.NotNil(t, s.ensureFrames(), "a finished loop can restart")
}

func TestScroller_ListenerRemoval(t *testing.T) {
	s := newTestScroller(50, 5)
	calls := 0
	remove := s.OnScroll(func() { calls++ })
	assert.Equal(t, 1, s.Listeners())

	s.ScrollBy(1)
	remove()
	s.ScrollBy(1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Listeners())
}

func TestScroller_ShrinkingContentReclamps(t *testing.T) {
	s := newTestScroller(50, 5)
	s.ScrollToEdge(true)
	require.Equal(t, 45, s.ScrollOffset())

	notified := false
	s.OnScroll(func() { notified = true })
	s.SetContent(strings.Repeat("x\n", 9) + "x")
	assert.Equal(t, 5, s.ScrollOffset())
	assert.True(t, notified)
}
