package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeViewport records scroll requests and lets tests drive scroll events.
type fakeViewport struct {
	offset    int
	scrolls   []int
	listeners map[int]func()
	nextID    int
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{listeners: make(map[int]func())}
}

func (f *fakeViewport) ScrollOffset() int { return f.offset }

func (f *fakeViewport) SmoothScrollTo(y int) { f.scrolls = append(f.scrolls, y) }

func (f *fakeViewport) OnScroll(fn func()) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() { delete(f.listeners, id) }
}

func (f *fakeViewport) scrollTo(y int) {
	f.offset = y
	for _, fn := range f.listeners {
		fn()
	}
}

func fixed(e Extent) ExtentFunc {
	return func() (Extent, bool) { return e, true }
}

func unmounted() (Extent, bool) { return Extent{}, false }

func newScenarioTracker(vp Viewport) *Tracker {
	tr := NewTracker(Offsets{Lookahead: 100, Header: 80}, vp)
	tr.Register(Home, fixed(Extent{Top: 0, Height: 500}))
	tr.Register(About, fixed(Extent{Top: 500, Height: 600}))
	tr.Register(Projects, fixed(Extent{Top: 1100, Height: 700}))
	return tr
}

func TestTracker_DefaultsToHome(t *testing.T) {
	tr := NewTracker(Offsets{}, nil)
	assert.Equal(t, Home, tr.Active())
	assert.False(t, tr.MenuOpen())
}

func TestTracker_MountMeasuresInitialState(t *testing.T) {
	vp := newFakeViewport()
	vp.offset = 450
	tr := newScenarioTracker(vp)

	tr.Mount()
	assert.Equal(t, About, tr.Active())
}

func TestTracker_FollowsScroll(t *testing.T) {
	vp := newFakeViewport()
	tr := newScenarioTracker(vp)
	tr.Mount()

	vp.scrollTo(450)
	assert.Equal(t, About, tr.Active())

	vp.scrollTo(0)
	assert.Equal(t, Home, tr.Active())

	vp.scrollTo(1500)
	assert.Equal(t, Projects, tr.Active())
}

func TestTracker_NoFlickerPastLastSection(t *testing.T) {
	vp := newFakeViewport()
	tr := newScenarioTracker(vp)
	tr.Mount()

	vp.scrollTo(1500)
	require.Equal(t, Projects, tr.Active())

	vp.scrollTo(5000)
	assert.Equal(t, Projects, tr.Active())
}

func TestTracker_MountRegistersListenerOnce(t *testing.T) {
	vp := newFakeViewport()
	tr := newScenarioTracker(vp)

	tr.Mount()
	tr.Mount()
	assert.Len(t, vp.listeners, 1)
	assert.True(t, tr.Mounted())

	tr.Unmount()
	assert.Empty(t, vp.listeners)
	assert.False(t, tr.Mounted())

	// Scrolling after teardown leaves the state alone.
	vp.scrollTo(1500)
	assert.Equal(t, Home, tr.Active())

	tr.Unmount()
}

func TestTracker_NavigateScrollsBelowHeader(t *testing.T) {
	vp := newFakeViewport()
	tr := newScenarioTracker(vp)
	tr.Mount()

	tr.Navigate(Projects)
	assert.Equal(t, Projects, tr.Active(), "active is set before the scroll completes")
	assert.Equal(t, []int{1020}, vp.scrolls)

	tr.Navigate(Home)
	assert.Equal(t, []int{1020, 0}, vp.scrolls, "target is clamped at the page top")
}

func TestTracker_NavigateClosesMenu(t *testing.T) {
	tr := newScenarioTracker(newFakeViewport())
	tr.ToggleMenu()
	require.True(t, tr.MenuOpen())

	tr.Navigate(About)
	assert.False(t, tr.MenuOpen())
	assert.Equal(t, About, tr.Active())
}

func TestTracker_NavigateToUnmountedSection(t *testing.T) {
	vp := newFakeViewport()
	tr := newScenarioTracker(vp)
	tr.Register(Contact, unmounted)
	tr.Mount()

	tr.Navigate(Contact)
	assert.Equal(t, Contact, tr.Active())
	assert.Empty(t, vp.scrolls)
}

func TestTracker_SkipsUnmountedHandles(t *testing.T) {
	vp := newFakeViewport()
	tr := NewTracker(Offsets{Lookahead: 100}, vp)
	tr.Register(Home, unmounted)
	tr.Register(About, fixed(Extent{Top: 0, Height: 500}))
	tr.Mount()

	assert.Equal(t, About, tr.Active())
	assert.NotContains(t, tr.Measure(), Home)
}

func TestTracker_ManualOnlyWithoutViewport(t *testing.T) {
	tr := newScenarioTracker(nil)

	assert.NotPanics(t, func() {
		tr.Mount()
		tr.Refresh()
		tr.Navigate(Projects)
		tr.Unmount()
	})
	assert.Equal(t, Projects, tr.Active())
	assert.False(t, tr.Mounted())
}

func TestTracker_NavigateNextPrev(t *testing.T) {
	tr := newScenarioTracker(newFakeViewport())

	tr.NavigateNext()
	assert.Equal(t, About, tr.Active())
	tr.NavigatePrev()
	tr.NavigatePrev()
	assert.Equal(t, Contact, tr.Active())
}

func TestTracker_RegisterIgnoresInvalid(t *testing.T) {
	tr := NewTracker(Offsets{}, nil)
	tr.Register(Section(-1), fixed(Extent{Height: 10}))
	tr.Register(About, nil)
	assert.Empty(t, tr.Measure())
}
