package nav

// Extent is a section's rendered span in page lines.
type Extent struct {
	Top    int
	Height int
}

// Bottom returns the first line past the extent.
func (e Extent) Bottom() int { return e.Top + e.Height }

// Contains reports whether y falls in [Top, Top+Height).
func (e Extent) Contains(y int) bool {
	return y >= e.Top && y < e.Bottom()
}

// Extents holds the measured extents for one tick. Sections that could not
// be measured are absent.
type Extents map[Section]Extent

// Offsets tunes how the scroll position maps onto sections.
type Offsets struct {
	// Lookahead is added to the scroll offset to form the line, so a
	// section mostly visible under the header counts as active early.
	Lookahead int
	// Header is subtracted from a section's top when navigating to it.
	Header int
}

// State is the navigation state owned by the tracker.
type State struct {
	Active   Section
	MenuOpen bool
}

// InitialState is the state before the first measurement.
func InitialState() State {
	return State{Active: Home}
}

// Event is an input to Step.
type Event interface {
	isEvent()
}

// Scrolled reports the current vertical scroll offset.
type Scrolled struct {
	Offset int
}

// NavigateTo requests programmatic navigation to a section.
type NavigateTo struct {
	Section Section
}

// ToggleMenu flips the compact menu.
type ToggleMenu struct{}

func (Scrolled) isEvent()   {}
func (NavigateTo) isEvent() {}
func (ToggleMenu) isEvent() {}

// ScrollTarget is the scroll effect requested by a transition. OK is false
// when no scroll should be issued.
type ScrollTarget struct {
	Y  int
	OK bool
}

// ActiveAt returns the first section, in declaration order, whose extent
// contains line. When none does, prev is kept.
func ActiveAt(line int, ext Extents, prev Section) Section {
	for _, s := range Sections {
		e, ok := ext[s]
		if !ok {
			continue
		}
		if e.Contains(line) {
			return s
		}
	}
	return prev
}

// Step applies ev to s and returns the next state plus any scroll effect.
func Step(s State, ev Event, ext Extents, off Offsets) (State, ScrollTarget) {
	switch ev := ev.(type) {
	case Scrolled:
		s.Active = ActiveAt(ev.Offset+off.Lookahead, ext, s.Active)
		return s, ScrollTarget{}

	case NavigateTo:
		if !ev.Section.Valid() {
			return s, ScrollTarget{}
		}
		s.Active = ev.Section
		s.MenuOpen = false
		e, ok := ext[ev.Section]
		if !ok {
			return s, ScrollTarget{}
		}
		return s, ScrollTarget{Y: max(0, e.Top-off.Header), OK: true}

	case ToggleMenu:
		s.MenuOpen = !s.MenuOpen
		return s, ScrollTarget{}
	}
	return s, ScrollTarget{}
}
