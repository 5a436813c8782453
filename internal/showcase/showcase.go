// Package showcase manages the single project open for detailed viewing and
// derives the media order handed to the gallery.
package showcase

import "github.com/marcus/folio/internal/content"

// State is either Closed or Open.
type State interface {
	isState()
}

// Closed means no project is being shown.
type Closed struct{}

// Open holds the project being shown.
type Open struct {
	Project content.Project
}

func (Closed) isState() {}
func (Open) isState()   {}

// Event is an input to Next.
type Event interface {
	isEvent()
}

// SelectEvent opens a project, replacing any open one.
type SelectEvent struct {
	Project content.Project
}

// CloseEvent closes the showcase.
type CloseEvent struct{}

func (SelectEvent) isEvent() {}
func (CloseEvent) isEvent()  {}

// Next returns the state after ev. The state machine cycles between Closed
// and Open for the life of the page; there is no terminal state.
func Next(s State, ev Event) State {
	switch ev := ev.(type) {
	case SelectEvent:
		return Open{Project: ev.Project}
	case CloseEvent:
		return Closed{}
	}
	return s
}

// Selector owns the showcase state.
type Selector struct {
	state State
}

// NewSelector returns a closed selector.
func NewSelector() *Selector {
	return &Selector{state: Closed{}}
}

// Select opens p. Content is not validated.
func (s *Selector) Select(p content.Project) {
	s.state = Next(s.state, SelectEvent{Project: p})
}

// Close closes the showcase. Closing a closed showcase does nothing.
func (s *Selector) Close() {
	s.state = Next(s.state, CloseEvent{})
}

// State returns the current state.
func (s *Selector) State() State { return s.state }

// Selected returns the open project, if any.
func (s *Selector) Selected() (content.Project, bool) {
	if open, ok := s.state.(Open); ok {
		return open.Project, true
	}
	return content.Project{}, false
}

// IsOpen reports whether a project is open.
func (s *Selector) IsOpen() bool {
	_, ok := s.state.(Open)
	return ok
}

// OrderedMedia returns videos first, then images, each group keeping its
// original relative order. The input slice is not modified.
func OrderedMedia(media []content.MediaItem) []content.MediaItem {
	out := make([]content.MediaItem, 0, len(media))
	for _, m := range media {
		if m.Kind == content.MediaVideo {
			out = append(out, m)
		}
	}
	for _, m := range media {
		if m.Kind == content.MediaImage {
			out = append(out, m)
		}
	}
	return out
}

// Props is what the gallery renderer receives.
type Props struct {
	Open         bool
	OrderedMedia []content.MediaItem
	Title        string
	Description  string
	Tags         []string
}

// Props builds the renderer input for the current state.
func (s *Selector) Props() Props {
	p, ok := s.Selected()
	if !ok {
		return Props{}
	}
	desc := p.LongDescription
	if desc == "" {
		desc = p.ShortDescription
	}
	return Props{
		Open:         true,
		OrderedMedia: OrderedMedia(p.Media),
		Title:        p.Title,
		Description:  desc,
		Tags:         p.TechTags,
	}
}
