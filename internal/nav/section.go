package nav

import (
	"fmt"
	"strings"
)

// Section identifies one of the fixed, tracked regions of the page.
type Section int

const (
	Home Section = iota
	About
	Projects
	Contact
)

// Sections lists every tracked section in declaration order. The order is
// significant: it breaks ties when extents overlap.
var Sections = []Section{Home, About, Projects, Contact}

var sectionNames = [...]string{"home", "about", "projects", "contact"}

// String returns the lowercase identifier ("home", "about", ...).
func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionNames[s]
}

// Title returns the capitalized label shown in the nav bar.
func (s Section) Title() string {
	name := s.String()
	if !s.Valid() {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Valid reports whether s is one of the declared sections.
func (s Section) Valid() bool {
	return s >= Home && s <= Contact
}

// ParseSection resolves a section identifier, case-insensitively.
func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Sections {
		if sectionNames[s] == name {
			return s, nil
		}
	}
	return Home, fmt.Errorf("unknown section %q", name)
}

// Next returns the section after s, wrapping around to Home.
func (s Section) Next() Section {
	return Section((int(s) + 1) % len(Sections))
}

// Prev returns the section before s, wrapping around to Contact.
func (s Section) Prev() Section {
	return Section((int(s) - 1 + len(Sections)) % len(Sections))
}
