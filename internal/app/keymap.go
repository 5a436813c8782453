package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global key bindings.
type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Home        key.Binding
	About       key.Binding
	Projects    key.Binding
	Contact     key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Menu        key.Binding
	Theme       key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PrevProject key.Binding
	NextProject key.Binding
	Open        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Home:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		About:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "about")),
		Projects:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "projects")),
		Contact:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "contact")),
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Menu:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		PrevProject: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev project")),
		NextProject: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next project")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Open, k.Menu, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.About, k.Projects, k.Contact, k.NextSection, k.PrevSection},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.PrevProject, k.NextProject, k.Open, k.Menu, k.Theme, k.Quit},
	}
}
