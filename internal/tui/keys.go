package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	lookup   key.Binding
	search   key.Binding
	filter   key.Binding
	refresh  key.Binding
	projects key.Binding
	shopping key.Binding
	edit     key.Binding
	delete   key.Binding
	status   key.Binding
	material key.Binding
	copy     key.Binding
	space    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	lookup:   key.NewBinding(key.WithKeys("b")),
	search:   key.NewBinding(key.WithKeys("/")),
	filter:   key.NewBinding(key.WithKeys("f")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	projects: key.NewBinding(key.WithKeys("p")),
	shopping: key.NewBinding(key.WithKeys("s")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	status:   key.NewBinding(key.WithKeys("t")),
	material: key.NewBinding(key.WithKeys("m")),
	copy:     key.NewBinding(key.WithKeys("c")),
	space:    key.NewBinding(key.WithKeys(" ")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
