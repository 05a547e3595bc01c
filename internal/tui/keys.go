package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	swap    key.Binding
	refresh key.Binding
	copy    key.Binding
	version key.Binding
}

// Converter bindings use ctrl chords so they never collide with typing in
// the amount field.
var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("ctrl+l")),
	swap:    key.NewBinding(key.WithKeys("ctrl+s")),
	refresh: key.NewBinding(key.WithKeys("ctrl+r")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	version: key.NewBinding(key.WithKeys("v")),
}
