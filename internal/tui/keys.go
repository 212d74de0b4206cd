package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down      key.Binding
	Up        key.Binding
	PageDown  key.Binding
	PageUp    key.Binding
	First     key.Binding
	Last      key.Binding
	Enter     key.Binding
	GoUp      key.Binding
	Refresh   key.Binding
	SortSize  key.Binding
	SortMTime key.Binding
	SortCount key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j / ↓", "Move down 1 item")),
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k / ↑", "Move up 1 item")),
	PageDown:  key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("Ctrl+d / PgDn", "Move down 10 items")),
	PageUp:    key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("Ctrl+u / PgUp", "Move up 10 items")),
	First:     key.NewBinding(key.WithKeys("H", "home"), key.WithHelp("H / Home", "Go to first item")),
	Last:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G / End", "Go to last item")),
	Enter:     key.NewBinding(key.WithKeys("enter", "right", "l", "o"), key.WithHelp("o / l / Enter", "Enter directory")),
	GoUp:      key.NewBinding(key.WithKeys("backspace", "left", "h", "u"), key.WithHelp("u / h / Bksp", "Go up one level")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Refresh current view")),
	SortSize:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Toggle sort by size")),
	SortMTime: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "Toggle sort by mtime")),
	SortCount: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Toggle sort by count")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle this help")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q / Esc", "Quit")),
}
