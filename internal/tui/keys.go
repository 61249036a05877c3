package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the viewer's key bindings. Scrolling keys are handled by the
// viewport's own key map.
type keyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Help   key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "q/esc: quit  ↑/↓ j/k: scroll  pgup/pgdn: page  g/G: top/bottom  ?: toggle help"
