package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartStop key.Binding
	Manual    key.Binding
	Folder    key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	StartStop: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/stop")),
	Manual:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "type a ticket")),
	Folder:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "storage folder")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "pick ticket")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
