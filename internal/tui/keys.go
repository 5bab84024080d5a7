package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Delete  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous period")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next period")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle today")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add habit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete habit")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.Delete, m.keys.NextTab, m.keys.Quit}
}

// FullHelp implements help.KeyMap
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right},
		{m.keys.Toggle, m.keys.Add, m.keys.Delete},
		{m.keys.NextTab, m.keys.PrevTab, m.keys.Help, m.keys.Quit},
	}
}
