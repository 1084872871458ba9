package component

import "github.com/charmbracelet/bubbles/key"

// ToggleKeyMap defines keybindings for the cycling toggles.
type ToggleKeyMap struct {
	Toggle key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ToggleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle}
}

// FullHelp returns keybindings for expanded help.
func (k ToggleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultToggleKeyMap returns the default toggle keybindings.
func DefaultToggleKeyMap() ToggleKeyMap {
	return ToggleKeyMap{
		Toggle: key.NewBinding(key.WithKeys("enter", " ", "t"), key.WithHelp("enter/t", "next theme")),
	}
}

// DropdownKeyMap defines keybindings for the dropdown toggle.
type DropdownKeyMap struct {
	Open   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DropdownKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Up, k.Down, k.Select, k.Close}
}

// FullHelp returns keybindings for expanded help.
func (k DropdownKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close},
		{k.Up, k.Down, k.Select},
	}
}

// DefaultDropdownKeyMap returns the default dropdown keybindings.
func DefaultDropdownKeyMap() DropdownKeyMap {
	return DropdownKeyMap{
		Open:   key.NewBinding(key.WithKeys("enter", " ", "o"), key.WithHelp("enter/o", "open")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}
