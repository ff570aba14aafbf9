// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeys are shared by every widget.
type CommonKeys struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ComponentKeys drive focus and value changes inside form widgets.
type ComponentKeys struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Next     key.Binding
	Prev     key.Binding
	Toggle   key.Binding
	Save     key.Binding
	Focus    key.Binding
}

// PlaygroundKeys are only active in the component playground.
type PlaygroundKeys struct {
	SwitchPane key.Binding
	Reset      key.Binding
}

// Common holds the shared navigation bindings.
var Common = CommonKeys{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "move right"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Component holds the form widget bindings.
var Component = ComponentKeys{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Next: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "previous field"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
	Focus: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "focus duration"),
	),
}

// Playground holds the showcase bindings.
var Playground = PlaygroundKeys{
	SwitchPane: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "switch pane"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset component"),
	),
}

// PromptKeyMap is the help.KeyMap shown under the range prompt.
type PromptKeyMap struct{}

// ShortHelp returns keybindings for the short help view.
func (PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{Component.Tab, Component.Toggle, Component.Save, Common.Escape, Common.Help}
}

// FullHelp returns keybindings for the full help view.
func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{Common.Up, Common.Down, Component.Tab, Component.ShiftTab},
		{Component.Toggle, Component.Focus, Component.Save, Common.Escape},
		{Common.Help, Common.Quit},
	}
}
