// Package input wraps bubbles/textinput with the form widget contract:
// change callbacks, focus callbacks, disabled and read-only states, and a
// numeric mode.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/formkit/internal/ui/component"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

// Type selects how typed text is filtered.
type Type int

const (
	// TypeText accepts any text.
	TypeText Type = iota
	// TypeNumber accepts only runes that can appear in a number literal.
	TypeNumber
)

// DefaultWidth is used when Config.Width is zero.
const DefaultWidth = 12

// Config controls input content and behavior.
type Config struct {
	Type        Type
	Value       string
	Placeholder string
	Label       string // Accessible name, used by parents that render a caption
	Disabled    bool
	ReadOnly    bool // Focusable and navigable, but the text cannot change
	AutoFocus   bool
	CharLimit   int
	Width       int

	// OnChange is called synchronously with the new text after every edit
	// that changes it.
	OnChange func(value string)
	OnFocus  func()
	OnBlur   func()
}

// Model is the input state.
type Model struct {
	id     string
	config Config
	ti     textinput.Model
}

// New creates an input from cfg. AutoFocus focuses it immediately; the
// caller should run Init to start the cursor blink.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Placeholder
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.Width = cfg.Width
	if ti.Width <= 0 {
		ti.Width = DefaultWidth
	}
	if cfg.CharLimit > 0 {
		ti.CharLimit = cfg.CharLimit
	}
	ti.SetValue(filter(cfg.Type, cfg.Value))

	m := Model{
		id:     component.NewID("input"),
		config: cfg,
		ti:     ti,
	}
	if cfg.AutoFocus && !cfg.Disabled {
		m.ti.Focus()
	}
	return m
}

// Init starts the cursor blink when the input was created focused.
func (m Model) Init() tea.Cmd {
	if m.ti.Focused() {
		return textinput.Blink
	}
	return nil
}

// ID returns the zone id of the input.
func (m Model) ID() string { return m.id }

// Label returns the accessible name.
func (m Model) Label() string { return m.config.Label }

// Value returns the current text.
func (m Model) Value() string { return m.ti.Value() }

// SetValue replaces the text without calling OnChange.
func (m Model) SetValue(v string) Model {
	m.ti.SetValue(filter(m.config.Type, v))
	return m
}

// SetWidth sets the visible width.
func (m Model) SetWidth(w int) Model {
	if w > 0 {
		m.ti.Width = w
	}
	return m
}

// Focus gives the input keyboard focus and returns the blink command.
// Disabled inputs ignore it.
func (m *Model) Focus() tea.Cmd {
	if m.config.Disabled {
		return nil
	}
	wasFocused := m.ti.Focused()
	cmd := m.ti.Focus()
	if !wasFocused && m.config.OnFocus != nil {
		m.config.OnFocus()
	}
	return cmd
}

// Select focuses the input and places the cursor after the text.
func (m *Model) Select() tea.Cmd {
	cmd := m.Focus()
	m.ti.CursorEnd()
	return cmd
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	if !m.ti.Focused() {
		return
	}
	m.ti.Blur()
	if m.config.OnBlur != nil {
		m.config.OnBlur()
	}
}

// Focused reports whether the input has keyboard focus.
func (m Model) Focused() bool { return m.ti.Focused() }

// Update handles key and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.config.Disabled {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			if z := zone.Get(m.id); z != nil && z.InBounds(msg) {
				return m, m.Focus()
			}
		}
		return m, nil

	case tea.KeyMsg:
		if !m.ti.Focused() {
			return m, nil
		}
		if msg.Type == tea.KeyRunes && m.config.Type == TypeNumber {
			msg.Runes = []rune(filter(TypeNumber, string(msg.Runes)))
			if len(msg.Runes) == 0 {
				return m, nil
			}
		}
		before := m.ti.Value()
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		after := m.ti.Value()
		if after != before {
			if m.config.ReadOnly {
				m.ti.SetValue(before)
			} else if m.config.OnChange != nil {
				m.config.OnChange(after)
			}
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// View renders the input.
func (m Model) View() string {
	if m.config.Disabled {
		text := m.ti.Value()
		if text == "" {
			text = m.ti.Placeholder
		}
		return zone.Mark(m.id, styles.DisabledStyle.Render(text))
	}
	return zone.Mark(m.id, m.ti.View())
}

func filter(t Type, s string) string {
	if t != TypeNumber {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isNumberRune(r) {
			return r
		}
		return -1
	}, s)
}

func isNumberRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		return true
	}
	return false
}
