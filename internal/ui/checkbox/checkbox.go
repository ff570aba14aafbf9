// Package checkbox provides a focusable, mouse-aware checkbox widget.
package checkbox

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/formkit/internal/keys"
	"github.com/zjrosen/formkit/internal/ui/component"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

const descriptionIndent = "    "

// Config controls checkbox content and behavior.
type Config struct {
	Label       string // Text shown after the box
	Description string // Optional secondary text below the label
	Name        string // Form field name reported by Name()
	Checked     bool   // Initial state
	Disabled    bool   // Disabled checkboxes cannot change or receive focus

	// OnChange is called synchronously whenever the user toggles the box.
	OnChange func(checked bool)
	OnFocus  func()
	OnBlur   func()
}

// Model is the checkbox state.
type Model struct {
	id      string
	config  Config
	checked bool
	focused bool
	width   int
}

// New creates a checkbox from cfg.
func New(cfg Config) Model {
	return Model{
		id:      component.NewID("checkbox"),
		config:  cfg,
		checked: cfg.Checked,
	}
}

// ID returns the zone id of the checkbox.
func (m Model) ID() string { return m.id }

// Name returns the configured form field name.
func (m Model) Name() string { return m.config.Name }

// Checked reports the current state.
func (m Model) Checked() bool { return m.checked }

// Disabled reports whether the checkbox is disabled.
func (m Model) Disabled() bool { return m.config.Disabled }

// SetChecked sets the state without calling OnChange.
func (m Model) SetChecked(checked bool) Model {
	m.checked = checked
	return m
}

// SetWidth sets the wrap width for the description.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// CanFocus reports whether the checkbox accepts focus.
func (m Model) CanFocus() bool { return !m.config.Disabled }

// Focus gives the checkbox keyboard focus. Disabled checkboxes ignore it.
func (m *Model) Focus() tea.Cmd {
	if m.config.Disabled || m.focused {
		return nil
	}
	m.focused = true
	if m.config.OnFocus != nil {
		m.config.OnFocus()
	}
	return nil
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	if !m.focused {
		return
	}
	m.focused = false
	if m.config.OnBlur != nil {
		m.config.OnBlur()
	}
}

// Focused reports whether the checkbox has keyboard focus.
func (m Model) Focused() bool { return m.focused }

// Update handles key and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.config.Disabled {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focused && key.Matches(msg, keys.Component.Toggle) {
			m.toggle()
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			if z := zone.Get(m.id); z != nil && z.InBounds(msg) {
				cmd := m.Focus()
				m.toggle()
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m *Model) toggle() {
	m.checked = !m.checked
	if m.config.OnChange != nil {
		m.config.OnChange(m.checked)
	}
}

// View renders the checkbox.
func (m Model) View() string {
	mark := "[ ]"
	if m.checked {
		mark = "[" + styles.ControlMarkStyle.Render("x") + "]"
	}

	label := m.config.Label
	switch {
	case m.config.Disabled:
		mark = styles.DisabledStyle.Render(mark)
		label = styles.DisabledStyle.Render(label)
	case m.focused:
		label = styles.FocusedLabelStyle.Render(label)
	}

	cursor := " "
	if m.focused {
		cursor = styles.SelectionIndicatorStyle.Render(">")
	}

	var sb strings.Builder
	sb.WriteString(zone.Mark(m.id, cursor+mark+" "+label))

	if m.config.Description != "" {
		desc := m.config.Description
		if m.width > len(descriptionIndent) {
			desc = wordwrap.String(desc, m.width-len(descriptionIndent))
		}
		for _, line := range strings.Split(desc, "\n") {
			sb.WriteString("\n" + descriptionIndent + styles.DescriptionStyle.Render(line))
		}
	}
	return sb.String()
}
