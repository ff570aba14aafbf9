// Package selectfield provides a collapsible single-choice dropdown.
package selectfield

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/formkit/internal/keys"
	"github.com/zjrosen/formkit/internal/ui/component"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

const caret = "▾"

// Option is one choice in the dropdown.
type Option struct {
	Value string
	Label string
}

// Config controls select content and behavior.
type Config struct {
	Options []Option
	Value   string
	Label   string // Accessible name
	Width   int    // Maximum label width; 0 sizes to the widest option

	// OnChange is called synchronously when a different option is committed.
	OnChange func(value string)
}

// Model is the select state.
type Model struct {
	id       string
	config   Config
	value    string
	cursor   int
	expanded bool
	focused  bool
}

// New creates a select from cfg.
func New(cfg Config) Model {
	m := Model{
		id:     component.NewID("select"),
		config: cfg,
		value:  cfg.Value,
	}
	m.cursor = max(m.indexOf(cfg.Value), 0)
	return m
}

// ID returns the zone id of the collapsed control.
func (m Model) ID() string { return m.id }

// Label returns the accessible name.
func (m Model) Label() string { return m.config.Label }

// Value returns the selected option value.
func (m Model) Value() string { return m.value }

// Expanded reports whether the option list is open.
func (m Model) Expanded() bool { return m.expanded }

// SetValue selects v without calling OnChange.
func (m Model) SetValue(v string) Model {
	m.value = v
	m.cursor = max(m.indexOf(v), 0)
	return m
}

// WithOptions replaces the options, e.g. to relabel them for the current
// amount. The selected value is kept.
func (m Model) WithOptions(opts []Option) Model {
	m.config.Options = opts
	if m.cursor >= len(opts) {
		m.cursor = max(len(opts)-1, 0)
	}
	return m
}

// Focus gives the select keyboard focus.
func (m *Model) Focus() tea.Cmd {
	if len(m.config.Options) == 0 {
		return nil
	}
	m.focused = true
	return nil
}

// Blur removes focus and collapses the list.
func (m *Model) Blur() {
	m.focused = false
	m.expanded = false
}

// Focused reports whether the select has keyboard focus.
func (m Model) Focused() bool { return m.focused }

// Update handles key and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if !m.expanded {
			if key.Matches(msg, keys.Component.Toggle) {
				m.expanded = true
				m.cursor = max(m.indexOf(m.value), 0)
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Common.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Common.Down):
			if m.cursor < len(m.config.Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Component.Toggle):
			m.commit(m.cursor)
		case key.Matches(msg, keys.Common.Escape):
			m.expanded = false
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		if m.expanded {
			for i := range m.config.Options {
				if z := zone.Get(m.optionID(i)); z != nil && z.InBounds(msg) {
					m.commit(i)
					return m, nil
				}
			}
		}
		if z := zone.Get(m.id); z != nil && z.InBounds(msg) {
			m.focused = true
			m.expanded = !m.expanded
		}
	}
	return m, nil
}

func (m *Model) commit(i int) {
	m.expanded = false
	m.cursor = i
	v := m.config.Options[i].Value
	if v == m.value {
		return
	}
	m.value = v
	if m.config.OnChange != nil {
		m.config.OnChange(v)
	}
}

func (m Model) indexOf(v string) int {
	for i, o := range m.config.Options {
		if o.Value == v {
			return i
		}
	}
	return -1
}

func (m Model) optionID(i int) string {
	return component.ChildID(m.id, "option-"+strconv.Itoa(i))
}

func (m Model) labelWidth() int {
	w := 0
	for _, o := range m.config.Options {
		w = max(w, runewidth.StringWidth(o.Label))
	}
	if m.config.Width > 0 {
		w = min(w, m.config.Width)
	}
	return w
}

func (m Model) fit(label string, width int) string {
	label = ansi.Truncate(label, width, "…")
	return label + strings.Repeat(" ", max(width-runewidth.StringWidth(label), 0))
}

// View renders the collapsed control and, when expanded, the option list
// beneath it.
func (m Model) View() string {
	width := m.labelWidth()

	selected := ""
	if i := m.indexOf(m.value); i >= 0 {
		selected = m.config.Options[i].Label
	}
	head := m.fit(selected, width) + " " + caret
	if m.focused {
		head = styles.FocusedLabelStyle.Render(head)
	}
	head = "[" + head + "]"

	var sb strings.Builder
	sb.WriteString(zone.Mark(m.id, head))
	if !m.expanded {
		return sb.String()
	}

	for i, o := range m.config.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.SelectionIndicatorStyle.Render(">") + " "
		}
		label := m.fit(o.Label, width)
		if o.Value == m.value {
			label = styles.ControlMarkStyle.Render(label)
		}
		sb.WriteString("\n" + zone.Mark(m.optionID(i), cursor+label))
	}
	return sb.String()
}
