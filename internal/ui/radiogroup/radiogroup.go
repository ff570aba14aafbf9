// Package radiogroup provides a vertical single-choice list.
package radiogroup

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/formkit/internal/keys"
	"github.com/zjrosen/formkit/internal/ui/component"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

const descriptionIndent = "      "

// Item is one choice in the group.
type Item struct {
	Value       string
	Label       string
	Description string // Optional, rendered under the label
}

// Config controls group content and behavior.
type Config struct {
	Items []Item
	Value string // Initially checked item value; empty checks nothing

	// OnChange is called synchronously when a different item is checked.
	OnChange func(value string)
}

// Model is the radio group state.
type Model struct {
	id      string
	config  Config
	value   string
	cursor  int
	focused bool
	width   int
}

// New creates a radio group from cfg. The cursor starts on the checked item.
func New(cfg Config) Model {
	m := Model{
		id:     component.NewID("radio"),
		config: cfg,
		value:  cfg.Value,
	}
	if i := m.indexOf(cfg.Value); i >= 0 {
		m.cursor = i
	}
	return m
}

// ID returns the zone id prefix of the group.
func (m Model) ID() string { return m.id }

// Value returns the checked item's value, or "" when nothing is checked.
func (m Model) Value() string { return m.value }

// Items returns the configured items.
func (m Model) Items() []Item { return m.config.Items }

// Cursor returns the index of the highlighted item.
func (m Model) Cursor() int { return m.cursor }

// SetValue checks the item with value v without calling OnChange.
func (m Model) SetValue(v string) Model {
	m.value = v
	if i := m.indexOf(v); i >= 0 {
		m.cursor = i
	}
	return m
}

// SetItems replaces the items, keeping the checked value.
func (m Model) SetItems(items []Item) Model {
	m.config.Items = items
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
	return m
}

// SetWidth sets the wrap width for descriptions.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// Focus gives the group keyboard focus. A group without items ignores it.
func (m *Model) Focus() tea.Cmd {
	if len(m.config.Items) == 0 {
		return nil
	}
	m.focused = true
	return nil
}

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the group has keyboard focus.
func (m Model) Focused() bool { return m.focused }

// Update handles key and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused || len(m.config.Items) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Common.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Common.Down):
			if m.cursor < len(m.config.Items)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Component.Toggle):
			m.check(m.cursor)
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		for i := range m.config.Items {
			if z := zone.Get(m.itemID(i)); z != nil && z.InBounds(msg) {
				m.focused = true
				m.cursor = i
				m.check(i)
				break
			}
		}
	}
	return m, nil
}

func (m *Model) check(i int) {
	v := m.config.Items[i].Value
	if v == m.value {
		return
	}
	m.value = v
	if m.config.OnChange != nil {
		m.config.OnChange(v)
	}
}

func (m Model) indexOf(v string) int {
	for i, it := range m.config.Items {
		if it.Value == v {
			return i
		}
	}
	return -1
}

func (m Model) itemID(i int) string {
	return component.ChildID(m.id, "item-"+strconv.Itoa(i))
}

// View renders the group, one item per line.
func (m Model) View() string {
	var sb strings.Builder
	for i, it := range m.config.Items {
		if i > 0 {
			sb.WriteString("\n")
		}

		cursor := " "
		if m.focused && i == m.cursor {
			cursor = styles.SelectionIndicatorStyle.Render(">")
		}
		mark := "( )"
		if m.indexOf(m.value) == i {
			mark = "(" + styles.ControlMarkStyle.Render("•") + ")"
		}
		label := it.Label
		if m.focused && i == m.cursor {
			label = styles.FocusedLabelStyle.Render(label)
		}

		row := cursor + " " + mark + " " + label
		if it.Description != "" {
			desc := it.Description
			if m.width > len(descriptionIndent) {
				desc = wordwrap.String(desc, m.width-len(descriptionIndent))
			}
			for _, line := range strings.Split(desc, "\n") {
				row += "\n" + descriptionIndent + styles.DescriptionStyle.Render(line)
			}
		}
		sb.WriteString(zone.Mark(m.itemID(i), row))
	}
	return sb.String()
}
