// Package relativerange provides a selector for ranges measured backwards
// from now: either one of the caller's presets ("last 7 days") or a custom
// amount and unit typed by the user.
//
// The selector keeps three pieces of state, the selected choice, the custom
// amount and the custom unit, and reports a complete daterange.RelativeValue
// after every user action that changes one of them.
package relativerange

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/formkit/internal/daterange"
	"github.com/zjrosen/formkit/internal/i18n"
	"github.com/zjrosen/formkit/internal/keys"
	"github.com/zjrosen/formkit/internal/log"
	"github.com/zjrosen/formkit/internal/ui/component"
	"github.com/zjrosen/formkit/internal/ui/input"
	"github.com/zjrosen/formkit/internal/ui/radiogroup"
	"github.com/zjrosen/formkit/internal/ui/selectfield"
)

// CustomOptionKey is the radio value meaning "custom entry is active".
// Preset keys must not use it.
const CustomOptionKey = daterange.ReservedKey

// Config is the constructor-time configuration of a selector.
type Config struct {
	DateOnly         bool                       // Restrict units to day and coarser
	Options          []daterange.RelativeOption // Presets, in display order; may be empty
	InitialSelection *daterange.RelativeValue   // Seeds the initial state; nil starts in custom mode

	// OnChange receives every value the user produces. It is called
	// synchronously from Update. When nil, the value is delivered as a
	// ChangeMsg through the returned command instead.
	OnChange func(daterange.RelativeValue)

	Strings    i18n.Strings // Zero value falls back to English
	SingleGrid bool         // Stack duration and unit vertically
	Width      int          // Wrap width for descriptions; 0 disables wrapping
}

// ChangeMsg carries a value emitted by a selector without an OnChange callback.
type ChangeMsg struct {
	ID    string
	Value daterange.RelativeValue
}

type target int

const (
	targetNone target = iota
	targetRadio
	targetDuration
	targetUnit
)

// Model is the selector state.
type Model struct {
	id     string
	config Config

	// choice is a preset key or CustomOptionKey.
	choice       string
	customAmount daterange.Amount
	customUnit   daterange.TimeUnit

	radio    radiogroup.Model
	duration input.Model
	unit     selectfield.Model

	focused bool
	target  target
}

// New creates a selector and derives its initial state from
// cfg.InitialSelection.
func New(cfg Config) Model {
	if cfg.Strings.FormatRelativeRange == nil || cfg.Strings.FormatUnit == nil {
		cfg.Strings = i18n.English()
	}

	m := Model{
		id:         component.NewID("relativerange"),
		config:     cfg,
		choice:     CustomOptionKey,
		customUnit: daterange.DefaultUnit(cfg.DateOnly),
	}

	if init := cfg.InitialSelection; init != nil {
		m.customAmount = init.Amount
		if init.Unit.AllowedIn(cfg.DateOnly) {
			m.customUnit = init.Unit
		}
		if _, ok := daterange.FindOption(cfg.Options, init.Key); ok && init.Key != "" {
			m.choice = init.Key
		}
	}

	m.radio = radiogroup.New(radiogroup.Config{
		Items: m.radioItems(),
		Value: m.choice,
	}).SetWidth(cfg.Width)

	m.duration = input.New(input.Config{
		Type:        input.TypeNumber,
		Value:       durationText(m.customAmount),
		Placeholder: cfg.Strings.CustomRelativeRangeDurationPlaceholder,
		Label:       cfg.Strings.CustomRelativeRangeDurationLabel,
		Width:       max(len(cfg.Strings.CustomRelativeRangeDurationPlaceholder), input.DefaultWidth),
	})

	m.unit = selectfield.New(selectfield.Config{
		Options: m.unitOptions(),
		Value:   string(m.customUnit),
		Label:   cfg.Strings.CustomRelativeRangeUnitLabel,
	})

	return m
}

// durationText is the initial duration field text. Zero shows as an empty
// field with the placeholder, like an empty amount.
func durationText(a daterange.Amount) string {
	if v, ok := a.Get(); ok && v == 0 {
		return ""
	}
	return a.String()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// ID returns the selector id carried by its ChangeMsgs.
func (m Model) ID() string { return m.id }

// Value returns the value the selector currently represents. It is the value
// most recently emitted, or the initial state when nothing was emitted yet.
func (m Model) Value() daterange.RelativeValue {
	if m.isPreset() {
		if o, ok := daterange.FindOption(m.config.Options, m.choice); ok {
			return o.Value()
		}
	}
	return daterange.Custom(m.customAmount, m.customUnit)
}

// CustomActive reports whether the custom duration controls are in effect.
func (m Model) CustomActive() bool { return !m.isPreset() }

// SelectedKey returns the selected preset key, or CustomOptionKey.
func (m Model) SelectedKey() string { return m.choice }

// Capturing reports whether a child is consuming keys a parent would
// otherwise act on, such as escape closing the unit list.
func (m Model) Capturing() bool { return m.unit.Expanded() }

func (m Model) isPreset() bool {
	return len(m.config.Options) > 0 && m.choice != CustomOptionKey
}

func (m Model) showRadio() bool { return len(m.config.Options) > 0 }

func (m Model) showCustom() bool {
	return len(m.config.Options) == 0 || m.choice == CustomOptionKey
}

// targets lists the focus targets currently rendered, in tab order.
func (m Model) targets() []target {
	var ts []target
	if m.showRadio() {
		ts = append(ts, targetRadio)
	}
	if m.showCustom() {
		ts = append(ts, targetDuration, targetUnit)
	}
	return ts
}

func (m Model) radioItems() []radiogroup.Item {
	items := make([]radiogroup.Item, 0, len(m.config.Options)+1)
	for _, o := range m.config.Options {
		items = append(items, radiogroup.Item{
			Value: o.Key,
			Label: m.config.Strings.FormatRelativeRange(o.Value()),
		})
	}
	return append(items, radiogroup.Item{
		Value:       CustomOptionKey,
		Label:       m.config.Strings.CustomRelativeRangeOptionLabel,
		Description: m.config.Strings.CustomRelativeRangeOptionDescription,
	})
}

// unitOptions labels the legal units in the number agreeing with the
// current custom amount.
func (m Model) unitOptions() []selectfield.Option {
	units := daterange.Units(m.config.DateOnly)
	opts := make([]selectfield.Option, len(units))
	for i, u := range units {
		opts[i] = selectfield.Option{
			Value: string(u),
			Label: m.config.Strings.FormatUnit(u, m.customAmount),
		}
	}
	return opts
}

// Focus moves keyboard focus to the duration field when it is rendered.
// Otherwise it does nothing.
func (m *Model) Focus() tea.Cmd {
	if !m.showCustom() {
		return nil
	}
	return m.focusTarget(targetDuration)
}

// FocusFirst focuses the first rendered control: the preset list when
// presets exist, the duration field otherwise.
func (m *Model) FocusFirst() tea.Cmd {
	ts := m.targets()
	return m.focusTarget(ts[0])
}

// Blur removes focus from every child.
func (m *Model) Blur() {
	m.radio.Blur()
	m.duration.Blur()
	m.unit.Blur()
	m.focused = false
	m.target = targetNone
}

// Focused reports whether any child has keyboard focus.
func (m Model) Focused() bool { return m.focused }

func (m *Model) focusTarget(t target) tea.Cmd {
	m.radio.Blur()
	m.duration.Blur()
	m.unit.Blur()

	m.focused = true
	m.target = t
	log.Debug(log.CatUI, "relative range focus", "id", m.id, "target", t.String())

	switch t {
	case targetRadio:
		return m.radio.Focus()
	case targetDuration:
		return m.duration.Select()
	case targetUnit:
		return m.unit.Focus()
	}
	return nil
}

func (t target) String() string {
	switch t {
	case targetRadio:
		return "presets"
	case targetDuration:
		return "duration"
	case targetUnit:
		return "unit"
	}
	return "none"
}

// Update handles key, mouse and cursor blink messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if !m.unit.Expanded() {
			switch {
			case key.Matches(msg, keys.Component.Tab):
				return m, m.cycle(1)
			case key.Matches(msg, keys.Component.ShiftTab):
				return m, m.cycle(-1)
			}
		}
		return m.forward(msg, m.target)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		var cmds []tea.Cmd
		for _, t := range m.targets() {
			var cmd tea.Cmd
			m, cmd = m.forward(msg, t)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Cursor blink and other ticks belong to the duration field.
	var cmd tea.Cmd
	m.duration, cmd = m.duration.Update(msg)
	return m, cmd
}

func (m *Model) cycle(delta int) tea.Cmd {
	ts := m.targets()
	current := -1
	for i, t := range ts {
		if t == m.target {
			current = i
		}
	}
	return m.focusTarget(ts[component.NextIndex(current, len(ts), delta)])
}

// forward sends msg to one child and turns an observed change of that
// child's value into a transition.
func (m Model) forward(msg tea.Msg, t target) (Model, tea.Cmd) {
	var cmd, emit tea.Cmd

	switch t {
	case targetRadio:
		before, wasFocused := m.radio.Value(), m.radio.Focused()
		m.radio, cmd = m.radio.Update(msg)
		if !wasFocused && m.radio.Focused() {
			m.takeFocus(targetRadio)
		}
		if after := m.radio.Value(); after != before {
			emit = m.selectChoice(after)
		}

	case targetDuration:
		before, wasFocused := m.duration.Value(), m.duration.Focused()
		m.duration, cmd = m.duration.Update(msg)
		if !wasFocused && m.duration.Focused() {
			m.takeFocus(targetDuration)
		}
		if after := m.duration.Value(); after != before {
			emit = m.editDuration(after)
		}

	case targetUnit:
		before, wasFocused := m.unit.Value(), m.unit.Focused()
		m.unit, cmd = m.unit.Update(msg)
		if !wasFocused && m.unit.Focused() {
			m.takeFocus(targetUnit)
		}
		if after := m.unit.Value(); after != before {
			emit = m.editUnit(daterange.TimeUnit(after))
		}
	}

	return m, tea.Batch(cmd, emit)
}

// takeFocus records that a child focused itself (e.g. on click) and blurs
// the others.
func (m *Model) takeFocus(t target) {
	if t != targetRadio {
		m.radio.Blur()
	}
	if t != targetDuration {
		m.duration.Blur()
	}
	if t != targetUnit {
		m.unit.Blur()
	}
	m.focused = true
	m.target = t
}

func (m *Model) selectChoice(choice string) tea.Cmd {
	m.choice = choice

	if choice == CustomOptionKey {
		m.customAmount = daterange.EmptyAmount()
		m.customUnit = daterange.DefaultUnit(m.config.DateOnly)
		m.duration = m.duration.SetValue("")
		m.unit = m.unit.WithOptions(m.unitOptions()).SetValue(string(m.customUnit))
		return m.emit(daterange.Custom(m.customAmount, m.customUnit))
	}

	o, _ := daterange.FindOption(m.config.Options, choice)
	return m.emit(o.Value())
}

func (m *Model) editDuration(text string) tea.Cmd {
	m.customAmount = daterange.ParseAmount(text)
	m.unit = m.unit.WithOptions(m.unitOptions())
	return m.emit(daterange.Custom(m.customAmount, m.customUnit))
}

func (m *Model) editUnit(unit daterange.TimeUnit) tea.Cmd {
	m.customUnit = unit
	return m.emit(daterange.Custom(m.customAmount, m.customUnit))
}

func (m Model) emit(v daterange.RelativeValue) tea.Cmd {
	log.Debug(log.CatForm, "relative range changed", "id", m.id, "value", v.String())
	if m.config.OnChange != nil {
		m.config.OnChange(v)
		return nil
	}
	id := m.id
	return func() tea.Msg { return ChangeMsg{ID: id, Value: v} }
}
