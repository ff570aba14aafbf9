package playground

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/formkit/internal/config"
	"github.com/zjrosen/formkit/internal/daterange"
	"github.com/zjrosen/formkit/internal/i18n"
	"github.com/zjrosen/formkit/internal/pubsub"
	"github.com/zjrosen/formkit/internal/ui/checkbox"
	"github.com/zjrosen/formkit/internal/ui/component"
	"github.com/zjrosen/formkit/internal/ui/formfield"
	"github.com/zjrosen/formkit/internal/ui/input"
	"github.com/zjrosen/formkit/internal/ui/radiogroup"
	"github.com/zjrosen/formkit/internal/ui/relativerange"
	"github.com/zjrosen/formkit/internal/ui/selectfield"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

// ComponentDemo represents a demo-able component in the playground.
type ComponentDemo struct {
	Name        string
	Description string
	Create      func(pub pubsub.Publisher[string], width, height int) DemoModel
}

// DemoModel is the interface that all demo models must implement.
// Widget callbacks publish a description of each change on the publisher
// the demo was created with.
type DemoModel interface {
	Update(msg tea.Msg) (DemoModel, tea.Cmd)
	View() string
	SetSize(width, height int) DemoModel
	Reset() DemoModel
	NeedsEscKey() bool // True while the demo consumes Esc, e.g. an open select

	// Activate focuses the first control when the demo pane gains focus.
	Activate() tea.Cmd
	// Focusable is the handle ctrl+f exercises.
	Focusable() component.Focusable
}

// GetComponentDemos returns the registry of all component demos.
func GetComponentDemos() []ComponentDemo {
	return []ComponentDemo{
		{Name: "checkbox", Description: "Toggle with label and description", Create: createCheckboxDemo},
		{Name: "input", Description: "Text and number inputs", Create: createInputDemo},
		{Name: "radiogroup", Description: "Single choice list", Create: createRadioDemo},
		{Name: "select", Description: "Dropdown select", Create: createSelectDemo},
		{Name: "range", Description: "Relative range with presets", Create: createRangeDemo(rangeVariantPresets)},
		{Name: "range (dates)", Description: "Date-only relative range", Create: createRangeDemo(rangeVariantDateOnly)},
		{Name: "range (custom)", Description: "No presets, single grid", Create: createRangeDemo(rangeVariantCustom)},
		{Name: "Theme Tokens", Description: "All theme color tokens", Create: createThemeTokensDemo},
	}
}

// CheckboxDemoModel shows an enabled and a disabled checkbox.
type CheckboxDemoModel struct {
	pub      pubsub.Publisher[string]
	notify   checkbox.Model
	disabled checkbox.Model
	width    int
	height   int
}

func createCheckboxDemo(pub pubsub.Publisher[string], width, height int) DemoModel {
	m := &CheckboxDemoModel{pub: pub, width: width, height: height}
	m.notify = checkbox.New(checkbox.Config{
		Label:       "Notify me",
		Description: "Send an email when the export finishes",
		Name:        "notify",
		OnChange:    func(checked bool) { pub.Publish(pubsub.ChangedEvent, fmt.Sprintf("Notify me: %t", checked)) },
	}).SetWidth(width)
	m.disabled = checkbox.New(checkbox.Config{Label: "Locked option", Checked: true, Disabled: true})
	return m
}

func (m *CheckboxDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	var cmd tea.Cmd
	m.notify, cmd = m.notify.Update(msg)
	m.disabled, _ = m.disabled.Update(msg)
	return m, cmd
}

func (m *CheckboxDemoModel) View() string {
	return m.notify.View() + "\n\n" + m.disabled.View()
}

func (m *CheckboxDemoModel) SetSize(width, height int) DemoModel {
	m.width, m.height = width, height
	m.notify = m.notify.SetWidth(width)
	return m
}

func (m *CheckboxDemoModel) Reset() DemoModel {
	return createCheckboxDemo(m.pub, m.width, m.height)
}

func (m *CheckboxDemoModel) NeedsEscKey() bool { return false }
func (m *CheckboxDemoModel) Activate() tea.Cmd { return m.notify.Focus() }
func (m *CheckboxDemoModel) Focusable() component.Focusable { return &m.notify }

// InputDemoModel shows a text input and a number input, tab moves between them.
type InputDemoModel struct {
	pub     pubsub.Publisher[string]
	text    input.Model
	number  input.Model
	current int
	width   int
	height  int
}

func createInputDemo(pub pubsub.Publisher[string], width, height int) DemoModel {
	return &InputDemoModel{
		pub: pub,
		text: input.New(input.Config{
			Label:       "Name",
			Placeholder: "Export name",
			Width:       24,
			OnChange:    func(v string) { pub.Publish(pubsub.ChangedEvent, fmt.Sprintf("Name: %q", v)) },
		}),
		number: input.New(input.Config{
			Type:        input.TypeNumber,
			Label:       "Limit",
			Placeholder: "Rows",
			OnChange:    func(v string) { pub.Publish(pubsub.ChangedEvent, fmt.Sprintf("Limit: %q", v)) },
		}),
		width:  width,
		height: height,
	}
}

func (m *InputDemoModel) field(i int) *input.Model {
	if i == 0 {
		return &m.text
	}
	return &m.number
}

func (m *InputDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (k.Type == tea.KeyTab || k.Type == tea.KeyShiftTab) {
		m.field(m.current).Blur()
		m.current = component.NextIndex(m.current, 2, 1)
		return m, m.field(m.current).Focus()
	}

	var c1, c2 tea.Cmd
	m.text, c1 = m.text.Update(msg)
	m.number, c2 = m.number.Update(msg)
	if _, ok := msg.(tea.MouseMsg); ok && m.number.Focused() && m.text.Focused() {
		// A click focuses one field; keep the newest
		if m.current == 0 {
			m.text.Blur()
			m.current = 1
		} else {
			m.number.Blur()
			m.current = 0
		}
	}
	return m, tea.Batch(c1, c2)
}

func (m *InputDemoModel) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		formfield.Render(formfield.Config{Label: m.text.Label()}, "["+m.text.View()+"]", m.text.Focused()),
		"   ",
		formfield.Render(formfield.Config{Label: m.number.Label(), Description: "digits only"}, "["+m.number.View()+"]", m.number.Focused()),
	)
}

func (m *InputDemoModel) SetSize(width, height int) DemoModel {
	m.width, m.height = width, height
	return m
}

func (m *InputDemoModel) Reset() DemoModel {
	return createInputDemo(m.pub, m.width, m.height)
}

func (m *InputDemoModel) NeedsEscKey() bool { return false }

func (m *InputDemoModel) Activate() tea.Cmd {
	m.current = 0
	m.number.Blur()
	return m.text.Focus()
}

func (m *InputDemoModel) Focusable() component.Focusable { return m.field(m.current) }

// RadioDemoModel shows a radio group with descriptions.
type RadioDemoModel struct {
	pub    pubsub.Publisher[string]
	radio  radiogroup.Model
	width  int
	height int
}

func createRadioDemo(pub pubsub.Publisher[string], width, height int) DemoModel {
	return &RadioDemoModel{
		pub: pub,
		radio: radiogroup.New(radiogroup.Config{
			Items: []radiogroup.Item{
				{Value: "csv", Label: "CSV", Description: "Comma separated, one row per line"},
				{Value: "json", Label: "JSON"},
				{Value: "yaml", Label: "YAML"},
			},
			Value:    "csv",
			OnChange: func(v string) { pub.Publish(pubsub.ChangedEvent, "Format: "+v) },
		}).SetWidth(width),
		width:  width,
		height: height,
	}
}

func (m *RadioDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	var cmd tea.Cmd
	m.radio, cmd = m.radio.Update(msg)
	return m, cmd
}

func (m *RadioDemoModel) View() string { return m.radio.View() }

func (m *RadioDemoModel) SetSize(width, height int) DemoModel {
	m.width, m.height = width, height
	m.radio = m.radio.SetWidth(width)
	return m
}

func (m *RadioDemoModel) Reset() DemoModel {
	return createRadioDemo(m.pub, m.width, m.height)
}

func (m *RadioDemoModel) NeedsEscKey() bool { return false }
func (m *RadioDemoModel) Activate() tea.Cmd { return m.radio.Focus() }
func (m *RadioDemoModel) Focusable() component.Focusable { return &m.radio }

// SelectDemoModel shows a dropdown of time units labelled in both languages.
type SelectDemoModel struct {
	pub    pubsub.Publisher[string]
	sel    selectfield.Model
	width  int
	height int
}

func createSelectDemo(pub pubsub.Publisher[string], width, height int) DemoModel {
	en := i18n.English()
	var opts []selectfield.Option
	for _, u := range daterange.Units(false) {
		opts = append(opts, selectfield.Option{Value: string(u), Label: en.FormatUnit(u, daterange.AmountOf(2))})
	}
	return &SelectDemoModel{
		pub: pub,
		sel: selectfield.New(selectfield.Config{
			Options:  opts,
			Value:    string(daterange.UnitHour),
			Label:    "Unit",
			OnChange: func(v string) { pub.Publish(pubsub.ChangedEvent, "Unit: "+v) },
		}),
		width:  width,
		height: height,
	}
}

func (m *SelectDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	var cmd tea.Cmd
	m.sel, cmd = m.sel.Update(msg)
	return m, cmd
}

func (m *SelectDemoModel) View() string {
	return formfield.Render(formfield.Config{Label: m.sel.Label()}, m.sel.View(), m.sel.Focused())
}

func (m *SelectDemoModel) SetSize(width, height int) DemoModel {
	m.width, m.height = width, height
	return m
}

func (m *SelectDemoModel) Reset() DemoModel {
	return createSelectDemo(m.pub, m.width, m.height)
}

func (m *SelectDemoModel) NeedsEscKey() bool { return m.sel.Expanded() }
func (m *SelectDemoModel) Activate() tea.Cmd { return m.sel.Focus() }
func (m *SelectDemoModel) Focusable() component.Focusable { return &m.sel }

type rangeVariant int

const (
	rangeVariantPresets rangeVariant = iota
	rangeVariantDateOnly
	rangeVariantCustom
)

// RangeDemoModel wraps a relative range selector in one of three setups.
type RangeDemoModel struct {
	pub      pubsub.Publisher[string]
	variant  rangeVariant
	selector relativerange.Model
	strings  i18n.Strings
	width    int
	height   int
}

func createRangeDemo(variant rangeVariant) func(pubsub.Publisher[string], int, int) DemoModel {
	return func(pub pubsub.Publisher[string], width, height int) DemoModel {
		m := &RangeDemoModel{pub: pub, variant: variant, strings: i18n.English(), width: width, height: height}
		m.selector = relativerange.New(m.config())
		return m
	}
}

func (m *RangeDemoModel) config() relativerange.Config {
	cfg := relativerange.Config{
		Strings: m.strings,
		Width:   m.width,
		OnChange: func(v daterange.RelativeValue) {
			m.pub.Publish(pubsub.ChangedEvent, "Range: "+m.strings.FormatRelativeRange(v)+" ("+v.String()+")")
		},
	}

	switch m.variant {
	case rangeVariantPresets:
		cfg.Options = presetOptions(false)
		initial := cfg.Options[2].Value()
		cfg.InitialSelection = &initial
	case rangeVariantDateOnly:
		cfg.DateOnly = true
		cfg.Options = presetOptions(true)
	case rangeVariantCustom:
		cfg.SingleGrid = true
		initial := daterange.Custom(daterange.AmountOf(90), daterange.UnitMinute)
		cfg.InitialSelection = &initial
	}
	return cfg
}

func presetOptions(dateOnly bool) []daterange.RelativeOption {
	cfg := config.Defaults()
	cfg.Form.DateOnly = dateOnly
	return cfg.Options()
}

func (m *RangeDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd) {
	var cmd tea.Cmd
	m.selector, cmd = m.selector.Update(msg)
	return m, cmd
}

func (m *RangeDemoModel) View() string { return m.selector.View() }

func (m *RangeDemoModel) SetSize(width, height int) DemoModel {
	m.width, m.height = width, height
	return m
}

func (m *RangeDemoModel) Reset() DemoModel {
	return createRangeDemo(m.variant)(m.pub, m.width, m.height)
}

func (m *RangeDemoModel) NeedsEscKey() bool { return m.selector.Capturing() }
func (m *RangeDemoModel) Activate() tea.Cmd { return m.selector.FocusFirst() }
func (m *RangeDemoModel) Focusable() component.Focusable { return &m.selector }

// ThemeTokensDemoModel displays all theme color tokens.
type ThemeTokensDemoModel struct {
	width   int
	height  int
	focused bool
}

func createThemeTokensDemo(_ pubsub.Publisher[string], width, height int) DemoModel {
	return &ThemeTokensDemoModel{width: width, height: height}
}

func (m *ThemeTokensDemoModel) Update(tea.Msg) (DemoModel, tea.Cmd) { return m, nil }

func (m *ThemeTokensDemoModel) View() string { return renderTokenContent() }

func (m *ThemeTokensDemoModel) SetSize(width, height int) DemoModel {
	m.width, m.height = width, height
	return m
}

func (m *ThemeTokensDemoModel) Reset() DemoModel { return m }
func (m *ThemeTokensDemoModel) NeedsEscKey() bool { return false }
func (m *ThemeTokensDemoModel) Activate() tea.Cmd { return nil }
func (m *ThemeTokensDemoModel) Focusable() component.Focusable { return m }
func (m *ThemeTokensDemoModel) Focus() tea.Cmd { return nil }
func (m *ThemeTokensDemoModel) Blur() {}
func (m *ThemeTokensDemoModel) Focused() bool { return false }

// renderTokenContent renders one swatch line per token, grouped by category.
func renderTokenContent() string {
	nameWidth := 0
	for _, token := range styles.AllTokens() {
		nameWidth = max(nameWidth, runewidth.StringWidth(string(token)))
	}

	var sb strings.Builder
	for i, cat := range GetTokenCategories() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styles.FocusedLabelStyle.Render(cat.Name))
		sb.WriteString("\n")
		for _, token := range cat.Tokens {
			hex := GetTokenColor(token)
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
			sb.WriteString("  " + swatch + " " + runewidth.FillRight(string(token), nameWidth) + "  " + styles.MutedStyle.Render(hex) + "\n")
		}
	}
	return sb.String()
}
