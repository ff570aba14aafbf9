package relativerange

import (
	"math"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formkit/internal/daterange"
	"github.com/zjrosen/formkit/internal/testutil"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	up       = tea.KeyMsg{Type: tea.KeyUp}
	down     = tea.KeyMsg{Type: tea.KeyDown}
	space    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	bksp     = tea.KeyMsg{Type: tea.KeyBackspace}
)

// recorder collects every value passed to OnChange.
type recorder struct {
	values []daterange.RelativeValue
}

func (r *recorder) onChange(v daterange.RelativeValue) {
	r.values = append(r.values, v)
}

func (r *recorder) last(t *testing.T) daterange.RelativeValue {
	t.Helper()
	require.NotEmpty(t, r.values, "expected at least one change")
	return r.values[len(r.values)-1]
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, k := range testutil.Keys(s) {
		m, _ = m.Update(k)
	}
	return m
}

// pick focuses the radio group and checks item i by keyboard. Index
// len(Options) is the custom item.
func pick(m Model, i int) Model {
	m.FocusFirst()
	for range len(m.config.Options) + 1 {
		m = send(m, up)
	}
	for range i {
		m = send(m, down)
	}
	return send(m, space)
}

func selectCustom(t *testing.T, m Model) Model {
	t.Helper()
	m = pick(m, len(m.config.Options))
	require.True(t, m.CustomActive())
	return m
}

func ptr(v daterange.RelativeValue) *daterange.RelativeValue { return &v }

func TestNew_NoInitialSelectionStartsCustom(t *testing.T) {
	for _, dateOnly := range []bool{false, true} {
		m := New(Config{DateOnly: dateOnly, Options: testutil.NewBuilder(t).WithDatePresets().Build()})

		require.True(t, m.CustomActive())
		require.Equal(t, CustomOptionKey, m.SelectedKey())
		v := m.Value()
		require.True(t, v.Amount.IsEmpty())
		require.Equal(t, daterange.DefaultUnit(dateOnly), v.Unit)
		require.Equal(t, daterange.TypeRelative, v.Type)
	}
}

func TestNew_InitialPreset(t *testing.T) {
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	m := New(Config{Options: opts, InitialSelection: ptr(opts[1].Value())})

	require.False(t, m.CustomActive())
	require.Equal(t, "last-hour", m.SelectedKey())
	require.True(t, m.Value().Equal(opts[1].Value()))
}

func TestNew_InitialCustomSeedsAmountAndUnit(t *testing.T) {
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	init := daterange.Custom(daterange.AmountOf(90), daterange.UnitSecond)
	m := New(Config{Options: opts, InitialSelection: &init})

	require.True(t, m.CustomActive())
	require.True(t, m.Value().Equal(init))
	require.Equal(t, "90", m.duration.Value())
	require.Equal(t, "second", m.unit.Value())
}

func TestNew_ZeroAmountShowsEmptyField(t *testing.T) {
	init := daterange.Custom(daterange.AmountOf(0), daterange.UnitHour)
	m := New(Config{InitialSelection: &init})

	require.Empty(t, m.duration.Value(), "zero renders like an empty amount")
	require.True(t, m.Value().Equal(init), "the value itself is still zero")
}

func TestNew_UnknownKeyFallsBackToCustom(t *testing.T) {
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	init := daterange.RelativeValue{Key: "last-decade", Amount: daterange.AmountOf(10), Unit: daterange.UnitYear, Type: daterange.TypeRelative}
	m := New(Config{Options: opts, InitialSelection: &init})

	require.True(t, m.CustomActive())
	require.Equal(t, CustomOptionKey, m.SelectedKey())
	require.True(t, m.Value().Equal(daterange.Custom(daterange.AmountOf(10), daterange.UnitYear)))
}

func TestNew_IllegalInitialUnitUsesModeDefault(t *testing.T) {
	init := daterange.Custom(daterange.AmountOf(3), daterange.UnitHour)
	m := New(Config{DateOnly: true, InitialSelection: &init})

	require.Equal(t, daterange.UnitDay, m.Value().Unit)
	require.Equal(t, 3.0, m.Value().Amount.Float64())
}

// Property: when options are empty the preset chooser is never rendered and
// the selector starts in custom mode, even for a keyed initial value.
func TestNoPresets_DegenerateCase(t *testing.T) {
	init := daterange.RelativeValue{Key: "last-day", Amount: daterange.AmountOf(1), Unit: daterange.UnitDay, Type: daterange.TypeRelative}
	m := New(Config{InitialSelection: &init})

	require.True(t, m.CustomActive())
	require.Empty(t, m.Value().Key)

	view := ansi.Strip(m.View())
	require.NotContains(t, view, "Choose a range")
	require.NotContains(t, view, "Custom range")
	require.Contains(t, view, "Set a custom range in the past", "description replaces the radio group")
	require.Contains(t, view, "Duration")
	require.Contains(t, view, "Unit of time")
}

func TestNoPresets_FocusFirstIsDuration(t *testing.T) {
	m := New(Config{})
	m.FocusFirst()
	require.True(t, m.duration.Focused())
}

// Property: selecting a preset emits exactly that preset's value.
func TestPresetRoundTrip(t *testing.T) {
	var rec recorder
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	m := New(Config{Options: opts, OnChange: rec.onChange})

	for i, o := range opts {
		m = pick(m, i)

		got := rec.last(t)
		require.Equal(t, o.Key, got.Key)
		require.Equal(t, o.Amount, got.Amount.Float64())
		require.Equal(t, o.Unit, got.Unit)
		require.Equal(t, daterange.TypeRelative, got.Type)
		require.True(t, got.Equal(m.Value()))
	}
	require.Len(t, rec.values, len(opts))
}

// Property: moving from a preset to custom always emits the empty amount and
// the mode's default unit, whatever custom state came before.
func TestCustomModeReset(t *testing.T) {
	for _, dateOnly := range []bool{false, true} {
		var rec recorder
		opts := testutil.NewBuilder(t).WithDatePresets().Build()
		init := daterange.Custom(daterange.AmountOf(42), daterange.UnitYear)
		m := New(Config{DateOnly: dateOnly, Options: opts, InitialSelection: &init, OnChange: rec.onChange})

		// Leave custom mode, then come back.
		m = pick(m, 0)
		require.False(t, m.CustomActive())

		m = selectCustom(t, m)
		got := rec.last(t)
		require.True(t, got.Amount.IsEmpty())
		require.True(t, math.IsNaN(got.Amount.Float64()))
		require.Equal(t, daterange.DefaultUnit(dateOnly), got.Unit)
		require.Empty(t, got.Key)
		require.Empty(t, m.duration.Value(), "duration field is cleared")
		require.Equal(t, string(daterange.DefaultUnit(dateOnly)), m.unit.Value())
	}
}

func TestCustomAmountSurvivesPresetSelection(t *testing.T) {
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	init := daterange.Custom(daterange.AmountOf(42), daterange.UnitHour)
	m := New(Config{Options: opts, InitialSelection: &init})

	m = pick(m, 0)
	require.False(t, m.CustomActive())
	require.Equal(t, 42.0, m.customAmount.Float64(), "custom amount is kept while a preset is selected")
}

// Property: duration text parses deterministically.
func TestAmountParsing(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		empty bool
		want  float64
	}{
		{name: "integer", text: "12", want: 12},
		{name: "negative", text: "-3", want: -3},
		{name: "fraction", text: "3.5", want: 3.5},
		{name: "not a number", text: "1e", empty: true},
		{name: "lone sign", text: "-", empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder
			m := New(Config{OnChange: rec.onChange})
			m.Focus()

			m = typeText(m, tt.text)
			got := rec.last(t)
			if tt.empty {
				require.True(t, got.Amount.IsEmpty())
			} else {
				require.Equal(t, tt.want, got.Amount.Float64())
			}
			require.Equal(t, daterange.UnitMinute, got.Unit)
		})
	}

	t.Run("empty", func(t *testing.T) {
		var rec recorder
		m := New(Config{OnChange: rec.onChange})
		m.Focus()

		m = typeText(m, "7")
		m = send(m, bksp)
		require.Len(t, rec.values, 2)
		require.True(t, rec.last(t).Amount.IsEmpty())
	})

	// The duration field is a number input, so text like "abc" is filtered
	// before it can parse to the empty amount and nothing is emitted.
	t.Run("letters are dropped", func(t *testing.T) {
		var rec recorder
		m := New(Config{OnChange: rec.onChange})
		m.Focus()

		m = typeText(m, "abc")
		require.Empty(t, rec.values, "non-numeric runes never reach the field")
		require.Empty(t, m.duration.Value())
	})
}

func TestEditUnit(t *testing.T) {
	var rec recorder
	m := New(Config{OnChange: rec.onChange})
	m.Focus()
	m = typeText(m, "5")

	m = send(m, tab) // unit select
	require.True(t, m.unit.Focused())
	m = send(m, enter, down, enter) // minute -> hour

	got := rec.last(t)
	require.Equal(t, daterange.UnitHour, got.Unit)
	require.Equal(t, 5.0, got.Amount.Float64())
	require.Len(t, rec.values, 2)
}

// Property: Focus right after switching to custom focuses the duration field.
func TestFocusAfterModeSwitch(t *testing.T) {
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	m := New(Config{Options: opts, InitialSelection: ptr(opts[0].Value())})

	require.Nil(t, m.Focus())
	require.False(t, m.Focused(), "focus is a no-op while the duration field is hidden")

	m = selectCustom(t, m)
	m.Blur()
	m.Focus()

	require.True(t, m.Focused())
	require.True(t, m.duration.Focused())
	require.False(t, m.radio.Focused())
	require.False(t, m.unit.Focused())
}

func TestFocusIsIdempotent(t *testing.T) {
	m := New(Config{})
	m.Focus()
	m.Focus()

	require.True(t, m.duration.Focused())
	require.Equal(t, targetDuration, m.target)
}

func TestTabCyclesVisibleTargets(t *testing.T) {
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	m := New(Config{Options: opts, InitialSelection: ptr(opts[0].Value())})
	m.FocusFirst()

	m = send(m, tab)
	require.Equal(t, targetRadio, m.target, "only the radio group is rendered in preset mode")

	m = selectCustom(t, m)
	m = send(m, tab)
	require.Equal(t, targetDuration, m.target)
	m = send(m, tab)
	require.Equal(t, targetUnit, m.target)
	m = send(m, tab)
	require.Equal(t, targetRadio, m.target)
	m = send(m, shiftTab)
	require.Equal(t, targetUnit, m.target)
}

func TestChangeMsgWithoutCallback(t *testing.T) {
	m := New(Config{})
	m.Focus()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	require.NotNil(t, cmd)

	var found *ChangeMsg
	msgs := []tea.Msg{cmd()}
	for len(msgs) > 0 {
		msg := msgs[0]
		msgs = msgs[1:]
		switch msg := msg.(type) {
		case tea.BatchMsg:
			for _, c := range msg {
				if c != nil {
					msgs = append(msgs, c())
				}
			}
		case ChangeMsg:
			found = &msg
		}
	}
	require.NotNil(t, found)
	require.Equal(t, m.ID(), found.ID)
	require.Equal(t, 4.0, found.Value.Amount.Float64())
}

func TestViewDoesNotEmit(t *testing.T) {
	var rec recorder
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	m := New(Config{Options: opts, OnChange: rec.onChange})

	for range 3 {
		_ = m.View()
	}
	require.Empty(t, rec.values)
}

func TestView_PresetLabelsAndCustomControls(t *testing.T) {
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	m := New(Config{Options: opts, InitialSelection: ptr(opts[0].Value())})

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Choose a range")
	require.Contains(t, view, "Last 5 minutes")
	require.Contains(t, view, "Last 1 hour")
	require.Contains(t, view, "Custom range")
	require.NotContains(t, view, "Duration", "custom controls are hidden while a preset is selected")

	m = selectCustom(t, m)
	view = ansi.Strip(m.View())
	require.Contains(t, view, "Duration")
	require.Contains(t, view, "Unit of time")
}

func TestView_UnitLabelsFollowAmount(t *testing.T) {
	m := New(Config{})
	m.Focus()

	m = typeText(m, "1")
	view := ansi.Strip(m.View())
	require.Contains(t, view, "minute ▾")
	require.NotContains(t, view, "minutes")

	m = typeText(m, "0")
	require.Contains(t, ansi.Strip(m.View()), "minutes ▾")
}

func TestView_SingleGridStacksControls(t *testing.T) {
	wide := ansi.Strip(New(Config{}).View())
	stacked := ansi.Strip(New(Config{SingleGrid: true}).View())

	require.Greater(t, lineCount(stacked), lineCount(wide))
}

func TestClickPresetSelectsIt(t *testing.T) {
	var rec recorder
	opts := testutil.NewBuilder(t).WithStandardPresets().Build()
	m := New(Config{Options: opts, InitialSelection: ptr(opts[0].Value()), OnChange: rec.onChange})

	click := testutil.Click(t, m.View, m.radio.ID()+":item-2")
	m = send(m, click)

	require.Equal(t, "last-day", rec.last(t).Key)
	require.True(t, m.Focused())
	require.Equal(t, targetRadio, m.target)
}

func lineCount(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
