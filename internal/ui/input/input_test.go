package input

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestInput_TypingCallsOnChange(t *testing.T) {
	var got []string
	m := New(Config{OnChange: func(v string) { got = append(got, v) }})
	m.Focus()

	m = typeText(m, "ab")

	require.Equal(t, "ab", m.Value())
	require.Equal(t, []string{"a", "ab"}, got)
}

func TestInput_UnfocusedIgnoresKeys(t *testing.T) {
	called := false
	m := New(Config{OnChange: func(string) { called = true }})

	m = typeText(m, "abc")

	require.Empty(t, m.Value())
	require.False(t, called)
}

func TestInput_NoChangeNoCallback(t *testing.T) {
	calls := 0
	m := New(Config{Value: "12", OnChange: func(string) { calls++ }})
	m.Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})

	require.Equal(t, 0, calls, "cursor movement is not a change")
	require.Equal(t, "12", m.Value())
}

func TestInput_NumberFiltersRunes(t *testing.T) {
	m := New(Config{Type: TypeNumber})
	m.Focus()

	m = typeText(m, "1a2.5x")
	require.Equal(t, "12.5", m.Value())

	m = typeText(m, "-")
	require.Equal(t, "12.5-", m.Value(), "partial literals are kept as typed")
}

func TestInput_NumberFiltersInitialValue(t *testing.T) {
	m := New(Config{Type: TypeNumber, Value: "7 days"})
	require.Equal(t, "7", m.Value())

	m = m.SetValue("3x")
	require.Equal(t, "3", m.Value())
}

func TestInput_ReadOnly(t *testing.T) {
	called := false
	m := New(Config{Value: "fixed", ReadOnly: true, OnChange: func(string) { called = true }})
	m.Focus()
	require.True(t, m.Focused(), "read-only inputs are focusable")

	m = typeText(m, "zz")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	require.Equal(t, "fixed", m.Value())
	require.False(t, called)
}

func TestInput_Disabled(t *testing.T) {
	m := New(Config{Value: "off", Disabled: true, AutoFocus: true})

	require.Nil(t, m.Focus())
	require.False(t, m.Focused())
	require.Contains(t, ansi.Strip(m.View()), "off")
}

func TestInput_AutoFocus(t *testing.T) {
	m := New(Config{AutoFocus: true})
	require.True(t, m.Focused())
	require.NotNil(t, m.Init())

	m = New(Config{})
	require.Nil(t, m.Init())
}

func TestInput_FocusCallbacks(t *testing.T) {
	var events []string
	m := New(Config{
		OnFocus: func() { events = append(events, "focus") },
		OnBlur:  func() { events = append(events, "blur") },
	})

	m.Focus()
	m.Focus()
	m.Blur()
	m.Blur()

	require.Equal(t, []string{"focus", "blur"}, events)
}

func TestInput_SelectMovesCursorToEnd(t *testing.T) {
	m := New(Config{Value: "12"})
	m.Select()
	require.True(t, m.Focused())

	m = typeText(m, "3")
	require.Equal(t, "123", m.Value())
}

func TestInput_ViewShowsPlaceholder(t *testing.T) {
	m := New(Config{Placeholder: "Duration"})
	require.Contains(t, ansi.Strip(m.View()), "Duration")
}
