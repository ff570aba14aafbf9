package radiogroup

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formkit/internal/testutil"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var (
	down  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func items() []Item {
	return []Item{
		{Value: "hour", Label: "Last 1 hour"},
		{Value: "day", Label: "Last 1 day"},
		{Value: "custom", Label: "Custom", Description: "Pick any duration"},
	}
}

func TestRadioGroup_CursorStartsOnValue(t *testing.T) {
	m := New(Config{Items: items(), Value: "day"})
	require.Equal(t, 1, m.Cursor())
	require.Equal(t, "day", m.Value())
}

func TestRadioGroup_NavigateAndSelect(t *testing.T) {
	var got []string
	m := New(Config{Items: items(), OnChange: func(v string) { got = append(got, v) }})
	m.Focus()

	m, _ = m.Update(down)
	m, _ = m.Update(down)
	m, _ = m.Update(down) // clamped at the last item
	require.Equal(t, 2, m.Cursor())

	m, _ = m.Update(space)
	require.Equal(t, "custom", m.Value())

	m, _ = m.Update(up)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "day", m.Value())

	require.Equal(t, []string{"custom", "day"}, got)
}

func TestRadioGroup_ReselectIsNotAChange(t *testing.T) {
	calls := 0
	m := New(Config{Items: items(), Value: "hour", OnChange: func(string) { calls++ }})
	m.Focus()

	m, _ = m.Update(space)
	require.Equal(t, 0, calls)
	require.Equal(t, "hour", m.Value())
}

func TestRadioGroup_UnfocusedIgnoresKeys(t *testing.T) {
	m := New(Config{Items: items()})
	m, _ = m.Update(down)
	m, _ = m.Update(space)

	require.Equal(t, 0, m.Cursor())
	require.Empty(t, m.Value())
}

func TestRadioGroup_EmptyCannotFocus(t *testing.T) {
	m := New(Config{})
	m.Focus()
	require.False(t, m.Focused())
}

func TestRadioGroup_SetValueDoesNotNotify(t *testing.T) {
	called := false
	m := New(Config{Items: items(), OnChange: func(string) { called = true }})
	m = m.SetValue("custom")

	require.Equal(t, "custom", m.Value())
	require.Equal(t, 2, m.Cursor())
	require.False(t, called)
}

func TestRadioGroup_ClickSelects(t *testing.T) {
	var got string
	m := New(Config{Items: items(), OnChange: func(v string) { got = v }})

	click := testutil.Click(t, m.View, m.itemID(1))
	m, _ = m.Update(click)

	require.Equal(t, "day", m.Value())
	require.Equal(t, "day", got)
	require.True(t, m.Focused())
}

func TestRadioGroup_View(t *testing.T) {
	m := New(Config{Items: items(), Value: "hour"})
	view := ansi.Strip(m.View())

	require.Contains(t, view, "(•) Last 1 hour")
	require.Contains(t, view, "( ) Last 1 day")
	require.Contains(t, view, "Pick any duration")
}
