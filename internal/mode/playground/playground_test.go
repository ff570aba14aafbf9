package playground

import (
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formkit/internal/log"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	log.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

var (
	down     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up       = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	space    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	ctrlF    = tea.KeyMsg{Type: tea.KeyCtrlF}
	ctrlO    = tea.KeyMsg{Type: tea.KeyCtrlO}
	ctrlR    = tea.KeyMsg{Type: tea.KeyCtrlR}
	quitKey  = tea.KeyMsg{Type: tea.KeyCtrlC}
	runeFive = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}}
)

// updateModel is a helper to update the model and return the typed Model.
func updateModel(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		result, _ := m.Update(msg)
		m = result.(Model)
	}
	return m
}

// selectComponent navigates to index and focuses the demo via Enter.
func selectComponent(t *testing.T, m Model, index int) Model {
	t.Helper()
	for range index {
		m = updateModel(t, m, down)
	}
	return updateModel(t, m, enter)
}

// nextChange delivers the next published widget change to the model.
func nextChange(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.changeListener.Listen()()
	require.NotNil(t, msg)
	return updateModel(t, m, msg)
}

func demoIndex(t *testing.T, name string) int {
	t.Helper()
	for i, d := range GetComponentDemos() {
		if d.Name == name {
			return i
		}
	}
	t.Fatalf("no demo %q", name)
	return -1
}

func TestPlayground_ViewListsDemos(t *testing.T) {
	view := ansi.Strip(New().View())

	for _, d := range GetComponentDemos() {
		require.Contains(t, view, d.Name)
	}
	require.Contains(t, view, "Components")
	require.Contains(t, view, "Last action: (none)")
	require.Contains(t, view, "Ctrl+C: Quit")
}

func TestPlayground_SidebarNavigationWraps(t *testing.T) {
	m := New()

	m = updateModel(t, m, up)
	require.Equal(t, len(m.demos)-1, m.selectedIndex)

	m = updateModel(t, m, down)
	require.Equal(t, 0, m.selectedIndex)
	require.Equal(t, FocusSidebar, m.focus)
}

func TestPlayground_CheckboxChangeShowsAsLastAction(t *testing.T) {
	m := selectComponent(t, New(), demoIndex(t, "checkbox"))
	require.Equal(t, FocusDemo, m.focus)

	m = updateModel(t, m, space)
	require.True(t, m.demoModel.(*CheckboxDemoModel).notify.Checked())

	m = nextChange(t, m)
	require.Equal(t, "Notify me: true", m.LastAction())
	require.Contains(t, ansi.Strip(m.View()), "Last action: Notify me: true")
}

func TestPlayground_RangeChangeShowsAsLastAction(t *testing.T) {
	m := selectComponent(t, New(), demoIndex(t, "range (custom)"))

	// Without presets the duration field is focused first, holding "90"
	m = updateModel(t, m, runeFive)
	m = nextChange(t, m)
	require.Equal(t, "Range: Last 905 minutes (905 minute)", m.LastAction())
}

func TestPlayground_FocusHandle(t *testing.T) {
	m := selectComponent(t, New(), demoIndex(t, "range (custom)"))
	m = updateModel(t, m, ctrlO)
	require.Equal(t, FocusSidebar, m.focus)
	require.False(t, m.demoModel.Focusable().Focused(), "leaving the demo blurs it")

	m = updateModel(t, m, ctrlO, ctrlF)
	require.Equal(t, "Focus() called, focused=true", m.LastAction())
}

func TestPlayground_EscClosesSelectBeforeLeavingDemo(t *testing.T) {
	m := selectComponent(t, New(), demoIndex(t, "select"))

	m = updateModel(t, m, space)
	require.True(t, m.demoModel.NeedsEscKey())

	m = updateModel(t, m, esc)
	require.Equal(t, FocusDemo, m.focus)
	require.False(t, m.demoModel.NeedsEscKey())

	m = updateModel(t, m, esc)
	require.Equal(t, FocusSidebar, m.focus)
}

func TestPlayground_Reset(t *testing.T) {
	m := selectComponent(t, New(), demoIndex(t, "checkbox"))
	m = updateModel(t, m, space)

	m = updateModel(t, m, ctrlR)
	require.False(t, m.demoModel.(*CheckboxDemoModel).notify.Checked())
	require.Equal(t, "Reset: checkbox", m.LastAction())
}

func TestPlayground_LogFeed(t *testing.T) {
	log.InitWithWriter(io.Discard)
	m := New()

	log.Info(log.CatUI, "hello from the test")
	m = updateModel(t, m, m.logListener.Listen()())

	require.Len(t, m.logLines, 1)
	require.Contains(t, m.logLines[0], "hello from the test")
	require.Contains(t, ansi.Strip(m.View()), "hello from the test")
}

func TestPlayground_Quit(t *testing.T) {
	m := updateModel(t, New(), quitKey)
	require.True(t, m.quitting)
	require.Empty(t, m.View())
}

func TestGetTokenColor_AllTokensResolve(t *testing.T) {
	categorized := map[styles.ColorToken]bool{}
	for _, cat := range GetTokenCategories() {
		for _, token := range cat.Tokens {
			categorized[token] = true
		}
	}

	for _, token := range styles.AllTokens() {
		require.NotEmpty(t, GetTokenColor(token), "token %s", token)
		require.True(t, categorized[token], "token %s missing from viewer", token)
	}
}

func TestRenderTokenContent(t *testing.T) {
	content := ansi.Strip(renderTokenContent())
	require.Contains(t, content, "form.control")
	require.Equal(t, len(styles.AllTokens())+len(GetTokenCategories())*2-1, strings.Count(content, "\n"))
}
