package panes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formkit/internal/ui/styles"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestBorderedPane_Basic(t *testing.T) {
	out := BorderedPane(BorderConfig{Content: "hello", Width: 11, Height: 3})

	require.Equal(t, strings.Join([]string{
		"╭─────────╮",
		"│hello    │",
		"╰─────────╯",
	}, "\n"), out)
}

func TestBorderedPane_Titles(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content:     "x",
		Width:       20,
		Height:      3,
		TopLeft:     "Range",
		BottomRight: "esc",
	})

	lines := strings.Split(out, "\n")
	require.Equal(t, "╭─ Range ──────────╮", lines[0])
	require.Equal(t, "╰──────────── esc ─╯", lines[2])
	for _, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l))
	}
}

func TestBorderedPane_TruncatesLongTitle(t *testing.T) {
	out := BorderedPane(BorderConfig{Width: 12, Height: 3, TopLeft: "A very long title"})

	top := strings.Split(out, "\n")[0]
	require.Equal(t, 12, lipgloss.Width(top))
	require.Contains(t, top, "…")
}

func TestBorderedPane_HeightPadsAndClips(t *testing.T) {
	padded := BorderedPane(BorderConfig{Content: "a", Width: 5, Height: 5})
	require.Len(t, strings.Split(padded, "\n"), 5)

	clipped := BorderedPane(BorderConfig{Content: "a\nb\nc\nd", Width: 5, Height: 4})
	lines := strings.Split(clipped, "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "│b  │", lines[2])
}

func TestBorderedPane_AutoHeight(t *testing.T) {
	out := BorderedPane(BorderConfig{Content: "a\nb", Width: 5})
	require.Len(t, strings.Split(out, "\n"), 4)
}

func TestBorderedPane_ClipsWideContent(t *testing.T) {
	out := BorderedPane(BorderConfig{Content: "abcdefghij", Width: 6, Height: 3})
	for _, l := range strings.Split(ansi.Strip(out), "\n") {
		require.Equal(t, 6, lipgloss.Width(l))
	}
}

func TestResolveBorderColor(t *testing.T) {
	red := lipgloss.Color("#FF0000")
	blue := lipgloss.Color("#0000FF")

	require.Equal(t, styles.BorderDefaultColor, resolveBorderColor(nil, nil, true))
	require.Equal(t, red, resolveBorderColor(red, nil, true))
	require.Equal(t, styles.BorderDefaultColor, resolveBorderColor(nil, blue, false))
	require.Equal(t, blue, resolveBorderColor(nil, blue, true))
	require.Equal(t, red, resolveBorderColor(red, blue, false))
}
