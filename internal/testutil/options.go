package testutil

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

// Keys converts s into one rune key message per character. Spaces become
// KeySpace messages, matching what the terminal reader produces.
func Keys(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

// Click renders the view through the zone manager until the zone with id is
// registered, then returns a left-button release inside it.
func Click(t *testing.T, render func() string, id string) tea.MouseMsg {
	t.Helper()

	var z *zone.ZoneInfo
	for retries := 0; retries < 20; retries++ {
		_ = zone.Scan(render())
		z = zone.Get(id)
		if z != nil && !z.IsZero() {
			break
		}
		// Zone registration is asynchronous via a channel worker in bubblezone.
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, z, "zone %q should be registered after View()", id)
	require.False(t, z.IsZero(), "zone %q should not be zero", id)

	return tea.MouseMsg{
		X:      z.StartX,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	}
}
