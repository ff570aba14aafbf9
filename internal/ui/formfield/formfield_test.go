package formfield

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender_Order(t *testing.T) {
	out := ansi.Strip(Render(Config{Label: "Duration", Description: "How far back"}, "[ 5 ]", false))
	lines := strings.Split(out, "\n")

	require.Equal(t, []string{"Duration", "How far back", "[ 5 ]"}, lines)
}

func TestRender_OmitsEmptyParts(t *testing.T) {
	out := ansi.Strip(Render(Config{Label: "Unit"}, "days", true))
	require.Equal(t, "Unit\ndays", out)

	require.Equal(t, "days", ansi.Strip(Render(Config{}, "days", false)))
}

func TestRender_WrapsDescription(t *testing.T) {
	out := ansi.Strip(Render(Config{Description: "alpha beta gamma delta", Width: 11}, "", false))
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len(strings.TrimRight(line, " ")), 11)
	}
}
