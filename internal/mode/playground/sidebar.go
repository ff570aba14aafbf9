package playground

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/formkit/internal/ui/styles"
)

// renderSidebar renders the component list with names padded to a common
// column so the descriptions line up.
func renderSidebar(demos []ComponentDemo, selectedIndex, width int) string {
	var sb strings.Builder

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.SelectionIndicatorColor)
	normalStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)

	nameWidth := 0
	for _, d := range demos {
		nameWidth = max(nameWidth, runewidth.StringWidth(d.Name))
	}

	for i, demo := range demos {
		name := runewidth.FillRight(demo.Name, nameWidth)
		if i == selectedIndex {
			sb.WriteString(" " + styles.SelectionIndicatorStyle.Render("●") + " " + selectedStyle.Render(name))
		} else {
			sb.WriteString("   " + normalStyle.Render(name))
		}
		if room := width - nameWidth - 5; room > 3 {
			sb.WriteString(" " + styles.MutedStyle.Render(runewidth.Truncate(demo.Description, room, "…")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
