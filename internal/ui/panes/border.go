// Package panes renders rounded bordered panels with titles embedded in the
// border, used to frame the prompt and the playground panes.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/formkit/internal/ui/styles"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	Content string // The content to render inside the border
	Width   int    // Total width including borders
	Height  int    // Total height including borders; 0 sizes to content

	TopLeft     string // Title on top border, left-aligned
	BottomRight string // Title on bottom border, right-aligned

	Focused            bool
	BorderColor        lipgloss.TerminalColor // Border color when not focused
	FocusedBorderColor lipgloss.TerminalColor // Border color when focused
}

// BorderedPane renders content within a bordered panel.
//
// A nil BorderColor falls back to BorderDefaultColor; a nil
// FocusedBorderColor inherits the unfocused color.
func BorderedPane(cfg BorderConfig) string {
	borderStyle := lipgloss.NewStyle().Foreground(resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused))
	titleStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	if cfg.Focused {
		titleStyle = styles.FocusedLabelStyle
	}

	innerWidth := max(cfg.Width-2, 1)

	lines := strings.Split(lipgloss.NewStyle().Width(innerWidth).Render(cfg.Content), "\n")
	if cfg.Height > 0 {
		contentHeight := max(cfg.Height-2, 1)
		if len(lines) > contentHeight {
			lines = lines[:contentHeight]
		}
		for len(lines) < contentHeight {
			lines = append(lines, "")
		}
	}

	var sb strings.Builder
	sb.WriteString(titledBorder(cfg.TopLeft, "", borderTopLeft, borderTopRight, innerWidth, borderStyle, titleStyle))
	for _, line := range lines {
		line = ansi.Truncate(line, innerWidth, "")
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		sb.WriteString("\n")
		sb.WriteString(borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical))
	}
	sb.WriteString("\n")
	sb.WriteString(titledBorder("", cfg.BottomRight, borderBottomLeft, borderBottomRight, innerWidth, borderStyle, titleStyle))
	return sb.String()
}

func resolveBorderColor(border, focusedBorder lipgloss.TerminalColor, focused bool) lipgloss.TerminalColor {
	if border == nil {
		border = styles.BorderDefaultColor
	}
	if focused && focusedBorder != nil {
		return focusedBorder
	}
	return border
}

// titledBorder builds one horizontal edge: ╭─ Left ──── Right ─╮.
// Titles that do not fit are truncated, the right one first.
func titledBorder(left, right, leftCorner, rightCorner string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	// Each title costs its width plus "─ " and " " (left) or " " and " ─" (right)
	const titleOverhead = 3

	avail := innerWidth
	if right != "" {
		if w := lipgloss.Width(right); w+titleOverhead > avail {
			right = ""
		} else {
			avail -= w + titleOverhead
		}
	}
	if left != "" {
		if avail-titleOverhead < 1 {
			left = ""
		} else {
			left = ansi.Truncate(left, avail-titleOverhead, "…")
			avail -= lipgloss.Width(left) + titleOverhead
		}
	}

	var sb strings.Builder
	sb.WriteString(borderStyle.Render(leftCorner))
	if left != "" {
		sb.WriteString(borderStyle.Render(borderHorizontal+" ") + titleStyle.Render(left) + borderStyle.Render(" "))
	}
	sb.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, max(avail, 0))))
	if right != "" {
		sb.WriteString(borderStyle.Render(" ") + titleStyle.Render(right) + borderStyle.Render(" "+borderHorizontal))
	}
	sb.WriteString(borderStyle.Render(rightCorner))
	return sb.String()
}
