package relativerange

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/formkit/internal/ui/formfield"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

const (
	customIndent = 4 // Custom controls sit under the radio items when presets exist
	controlGap   = "   "
)

// View renders the selector. Visibility of each part is recomputed from the
// current state on every call.
func (m Model) View() string {
	s := m.config.Strings
	var sections []string

	if m.showRadio() {
		sections = append(sections, formfield.Render(
			formfield.Config{Label: s.RelativeRangeSelectionHeading},
			m.radio.View(),
			m.focused && m.target == targetRadio,
		))
	}

	if m.showCustom() {
		var custom []string
		if !m.showRadio() {
			desc := s.CustomRelativeRangeOptionDescription
			if m.config.Width > 0 {
				desc = wordwrap.String(desc, m.config.Width)
			}
			custom = append(custom, styles.DescriptionStyle.Render(desc))
		}

		duration := formfield.Render(
			formfield.Config{Label: s.CustomRelativeRangeDurationLabel},
			"["+m.duration.View()+"]",
			m.focused && m.target == targetDuration,
		)
		unit := formfield.Render(
			formfield.Config{Label: s.CustomRelativeRangeUnitLabel},
			m.unit.WithOptions(m.unitOptions()).View(),
			m.focused && m.target == targetUnit,
		)

		var controls string
		if m.config.SingleGrid {
			controls = lipgloss.JoinVertical(lipgloss.Left, duration, "", unit)
		} else {
			controls = lipgloss.JoinHorizontal(lipgloss.Top, duration, controlGap, unit)
		}
		if m.showRadio() {
			controls = lipgloss.NewStyle().PaddingLeft(customIndent).Render(controls)
		}
		custom = append(custom, controls)

		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, custom...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
