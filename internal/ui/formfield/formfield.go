// Package formfield renders the label and description chrome around a control.
package formfield

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/formkit/internal/ui/styles"
)

// Config is the chrome shown around a control.
type Config struct {
	Label       string
	Description string
	Width       int // Wrap width for the description; 0 disables wrapping
}

// Render places the label above the control, with the optional description
// between them. The label is highlighted when focused is true.
func Render(cfg Config, control string, focused bool) string {
	var parts []string

	if cfg.Label != "" {
		style := styles.LabelStyle
		if focused {
			style = styles.FocusedLabelStyle
		}
		parts = append(parts, style.Render(cfg.Label))
	}

	if cfg.Description != "" {
		desc := cfg.Description
		if cfg.Width > 0 {
			desc = wordwrap.String(desc, cfg.Width)
		}
		parts = append(parts, styles.DescriptionStyle.Render(desc))
	}

	if control != "" {
		parts = append(parts, control)
	}
	return strings.Join(parts, "\n")
}
