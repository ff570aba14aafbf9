// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Option descriptions
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Selection indicator color (used for ">" cursor and checked marks)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}

	// Form colors
	FormBorderColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormFocusedBorderColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	FormLabelColor         = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#8C8C8C"}
	FormFocusedLabelColor  = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	FormDisabledColor      = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#4A4A4A"}
	FormControlColor       = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"} // Checked radio/checkbox marks

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Selection indicator style (used for ">" prefix in lists)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Form styles
	LabelStyle        = lipgloss.NewStyle().Foreground(FormLabelColor)
	FocusedLabelStyle = lipgloss.NewStyle().Foreground(FormFocusedLabelColor).Bold(true)
	DescriptionStyle  = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	PlaceholderStyle  = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	DisabledStyle     = lipgloss.NewStyle().Foreground(FormDisabledColor)
	ControlMarkStyle  = lipgloss.NewStyle().Foreground(FormControlColor).Bold(true)
	MutedStyle        = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle        = lipgloss.NewStyle().Foreground(StatusErrorColor)
)
