// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Forms
	TokenFormBorder      ColorToken = "form.border"
	TokenFormBorderFocus ColorToken = "form.border.focus" //nolint:gosec // UI color token, not credentials
	TokenFormLabel       ColorToken = "form.label"
	TokenFormLabelFocus  ColorToken = "form.label.focus"
	TokenFormDisabled    ColorToken = "form.disabled"
	TokenFormControl     ColorToken = "form.control"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"
)

// AllTokens returns all valid color tokens.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextSecondary, TokenTextMuted, TokenTextDescription, TokenTextPlaceholder,
		TokenBorderDefault, TokenBorderHighlight,
		TokenStatusSuccess, TokenStatusError,
		TokenSelectionIndicator,
		TokenFormBorder, TokenFormBorderFocus, TokenFormLabel, TokenFormLabelFocus, TokenFormDisabled, TokenFormControl,
		TokenOverlayTitle, TokenOverlayBorder,
	}
}
