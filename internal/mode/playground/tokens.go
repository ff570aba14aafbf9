package playground

import (
	"github.com/zjrosen/formkit/internal/ui/styles"
)

// GetTokenColor returns the current hex value of a token, as resolved by the
// last applied theme.
func GetTokenColor(token styles.ColorToken) string {
	switch token {
	// Text hierarchy
	case styles.TokenTextPrimary:
		return styles.TextPrimaryColor.Dark
	case styles.TokenTextSecondary:
		return styles.TextSecondaryColor.Dark
	case styles.TokenTextMuted:
		return styles.TextMutedColor.Dark
	case styles.TokenTextDescription:
		return styles.TextDescriptionColor.Dark
	case styles.TokenTextPlaceholder:
		return styles.TextPlaceholderColor.Dark

	// Borders
	case styles.TokenBorderDefault:
		return styles.BorderDefaultColor.Dark
	case styles.TokenBorderHighlight:
		return styles.BorderHighlightFocusColor.Dark

	// Status indicators
	case styles.TokenStatusSuccess:
		return styles.StatusSuccessColor.Dark
	case styles.TokenStatusError:
		return styles.StatusErrorColor.Dark

	case styles.TokenSelectionIndicator:
		return styles.SelectionIndicatorColor.Dark

	// Forms
	case styles.TokenFormBorder:
		return styles.FormBorderColor.Dark
	case styles.TokenFormBorderFocus:
		return styles.FormFocusedBorderColor.Dark
	case styles.TokenFormLabel:
		return styles.FormLabelColor.Dark
	case styles.TokenFormLabelFocus:
		return styles.FormFocusedLabelColor.Dark
	case styles.TokenFormDisabled:
		return styles.FormDisabledColor.Dark
	case styles.TokenFormControl:
		return styles.FormControlColor.Dark

	// Overlays
	case styles.TokenOverlayTitle:
		return styles.OverlayTitleColor.Dark
	case styles.TokenOverlayBorder:
		return styles.OverlayBorderColor.Dark
	}
	return ""
}

// TokenCategory groups tokens by category for display.
type TokenCategory struct {
	Name   string
	Tokens []styles.ColorToken
}

// GetTokenCategories returns all token categories for the theme viewer.
func GetTokenCategories() []TokenCategory {
	return []TokenCategory{
		{
			Name: "Text",
			Tokens: []styles.ColorToken{
				styles.TokenTextPrimary,
				styles.TokenTextSecondary,
				styles.TokenTextMuted,
				styles.TokenTextDescription,
				styles.TokenTextPlaceholder,
			},
		},
		{
			Name:   "Borders",
			Tokens: []styles.ColorToken{styles.TokenBorderDefault, styles.TokenBorderHighlight},
		},
		{
			Name:   "Status",
			Tokens: []styles.ColorToken{styles.TokenStatusSuccess, styles.TokenStatusError},
		},
		{
			Name:   "Selection",
			Tokens: []styles.ColorToken{styles.TokenSelectionIndicator},
		},
		{
			Name: "Forms",
			Tokens: []styles.ColorToken{
				styles.TokenFormBorder,
				styles.TokenFormBorderFocus,
				styles.TokenFormLabel,
				styles.TokenFormLabelFocus,
				styles.TokenFormDisabled,
				styles.TokenFormControl,
			},
		},
		{
			Name:   "Overlays",
			Tokens: []styles.ColorToken{styles.TokenOverlayTitle, styles.TokenOverlayBorder},
		},
	}
}
