// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"nord":          NordPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset mirrors the Dark values of the AdaptiveColor definitions in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default formkit theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:        "#CCCCCC",
		TokenTextSecondary:      "#BBBBBB",
		TokenTextMuted:          "#696969",
		TokenTextDescription:    "#999999",
		TokenTextPlaceholder:    "#777777",
		TokenBorderDefault:      "#696969",
		TokenBorderHighlight:    "#54A0FF",
		TokenStatusSuccess:      "#73F59F",
		TokenStatusError:        "#FF8787",
		TokenSelectionIndicator: "#FFFFFF",
		TokenFormBorder:         "#8C8C8C",
		TokenFormBorderFocus:    "#FFFFFF",
		TokenFormLabel:          "#8C8C8C",
		TokenFormLabelFocus:     "#FFFFFF",
		TokenFormDisabled:       "#4A4A4A",
		TokenFormControl:        "#54A0FF",
		TokenOverlayTitle:       "#C9C9C9",
		TokenOverlayBorder:      "#8C8C8C",
	},
}

// NordPreset is based on the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:        "#ECEFF4",
		TokenTextSecondary:      "#E5E9F0",
		TokenTextMuted:          "#4C566A",
		TokenTextDescription:    "#D8DEE9",
		TokenTextPlaceholder:    "#4C566A",
		TokenBorderDefault:      "#4C566A",
		TokenBorderHighlight:    "#88C0D0",
		TokenStatusSuccess:      "#A3BE8C",
		TokenStatusError:        "#BF616A",
		TokenSelectionIndicator: "#88C0D0",
		TokenFormBorder:         "#4C566A",
		TokenFormBorderFocus:    "#88C0D0",
		TokenFormLabel:          "#D8DEE9",
		TokenFormLabelFocus:     "#88C0D0",
		TokenFormDisabled:       "#3B4252",
		TokenFormControl:        "#81A1C1",
		TokenOverlayTitle:       "#ECEFF4",
		TokenOverlayBorder:      "#4C566A",
	},
}

// HighContrastPreset maximizes legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:        "#FFFFFF",
		TokenTextSecondary:      "#FFFFFF",
		TokenTextMuted:          "#C0C0C0",
		TokenTextDescription:    "#FFFFFF",
		TokenTextPlaceholder:    "#C0C0C0",
		TokenBorderDefault:      "#FFFFFF",
		TokenBorderHighlight:    "#FFFF00",
		TokenStatusSuccess:      "#00FF00",
		TokenStatusError:        "#FF0000",
		TokenSelectionIndicator: "#FFFF00",
		TokenFormBorder:         "#FFFFFF",
		TokenFormBorderFocus:    "#FFFF00",
		TokenFormLabel:          "#FFFFFF",
		TokenFormLabelFocus:     "#FFFF00",
		TokenFormDisabled:       "#808080",
		TokenFormControl:        "#00FFFF",
		TokenOverlayTitle:       "#FFFFFF",
		TokenOverlayBorder:      "#FFFFFF",
	},
}
