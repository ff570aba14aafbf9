package presentation

import (
	"time"

	"github.com/zjrosen/formkit/internal/config"
	"github.com/zjrosen/formkit/internal/daterange"
	"github.com/zjrosen/formkit/internal/i18n"
)

// SelectionDTO is the printed result of a prompt.
type SelectionDTO struct {
	Range daterange.RelativeValue `yaml:"range"`
	Label string                  `yaml:"label"`
	Since string                  `yaml:"since,omitempty"` // RFC 3339; omitted unless requested or when the amount is empty
}

// PresetDTO represents a configured preset for listing.
type PresetDTO struct {
	Key    string  `yaml:"key"`
	Amount float64 `yaml:"amount"`
	Unit   string  `yaml:"unit"`
	Label  string  `yaml:"label"`
}

// FromValue converts a selector value for output. When now is non-zero the
// start of the range is resolved against it.
func FromValue(v daterange.RelativeValue, strings i18n.Strings, now time.Time) SelectionDTO {
	dto := SelectionDTO{
		Range: v,
		Label: strings.FormatRelativeRange(v),
	}
	if !now.IsZero() {
		if since, ok := v.Since(now); ok {
			dto.Since = since.Format(time.RFC3339)
		}
	}
	return dto
}

// FromPresets converts configured presets with their display labels.
// Presets with unknown units are listed with the raw unit and no label.
func FromPresets(presets []config.PresetConfig, strings i18n.Strings) []PresetDTO {
	dtos := make([]PresetDTO, len(presets))
	for i, p := range presets {
		dto := PresetDTO{Key: p.Key, Amount: p.Amount, Unit: p.Unit}
		if unit, err := daterange.ParseUnit(p.Unit); err == nil {
			dto.Unit = string(unit)
			dto.Label = strings.FormatRelativeRange(daterange.RelativeOption{
				Key: p.Key, Amount: p.Amount, Unit: unit,
			}.Value())
		}
		dtos[i] = dto
	}
	return dtos
}
