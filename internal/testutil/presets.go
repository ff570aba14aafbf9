package testutil

import "github.com/zjrosen/formkit/internal/daterange"

// WithStandardPresets adds the presets most selector tests use:
// last-5-minutes, last-hour, last-day and last-week.
func (b *Builder) WithStandardPresets() *Builder {
	return b.
		WithPreset("last-5-minutes", 5, daterange.UnitMinute).
		WithPreset("last-hour", 1, daterange.UnitHour).
		WithPreset("last-day", 1, daterange.UnitDay).
		WithPreset("last-week", 1, daterange.UnitWeek)
}

// WithDatePresets adds presets that are legal in date-only mode.
func (b *Builder) WithDatePresets() *Builder {
	return b.
		WithPreset("last-day", 1, daterange.UnitDay).
		WithPreset("last-week", 1, daterange.UnitWeek).
		WithPreset("last-month", 1, daterange.UnitMonth)
}
