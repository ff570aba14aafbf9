// Package config provides configuration types and defaults for formkit.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/formkit/internal/daterange"
	"github.com/zjrosen/formkit/internal/log"
)

// PresetConfig defines a single relative range preset.
type PresetConfig struct {
	Key    string  `mapstructure:"key" yaml:"key"`
	Amount float64 `mapstructure:"amount" yaml:"amount"`
	Unit   string  `mapstructure:"unit" yaml:"unit"`
}

// FormConfig holds the relative range selector options.
type FormConfig struct {
	DateOnly       bool           `mapstructure:"date_only"`
	SingleGrid     bool           `mapstructure:"single_grid"`
	DisablePresets bool           `mapstructure:"disable_presets"` // Start in custom mode with no radio group
	Initial        string         `mapstructure:"initial"`         // Preset key or shorthand like "7d"
	Presets        []PresetConfig `mapstructure:"presets"`
}

// Config holds all configuration options for formkit.
type Config struct {
	Lang  string      `mapstructure:"lang"`
	Form  FormConfig  `mapstructure:"form"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     form:
	//       control: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "form.control": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// DefaultPresets returns the presets used when none are configured.
func DefaultPresets(dateOnly bool) []PresetConfig {
	if dateOnly {
		return []PresetConfig{
			{Key: "last-day", Amount: 1, Unit: "day"},
			{Key: "last-week", Amount: 1, Unit: "week"},
			{Key: "last-month", Amount: 1, Unit: "month"},
			{Key: "last-year", Amount: 1, Unit: "year"},
		}
	}
	return []PresetConfig{
		{Key: "last-5-minutes", Amount: 5, Unit: "minute"},
		{Key: "last-30-minutes", Amount: 30, Unit: "minute"},
		{Key: "last-hour", Amount: 1, Unit: "hour"},
		{Key: "last-6-hours", Amount: 6, Unit: "hour"},
		{Key: "last-day", Amount: 1, Unit: "day"},
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Lang: "en",
		Form: FormConfig{},
	}
}

// GetPresets returns the configured presets, or DefaultPresets when none are
// configured. DisablePresets yields an empty list.
func (c Config) GetPresets() []PresetConfig {
	if c.Form.DisablePresets {
		return nil
	}
	if len(c.Form.Presets) == 0 {
		return DefaultPresets(c.Form.DateOnly)
	}
	return c.Form.Presets
}

// Options converts the presets into selector options. Call Validate first;
// units that fail to parse are skipped.
func (c Config) Options() []daterange.RelativeOption {
	presets := c.GetPresets()
	opts := make([]daterange.RelativeOption, 0, len(presets))
	for _, p := range presets {
		unit, err := daterange.ParseUnit(p.Unit)
		if err != nil {
			continue
		}
		opts = append(opts, daterange.RelativeOption{Key: p.Key, Amount: p.Amount, Unit: unit})
	}
	return opts
}

// InitialSelection resolves Form.Initial against opts. A preset key selects
// that preset; anything else is parsed as shorthand. An empty string yields
// nil, which starts the selector in custom mode.
func (c Config) InitialSelection(opts []daterange.RelativeOption) (*daterange.RelativeValue, error) {
	initial := strings.TrimSpace(c.Form.Initial)
	if initial == "" {
		return nil, nil
	}
	if o, ok := daterange.FindOption(opts, initial); ok {
		v := o.Value()
		return &v, nil
	}
	v, err := daterange.ParseShorthand(initial)
	if err != nil {
		return nil, fmt.Errorf("form.initial: %w", err)
	}
	if err := v.Validate(c.Form.DateOnly); err != nil {
		return nil, fmt.Errorf("form.initial: %w", err)
	}
	return &v, nil
}

// ValidatePresets checks preset configuration for errors.
// Returns nil if presets are valid or empty (will use defaults).
func ValidatePresets(presets []PresetConfig, dateOnly bool) error {
	seen := make(map[string]bool, len(presets))
	for i, p := range presets {
		if p.Key == "" {
			return fmt.Errorf("preset %d: key is required", i)
		}
		if p.Key == daterange.ReservedKey {
			return fmt.Errorf("preset %d: key %q is reserved", i, p.Key)
		}
		if seen[p.Key] {
			return fmt.Errorf("preset %d (%s): duplicate key", i, p.Key)
		}
		seen[p.Key] = true

		unit, err := daterange.ParseUnit(p.Unit)
		if err != nil {
			return fmt.Errorf("preset %d (%s): %w", i, p.Key, err)
		}
		if !unit.AllowedIn(dateOnly) {
			return fmt.Errorf("preset %d (%s): unit %q not allowed in date-only mode", i, p.Key, unit)
		}
		if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) {
			return fmt.Errorf("preset %d (%s): amount must be a finite number", i, p.Key)
		}
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	var errs []error
	if err := ValidatePresets(c.Form.Presets, c.Form.DateOnly); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.InitialSelection(c.Options()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyDelimiter separates nested viper keys. The default "." would split
// dotted color tokens like "form.control" into nested paths.
const KeyDelimiter = "::"

// NewViper returns a viper instance using KeyDelimiter with Defaults
// registered.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	SetViperDefaults(v)
	return v
}

// Key joins path segments with KeyDelimiter, e.g. Key("form", "date_only").
func Key(parts ...string) string {
	return strings.Join(parts, KeyDelimiter)
}

// Load reads the config file at path into a fresh viper instance, layered
// over Defaults. Used for hot reload, where the command's viper state must
// not be touched.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Debug(log.CatConfig, "Loaded config", "path", path, "presets", len(cfg.Form.Presets))
	return cfg, nil
}

// SetViperDefaults registers Defaults on v. Presets have no viper default so
// that an empty list falls back to the mode's DefaultPresets.
func SetViperDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(Key("lang"), d.Lang)
	v.SetDefault(Key("form", "date_only"), d.Form.DateOnly)
	v.SetDefault(Key("form", "single_grid"), d.Form.SingleGrid)
	v.SetDefault(Key("form", "disable_presets"), d.Form.DisablePresets)
	v.SetDefault(Key("form", "initial"), d.Form.Initial)
	v.SetDefault(Key("theme", "preset"), d.Theme.Preset)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# formkit configuration

# Language for labels and unit names: en (default) or de
lang: en

# Relative range selector
form:
  date_only: false        # Only offer day, week, month and year
  single_grid: false      # Stack duration and unit instead of side by side
  disable_presets: false  # Hide the preset list and start in custom mode

  # Initial selection: a preset key, or shorthand such as 7d, 15m, 2w, 3mo
  # initial: last-hour

  # Presets shown as radio choices, in order.
  # Keys must be unique. Units: second, minute, hour, day, week, month, year
  # (date_only allows day, week, month, year only).
  presets:
    - key: last-5-minutes
      amount: 5
      unit: minute

    - key: last-30-minutes
      amount: 30
      unit: minute

    - key: last-hour
      amount: 1
      unit: hour

    - key: last-6-hours
      amount: 6
      unit: hour

    - key: last-day
      amount: 1
      unit: day

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Available presets:
  #   default        - Default formkit theme
  #   nord           - Arctic, north-bluish palette
  #   high-contrast  - High contrast for accessibility
  # preset: nord
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   form.control: "#54A0FF"
  #   form.label.focus: "#FFFFFF"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
