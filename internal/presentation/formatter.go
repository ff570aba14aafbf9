package presentation

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatSelection writes a prompt result as YAML.
func (f *Formatter) FormatSelection(selection SelectionDTO) error {
	return f.encode(selection)
}

// FormatPresets writes a preset listing as YAML.
func (f *Formatter) FormatPresets(presets []PresetDTO) error {
	return f.encode(struct {
		Presets []PresetDTO `yaml:"presets"`
	}{presets})
}

func (f *Formatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
