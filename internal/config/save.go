package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SavePresets replaces form.presets in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SavePresets(configPath string, presets []PresetConfig) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("config root is not a mapping")
	}

	form := mappingValue(doc.Content[0], "form")
	setMappingValue(form, "presets", buildPresetsNode(presets))

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// AddPreset appends p to the presets and saves. The result is validated
// before anything is written.
func AddPreset(configPath string, p PresetConfig, existing []PresetConfig, dateOnly bool) error {
	presets := append(slices.Clone(existing), p)
	if err := ValidatePresets(presets, dateOnly); err != nil {
		return err
	}
	return SavePresets(configPath, presets)
}

// RemovePreset deletes the preset with key and saves.
func RemovePreset(configPath, key string, existing []PresetConfig) error {
	i := slices.IndexFunc(existing, func(p PresetConfig) bool { return p.Key == key })
	if i < 0 {
		return fmt.Errorf("preset %q not found", key)
	}
	return SavePresets(configPath, slices.Delete(slices.Clone(existing), i, i+1))
}

// mappingValue returns the mapping stored under key in m, creating it when
// missing or when the existing value is not a mapping.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			if m.Content[i+1].Kind != yaml.MappingNode {
				m.Content[i+1] = &yaml.Node{Kind: yaml.MappingNode}
			}
			return m.Content[i+1]
		}
	}
	v := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, v)
	return v
}

func setMappingValue(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
}

// buildPresetsNode creates a yaml.Node representing the presets array.
// Keys and units are tagged !!str so the encoder quotes values such as 007
// or 1.50 that would otherwise read back as numbers.
func buildPresetsNode(presets []PresetConfig) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: make([]*yaml.Node, 0, len(presets)),
	}
	for _, p := range presets {
		node.Content = append(node.Content, &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: "key"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
				{Kind: yaml.ScalarNode, Value: "amount"},
				{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(p.Amount, 'f', -1, 64)},
				{Kind: yaml.ScalarNode, Value: "unit"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Unit},
			},
		})
	}
	return node
}

// writeAtomic writes to a temp file in the target directory, then renames it
// over configPath.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".formkit.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	// CreateTemp uses 0600; keep the mode of the file being replaced.
	if info, err := os.Stat(configPath); err == nil {
		if err := os.Chmod(tempPath, info.Mode().Perm()); err != nil {
			_ = os.Remove(tempPath)
			return fmt.Errorf("setting config file mode: %w", err)
		}
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
