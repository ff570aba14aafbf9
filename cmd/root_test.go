package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/formkit/internal/config"
	"github.com/zjrosen/formkit/internal/daterange"
)

// flagCommand returns a command carrying the selector flags, parsed from args.
func flagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	addSelectorFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	base := config.Defaults()
	base.Form.SingleGrid = true
	base.Form.Initial = "last-hour"

	got := applyFlags(flagCommand(t, "--date-only", "--initial", "7d", "--lang", "de"), base)

	require.True(t, got.Form.DateOnly)
	require.True(t, got.Form.SingleGrid, "unset flag must not clear config value")
	require.Equal(t, "7d", got.Form.Initial)
	require.Equal(t, "de", got.Lang)
}

func TestApplyFlags_NoFlags(t *testing.T) {
	base := config.Defaults()
	base.Form.DisablePresets = true

	require.Equal(t, base, applyFlags(flagCommand(t), base))
}

func TestSelectorBuilder(t *testing.T) {
	build := selectorBuilder(flagCommand(t, "--date-only", "--initial", "2w"))

	sel, err := build(config.Defaults())
	require.NoError(t, err)
	require.True(t, sel.DateOnly)
	require.Len(t, sel.Options, len(config.DefaultPresets(true)))
	require.NotNil(t, sel.InitialSelection)
	require.Equal(t, daterange.UnitWeek, sel.InitialSelection.Unit)
}

func TestSelectorBuilder_DateOnlyFlagRejectsTimePresets(t *testing.T) {
	c := config.Defaults()
	c.Form.Presets = []config.PresetConfig{{Key: "last-5-minutes", Amount: 5, Unit: "minute"}}

	_, err := selectorBuilder(flagCommand(t, "--date-only"))(c)
	require.ErrorContains(t, err, "not allowed in date-only mode")
}

func TestSelectorBuilder_UnknownLanguage(t *testing.T) {
	_, err := selectorBuilder(flagCommand(t, "--lang", "xx"))(config.Defaults())
	require.Error(t, err)
}

func TestPresetsCommand_ListsConfiguredPresets(t *testing.T) {
	path := writeConfig(t, `form:
  presets:
    - key: last-2-weeks
      amount: 2
      unit: week
`)

	out, err := execute(t, "presets", "--config", path)
	require.NoError(t, err)

	var listing struct {
		Presets []struct {
			Key    string  `yaml:"key"`
			Amount float64 `yaml:"amount"`
			Unit   string  `yaml:"unit"`
			Label  string  `yaml:"label"`
		} `yaml:"presets"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &listing))
	require.Len(t, listing.Presets, 1)
	require.Equal(t, "last-2-weeks", listing.Presets[0].Key)
	require.Equal(t, "Last 2 weeks", listing.Presets[0].Label)
}

func TestPresetsCommand_AddAndRemove(t *testing.T) {
	path := writeConfig(t, "lang: en\n")

	_, err := execute(t, "presets", "add", "last-90-seconds", "90", "second", "--config", path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Form.Presets, len(config.DefaultPresets(false))+1)
	require.Equal(t, "last-90-seconds", loaded.Form.Presets[len(loaded.Form.Presets)-1].Key)

	_, err = execute(t, "presets", "remove", "last-90-seconds", "--config", path)
	require.NoError(t, err)

	loaded, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultPresets(false), loaded.Form.Presets)
}

func TestPresetsCommand_AddRejectsBadAmount(t *testing.T) {
	path := writeConfig(t, "lang: en\n")

	_, err := execute(t, "presets", "add", "soon", "many", "day", "--config", path)
	require.ErrorContains(t, err, `amount "many"`)
}

func TestPresetsCommand_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "presets", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config")
}
