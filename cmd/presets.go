package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/formkit/internal/config"
	"github.com/zjrosen/formkit/internal/i18n"
	"github.com/zjrosen/formkit/internal/presentation"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the configured range presets",
	Long: `List the presets offered by the selector as YAML, with their labels.

When no presets are configured the built-in defaults are listed.

Examples:
  # List presets with German labels
  formkit presets --lang de

  # Add a preset and remove it again
  formkit presets add last-2-weeks 2 week
  formkit presets remove last-2-weeks`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadedConfig(cmd)
		if err != nil {
			return err
		}
		strings, err := i18n.Lookup(c.Lang)
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).
			FormatPresets(presentation.FromPresets(c.GetPresets(), strings))
	},
}

var presetsAddCmd = &cobra.Command{
	Use:   "add KEY AMOUNT UNIT",
	Short: "Add a preset to the config file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadedConfig(cmd)
		if err != nil {
			return err
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("amount %q: %w", args[1], err)
		}
		p := config.PresetConfig{Key: args[0], Amount: amount, Unit: args[2]}
		if err := config.AddPreset(configPath, p, c.GetPresets(), c.Form.DateOnly); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Added preset %s to %s\n", p.Key, configPath)
		return nil
	},
}

var presetsRemoveCmd = &cobra.Command{
	Use:   "remove KEY",
	Short: "Remove a preset from the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadedConfig(cmd)
		if err != nil {
			return err
		}
		if err := config.RemovePreset(configPath, args[0], c.GetPresets()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Removed preset %s from %s\n", args[0], configPath)
		return nil
	},
}

func init() {
	presetsCmd.PersistentFlags().String("lang", "", "label language (en, de)")
	presetsCmd.PersistentFlags().Bool("date-only", false, "use the date-only defaults")
	presetsCmd.AddCommand(presetsAddCmd, presetsRemoveCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadedConfig returns the config read at startup with flag overrides,
// validated.
func loadedConfig(cmd *cobra.Command) (config.Config, error) {
	if configErr != nil {
		return config.Config{}, configErr
	}
	c := applyFlags(cmd, cfg)
	if err := c.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}
