package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zjrosen/formkit/internal/config"
	"github.com/zjrosen/formkit/internal/i18n"
	"github.com/zjrosen/formkit/internal/log"
	"github.com/zjrosen/formkit/internal/mode/prompt"
	"github.com/zjrosen/formkit/internal/presentation"
	"github.com/zjrosen/formkit/internal/ui/relativerange"
	"github.com/zjrosen/formkit/internal/ui/styles"
	"github.com/zjrosen/formkit/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// ErrCancelled is returned when the user leaves the prompt without submitting.
var ErrCancelled = errors.New("selection cancelled")

const defaultConfigPath = ".formkit/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool

	v          = config.NewViper()
	cfg        config.Config
	configPath string
	configErr  error
)

var rootCmd = &cobra.Command{
	Use:   "formkit",
	Short: "Pick a relative time range in the terminal",
	Long: `Run the relative range selector as a prompt and print the chosen range as YAML.

Pick one of the configured presets or enter a custom amount and unit.
Ctrl+S submits, Esc cancels.

Examples:
  # Start on the 7 day shorthand and print the resulting start time
  formkit --initial 7d --since

  # Only offer day, week, month and year
  formkit --date-only

  # Reload presets when the config file changes
  formkit --watch`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runPrompt,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/formkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs (also FORMKIT_DEBUG=1)")

	addSelectorFlags(rootCmd.Flags())
	rootCmd.Flags().Bool("since", false, "include the start of the range in the output")
	rootCmd.Flags().BoolP("watch", "w", false, "reload the config file when it changes")
}

// addSelectorFlags registers the flags applyFlags reads.
func addSelectorFlags(fs *pflag.FlagSet) {
	fs.Bool("date-only", false, "only offer day, week, month and year")
	fs.Bool("single-grid", false, "stack duration and unit vertically")
	fs.Bool("no-presets", false, "hide the presets and start in custom mode")
	fs.StringP("initial", "i", "", "initial preset key or shorthand such as 7d")
	fs.String("lang", "", "label language (en, de)")
}

func initConfig() {
	cfg = config.Config{}
	configErr = nil

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .formkit/config.yaml (current directory)
		// 2. ~/.config/formkit/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			v.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "formkit"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && cfgFile == "":
			// No config file found anywhere - create default at .formkit/config.yaml
			if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
				v.SetConfigFile(defaultConfigPath)
				_ = v.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		default:
			configErr = fmt.Errorf("reading config: %w", err)
			return
		}
	}

	configPath = v.ConfigFileUsed()
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := v.Unmarshal(&cfg); err != nil {
		configErr = fmt.Errorf("parsing config: %w", err)
	}
}

// setupLogging initializes file logging when debug mode is enabled via flag
// or env var. The returned cleanup is never nil.
func setupLogging(prefix string) (func(), error) {
	if os.Getenv("FORMKIT_DEBUG") == "" && !debugFlag {
		return func() {}, nil
	}

	logPath := os.Getenv("FORMKIT_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	if name := os.Getenv("FORMKIT_LOG_LEVEL"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			cleanup()
			return nil, err
		}
		log.SetMinLevel(level)
	}
	log.Info(log.CatConfig, "formkit starting", "version", version, "logPath", logPath)
	return cleanup, nil
}

func applyTheme(c config.Config) error {
	err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: c.Theme.Preset,
		Colors: c.Theme.FlattenedColors(),
	})
	if err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}
	return nil
}

// applyFlags layers explicitly set command line flags over c. Only changed
// flags apply, so config values survive when a flag is left at its default.
func applyFlags(cmd *cobra.Command, c config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("date-only") {
		c.Form.DateOnly, _ = flags.GetBool("date-only")
	}
	if flags.Changed("single-grid") {
		c.Form.SingleGrid, _ = flags.GetBool("single-grid")
	}
	if flags.Changed("no-presets") {
		c.Form.DisablePresets, _ = flags.GetBool("no-presets")
	}
	if flags.Changed("initial") {
		c.Form.Initial, _ = flags.GetString("initial")
	}
	if flags.Changed("lang") {
		c.Lang, _ = flags.GetString("lang")
	}
	return c
}

// selectorBuilder returns the prompt's BuildFunc: flags over c, validated,
// converted to selector settings. Reloads go through the same path.
func selectorBuilder(cmd *cobra.Command) prompt.BuildFunc {
	return func(c config.Config) (relativerange.Config, error) {
		c = applyFlags(cmd, c)
		if err := c.Validate(); err != nil {
			return relativerange.Config{}, fmt.Errorf("invalid configuration: %w", err)
		}
		return prompt.SelectorConfig(c)
	}
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	cleanup, err := setupLogging("formkit")
	if err != nil {
		return err
	}
	defer cleanup()

	if configErr != nil {
		return configErr
	}
	if err := applyTheme(cfg); err != nil {
		return err
	}

	build := selectorBuilder(cmd)
	selector, err := build(cfg)
	if err != nil {
		return err
	}

	pc := prompt.Config{
		Selector:   selector,
		ConfigPath: configPath,
		Build:      build,
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		w, err := watcher.New(watcher.DefaultConfig(configPath))
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watching config: %w", err)
		}
		defer func() { _ = w.Stop() }()
		pc.Watcher = w
	}

	zone.NewGlobal()
	model := prompt.New(pc)

	// The picker draws on stderr so stdout carries only the result.
	p := tea.NewProgram(
		model,
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	result, ok := final.(prompt.Model).Result()
	if !ok {
		return ErrCancelled
	}

	var now time.Time
	if since, _ := cmd.Flags().GetBool("since"); since {
		now = time.Now()
	}
	strings := selector.Strings
	if strings.FormatRelativeRange == nil {
		strings = i18n.English()
	}
	return presentation.NewFormatter(cmd.OutOrStdout()).
		FormatSelection(presentation.FromValue(result, strings, now))
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}
