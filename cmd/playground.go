package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zjrosen/formkit/internal/log"
	"github.com/zjrosen/formkit/internal/mode/playground"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Interactive playground for the form components",
	Long: `Launch an interactive showcase of every form component.

The last value each component reported is shown under it and the log pane
follows the debug log live. Ctrl+F calls the focused component's Focus().`,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging("formkit-playground")
	if err != nil {
		return err
	}
	defer cleanup()

	// The log pane needs a logger even without --debug.
	if !log.Initialized() {
		log.InitWithWriter(io.Discard)
	}

	if configErr == nil {
		if err := applyTheme(cfg); err != nil {
			return err
		}
	}

	zone.NewGlobal()
	model := playground.New()
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("running playground: %w", err)
	}
	return nil
}
