package root

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/kids-todo/internal/app"
	"github.com/nhle/kids-todo/internal/model"
)

const Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "kidstodo",
	Short:         "きょうのやること — a daily checklist for kids",
	Long:          "kidstodo tracks a child's daily task checklist, seeds each day from recurring templates, and awards skill points for finished tasks.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, gateway, cleanup, err := openGateway()
		if err != nil {
			return err
		}
		defer cleanup()

		p := tea.NewProgram(app.New(gateway, cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running UI: %w", err)
		}
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", model.DefaultConfigPath(), "path to the config file",
	)

	rootCmd.AddCommand(
		newTodayCmd(),
		newSuggestCmd(),
		newSkillsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
