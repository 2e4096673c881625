package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yodl/internal/tui"
)

func runShell(cmd *cobra.Command, app *AppContext) error {
	ctx := cmd.Context()
	log := app.Logger

	start, err := app.Config.StartPath()
	if err != nil {
		return err
	}

	m, err := tui.New(ctx, tui.Options{
		Start:  start,
		Width:  app.Config.UI.Width,
		Logger: log,
	})
	if err != nil {
		log.Error(err, "shell setup failed")
		return err
	}
	defer m.Close()

	log.WithFields(map[string]any{"start": start}).Info("launching shell")

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "shell execution failed")
		return fmt.Errorf("failed to run shell: %w", err)
	}

	log.Info("shell closed")
	return nil
}
