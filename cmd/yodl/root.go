package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	theme      string
	flow       string
	route      string
	logLevel   string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "yodl",
		Short:         "yodl renders the wallet prototype screens in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, app)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	pf.StringVar(&flags.theme, "theme", "", "Theme to start with (dark or light)")
	pf.StringVar(&flags.flow, "flow", "", "Open a flow directly (country or token)")
	pf.StringVar(&flags.route, "route", "", "Open a route directly, e.g. /(screens)/wallet")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to a rotating file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newRoutesCmd())
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}
