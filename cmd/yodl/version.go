package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

// Set by the linker at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information and the prototype surface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := theme.DefaultMode
			if app.Provider != nil {
				mode = app.Provider.Theme()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "yodl %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			fmt.Fprintf(out, "theme: %s\nroutes: %d\n", mode, len(router.Routes()))
			return nil
		},
	}
}
