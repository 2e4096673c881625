package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/screens"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

func newRenderCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render one screen to stdout",
		Long: `Render one screen once, framed the way the shell shows it, and exit.

Examples:
  yodl render /
  yodl render "/(screens)/token/usdt-arb" --theme light
  yodl render "/(tabs-token)/wallet" --width 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			width := fitTerminal(out, app.Config.UI.Width)

			err := renderScreen(cmd.Context(), out, args[0], width)
			if err != nil {
				app.Logger.Error(err, "render failed")
				return err
			}
			app.Logger.WithFields(map[string]any{"path": args[0], "width": width}).Debug("screen rendered")
			return nil
		},
	}

	// Read through the config overlay as ui.width.
	cmd.Flags().Int("width", components.DefaultWidth, "Frame width in columns")

	return cmd
}

// renderScreen writes the screen at path, using the provider scoped to ctx.
func renderScreen(ctx context.Context, w io.Writer, path string, width int) error {
	provider, err := theme.FromContext(ctx)
	if err != nil {
		return err
	}

	m, err := router.Resolve(path)
	if err != nil {
		return err
	}

	value := provider.Read()
	view, err := screens.Render(m, value, width)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	_, err = fmt.Fprintln(w, screens.Document(value, width, view, screens.NoCursor))
	return err
}

// fitTerminal narrows width to the terminal when w is one.
func fitTerminal(w io.Writer, width int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return width
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return width
	}
	return min(width, cols)
}
