package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the dark and light colour tables side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, mode := range theme.Modes() {
				if err := theme.ColorsFor(mode).Validate(); err != nil {
					return err
				}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Slot", "Dark", "", "Light", ""})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)

			for _, slot := range theme.ColorSlots() {
				dark, _ := theme.DarkColors.Slot(slot)
				light, _ := theme.LightColors.Slot(slot)
				table.Append([]string{slot, dark, swatch(dark), light, swatch(light)})
			}

			semantic := [][2]string{
				{"success", theme.Semantic.Success},
				{"error", theme.Semantic.Error},
				{"warning", theme.Semantic.Warning},
				{"processing", theme.Semantic.Processing},
			}
			for _, s := range semantic {
				table.Append([]string{s[0], s[1], swatch(s[1]), s[1], swatch(s[1])})
			}

			table.Render()
			return nil
		},
	}
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}
