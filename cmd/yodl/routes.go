package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yodl/internal/router"
)

type routesOptions struct {
	filter string
}

func newRoutesCmd() *cobra.Command {
	opts := &routesOptions{}

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes := router.Filter(opts.filter)
			if len(routes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No routes match %q.\n", opts.filter)
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Pattern", "Group", "Title", "Params"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)

			for _, r := range routes {
				params := strings.Join(r.Params(), ", ")
				if params == "" {
					params = "-"
				}
				table.Append([]string{string(r.Name), r.Pattern, string(r.Group), r.Title, params})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Fuzzy filter on pattern, name or title")

	return cmd
}
