package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zerohexer/cspnet/internal/router"
	"github.com/zerohexer/cspnet/web/src/templates/components"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the site's routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ROUTE\tPATH\tLABEL")
		for _, r := range router.Known {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r, router.Path(r), components.NavLabel(r))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
