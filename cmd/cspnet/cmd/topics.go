package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zerohexer/cspnet/internal/events"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the event topics published on the bus",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tDESCRIPTION\tEXAMPLE")
		for _, t := range events.Catalog.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Description, t.Example)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
