package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ersim/core/unit"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the emergency units available for dispatch",
	Args:  cobra.NoArgs,
	RunE:  listRoster,
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}

func listRoster(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tSPECIALTY\tSPEED")
	for _, u := range unit.DefaultRoster().Units() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", u.Name(), u.Specialty(), u.Speed())
	}
	return tw.Flush()
}
