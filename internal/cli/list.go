package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(e *env) *cobra.Command {
	var flagYear int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered stars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := e.disp.Registry().Year(flagYear)
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stars found.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flagYear, "year", 0, "Only list stars of this year")
	return cmd
}
