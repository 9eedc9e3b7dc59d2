package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAllCmd(e *env) *cobra.Command {
	var flagYear int
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every registered star concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := e.disp.Registry().Year(flagYear)
			results := e.disp.RunAll(cmd.Context(), ids, e.loadInput)
			var failed int
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "%v: error: %v\n", r.ID, r.Err)
					continue
				}
				fmt.Fprintf(out, "%v: %s (took %v)\n", r.ID, r.Answer, r.Took)
			}
			e.logger.Info("done", "stars", len(results), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d stars failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flagYear, "year", 0, "Only solve stars of this year")
	return cmd
}
