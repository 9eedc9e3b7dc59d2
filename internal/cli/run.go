package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aocstars/aoc"
)

func newRunCmd(e *env) *cobra.Command {
	var flagInput string
	cmd := &cobra.Command{
		Use:   "run <year-day-part> | <year> <day> [part]",
		Short: "Solve one star or both stars of a day",
		Long: `Solve one star, given as 2022-06-1 or as separate year, day and part
arguments. Without a part both stars of the day are solved.

The input is read from the cache directory, downloaded if a session is
configured, or taken from --input (a file, or - for stdin).`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := e.resolve(args)
			if err != nil {
				return err
			}
			var input string
			if flagInput != "" {
				input, err = readInput(cmd, flagInput)
				if err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				in := input
				if flagInput == "" {
					in, err = e.loadInput(cmd.Context(), id)
					if err != nil {
						return err
					}
				}
				ans, err := e.disp.Run(cmd.Context(), id, in)
				if err != nil {
					return fmt.Errorf("%v: %w", id, err)
				}
				if len(ids) == 1 {
					fmt.Fprintln(out, ans)
				} else {
					fmt.Fprintf(out, "%v: %s\n", id, ans)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagInput, "input", "i", "", "Read the input from a file, or - for stdin")
	return cmd
}

// resolve turns run arguments into the stars to solve. Every returned star
// is registered; anything well formed but unregistered is a NotFoundError.
func (e *env) resolve(args []string) ([]aoc.ID, error) {
	if len(args) == 1 {
		args = strings.Split(strings.TrimSpace(args[0]), "-")
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: want year-day-part", aoc.ErrInvalidID)
		}
	}
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", aoc.ErrInvalidID, a)
		}
		nums[i] = n
	}
	reg := e.disp.Registry()
	if len(nums) == 3 {
		id := aoc.ID{Year: nums[0], Day: nums[1], Part: nums[2]}
		if _, err := reg.Lookup(id); err != nil {
			return nil, err
		}
		return []aoc.ID{id}, nil
	}
	ids := reg.Day(nums[0], nums[1])
	if len(ids) == 0 {
		return nil, &aoc.NotFoundError{ID: aoc.ID{Year: nums[0], Day: nums[1], Part: 1}}
	}
	return ids, nil
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	var b []byte
	var err error
	if name == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return trimInput(string(b)), nil
}
