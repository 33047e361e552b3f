package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two plants given as min,max[,flag...]",
		Long: `Compare builds two plants from specs such as "10,30,stem,bush" and prints
whether the first is less than, equal to, or greater than the second,
followed by the hash of each.`,
		Example: "  herbarium compare 10,30,stem,bush 10,30,stem",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parsePlantSpec(args[0])
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			second, err := parsePlantSpec(args[1])
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			var verdict string
			switch c := first.Compare(second); {
			case c < 0:
				verdict = "less"
			case c > 0:
				verdict = "greater"
			default:
				verdict = "equal"
			}
			a.logger.Debug("plants compared", "a", args[0], "b", args[1], "result", verdict)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, verdict)
			fmt.Fprintf(out, "hash a: %d\nhash b: %d\n", first.Hash(), second.Hash())
			return nil
		},
	}
	return cmd
}
