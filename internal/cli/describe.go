package cli

import (
	"fmt"

	"github.com/mesh-intelligence/herbarium/pkg/types"
	"github.com/spf13/cobra"
)

type describeFlags struct {
	minHeight int
	maxHeight int
	leaves    bool
	petals    bool
	stem      bool
	bush      bool
}

func newDescribeCmd(a *app) *cobra.Command {
	var f describeFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Build a plant from flags and print its description",
		Example: `  herbarium describe --min 1 --max 2 --stem --leaves --petals
  herbarium describe --min 10 --max 30 --bush`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := types.NewPlantRecord(f.minHeight, f.maxHeight, f.leaves, f.petals, f.stem, f.bush)
			if err != nil {
				a.logger.Debug("plant rejected",
					"minimum_height", f.minHeight,
					"maximum_height", f.maxHeight,
					"error", err)
				return fmt.Errorf("describe: %w", err)
			}
			a.logger.Debug("plant built", "hash", p.Hash())
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().IntVar(&f.minHeight, "min", types.DefaultMinimumHeight, "minimum height in meters")
	cmd.Flags().IntVar(&f.maxHeight, "max", types.DefaultMaximumHeight, "maximum height in meters")
	cmd.Flags().BoolVar(&f.leaves, flagLeaves, false, "plant has leaves (requires --stem)")
	cmd.Flags().BoolVar(&f.petals, flagPetals, false, "plant has petals (requires --stem)")
	cmd.Flags().BoolVar(&f.stem, flagStem, false, "plant has a stem")
	cmd.Flags().BoolVar(&f.bush, flagBush, false, "plant has a bush at the top")

	return cmd
}

func newDefaultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the default plant, a 10 to 30 meter tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := types.DefaultPlantRecord()
			a.logger.Debug("default plant", "hash", p.Hash())
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
