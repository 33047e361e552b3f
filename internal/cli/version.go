package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the herbarium release, overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/herbarium/internal/cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/herbarium"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the herbarium version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "herbarium v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
