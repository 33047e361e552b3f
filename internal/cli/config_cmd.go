package cli

import (
	"fmt"

	"github.com/mesh-intelligence/herbarium/internal/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize herbarium configuration",
	}
	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.ConfigFile(a.configDir)
			written, err := writeConfigIfMissing(a.configDir)
			if err != nil {
				return sysError(err)
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
				return nil
			}
			a.logger.Info("config written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config_dir: %s\n", a.configDir)
			fmt.Fprintf(out, "%s: %s\n", cfgKeyLogLevel, a.config.GetString(cfgKeyLogLevel))
			fmt.Fprintf(out, "%s: %s\n", cfgKeyLogFormat, a.config.GetString(cfgKeyLogFormat))
			return nil
		},
	}
}
