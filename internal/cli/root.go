// Package cli implements the herbarium command-line interface: it builds
// plants from flags and prints their descriptions, equality and ordering.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/herbarium/internal/logging"
	"github.com/mesh-intelligence/herbarium/internal/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
}

// app carries state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	logger    *slog.Logger
}

// NewRootCmd creates the top-level "herbarium" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:     "herbarium",
		Short:   "Describe and compare validated plant records",
		Long:    "Herbarium builds plant records from height bounds and morphological flags,\nrejecting combinations that do not describe a plant.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/herbarium)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDescribeCmd(a))
	root.AddCommand(newDefaultCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args and returns the process exit code, printing
// any error to stderr.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitCode(err)
}

// setup resolves the config directory, loads config.yaml and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	v, err := loadConfig(dir)
	if err != nil {
		return sysError(err)
	}
	if err := v.BindPFlag(cfgKeyLogLevel, cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return sysError(fmt.Errorf("bind log level: %w", err))
	}
	a.config = v

	logger, err := logging.New(cmd.ErrOrStderr(), v.GetString(cfgKeyLogLevel), v.GetString(cfgKeyLogFormat))
	if err != nil {
		return sysError(fmt.Errorf("configure logging: %w", err))
	}
	a.logger = logger
	a.logger.Debug("config loaded", "config_dir", dir, "config_file", v.ConfigFileUsed())
	return nil
}

// codedError attaches a process exit code to an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func sysError(err error) error {
	return &codedError{code: exitSysError, err: err}
}

// exitCode maps an error to an exit code. Invalid plants and bad flag values
// are user errors; anything tagged by sysError is a system error.
func exitCode(err error) int {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
