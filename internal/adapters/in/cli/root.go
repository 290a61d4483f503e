// Package cli implements the CLI adapter for dockenv.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/bnema/dockenv/internal/app"
	"github.com/bnema/dockenv/internal/domain"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// loadKernel is replaced in tests to run commands against a fake engine.
var loadKernel = func(cmd *cobra.Command, opts *rootOptions) (*app.Kernel, error) {
	return app.NewKernel(opts.configPath, app.Overrides{
		LogLevel: opts.logLevel,
		Output:   cmd.ErrOrStderr(),
	})
}

// NewRootCmd creates the root command for the dockenv CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "dockenv",
		Short: "dockenv - ephemeral Docker environments",
		Long: `dockenv brings up a set of containers described in a YAML manifest,
seeds them with files and setup commands, and tears them down again.

Resources are looked up by name, so running "up" twice is safe.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is ./dockenv.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newUpCmd(opts))
	rootCmd.AddCommand(newDownCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newExecCmd(opts))
	rootCmd.AddCommand(newCpCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				cmd.Println(Version)
				return
			}
			cmd.Printf("dockenv %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")

	return cmd
}

// withKernel builds the kernel, checks the engine and hands both to fn.
func withKernel(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, k *app.Kernel) error) error {
	k, err := loadKernel(cmd, opts)
	if err != nil {
		return err
	}
	defer k.Close()

	ctx := cmd.Context()
	if _, err := k.CheckEngine(ctx); err != nil {
		return err
	}
	return fn(ctx, k)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}

// ExitCode maps a command error to a process exit code. A failed exec
// propagates the command's own exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var execErr *domain.ExecError
	if errors.As(err, &execErr) && execErr.ExitCode > 0 {
		return execErr.ExitCode
	}
	return 1
}
