package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dockenv/internal/app"
	"github.com/bnema/dockenv/internal/boundaries/in"
	"github.com/bnema/dockenv/internal/domain"
)

type execOptions struct {
	User       string
	WorkingDir string
	Env        []string
}

func newExecCmd(opts *rootOptions) *cobra.Command {
	var eo execOptions

	cmd := &cobra.Command{
		Use:   "exec <container> -- <command> [args...]",
		Short: "Run a command in a container",
		Long: `Runs a one-shot command in a running container and prints its output.
The exit status of dockenv is the exit code of the command.

Examples:
  dockenv exec mssql -- /opt/mssql-tools18/bin/sqlcmd -Q "SELECT 1"
  dockenv exec api --user root -e DEBUG=1 -- ls /data`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				return runExec(ctx, k.Orchestrator(), args[0], args[1:], eo, cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}

	cmd.Flags().StringVarP(&eo.User, "user", "u", "", "User to run the command as")
	cmd.Flags().StringVarP(&eo.WorkingDir, "workdir", "w", "", "Working directory inside the container")
	cmd.Flags().StringArrayVarP(&eo.Env, "env", "e", nil, "Extra environment variable (KEY=VALUE)")

	return cmd
}

func runExec(ctx context.Context, orch in.Orchestrator, name string, argv []string, eo execOptions, stdout, stderr io.Writer) error {
	c, err := orch.FindContainer(ctx, name)
	if err != nil {
		return fmt.Errorf("container %s: %w", name, err)
	}

	res, err := orch.Exec(ctx, domain.ExecRequest{
		ContainerID: c.ID,
		Cmd:         argv,
		User:        eo.User,
		WorkingDir:  eo.WorkingDir,
		Env:         eo.Env,
	})
	var execErr *domain.ExecError
	switch {
	case errors.As(err, &execErr):
		io.WriteString(stdout, execErr.Stdout)
		io.WriteString(stderr, execErr.Stderr)
		cliError(stderr, "exit code %d", execErr.ExitCode)
		return err
	case err != nil:
		return err
	}

	io.WriteString(stdout, res.Stdout)
	io.WriteString(stderr, res.Stderr)
	return nil
}

func newCpCmd(opts *rootOptions) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "cp <src> <container>:<dest>",
		Short: "Copy a file or directory into a container",
		Long: `Copies a host file or directory into a container. A directory keeps its
own name under <dest>.

Examples:
  dockenv cp ./seed.sql mssql:/tmp
  dockenv cp ./fixtures api:/srv/data --overwrite`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, dest, err := parseCopyTarget(args[1])
			if err != nil {
				return err
			}
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				return runCp(ctx, k.Orchestrator(), args[0], name, dest, overwrite, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Allow replacing a directory with a file and vice versa")

	return cmd
}

func parseCopyTarget(target string) (string, string, error) {
	name, dest, ok := strings.Cut(target, ":")
	if !ok || name == "" || dest == "" {
		return "", "", fmt.Errorf("invalid target %q, expected <container>:<dest>", target)
	}
	return name, dest, nil
}

func runCp(ctx context.Context, orch in.Orchestrator, src, name, dest string, overwrite bool, w io.Writer) error {
	c, err := orch.FindContainer(ctx, name)
	if err != nil {
		return fmt.Errorf("container %s: %w", name, err)
	}

	copied, err := orch.CopyToContainer(ctx, c.Handle(), src, dest, overwrite)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	cliSuccess(w, "copied %s to %s:%s", src, name, copied)
	return nil
}
