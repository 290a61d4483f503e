package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/dockenv/internal/app"
	"github.com/bnema/dockenv/internal/boundaries/in"
	"github.com/bnema/dockenv/internal/domain"
	"github.com/bnema/dockenv/internal/manifest"
)

const defaultManifest = "dockenv.env.yaml"

var manifestFs = afero.NewOsFs()

// confirm asks a yes/no question on the terminal. Tests replace it.
var confirm = func(message string) (bool, error) {
	ok := false
	err := survey.AskOne(&survey.Confirm{Message: message}, &ok)
	return ok, err
}

func newUpCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create and start an environment",
		Long: `Creates the network, volumes and containers described in the manifest,
starts them, then runs each container's copy and exec steps.

Examples:
  dockenv up -f mssql.yaml
  dockenv up -f mssql.yaml --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := manifest.Load(manifestFs, file)
			if err != nil {
				return err
			}
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				return runUp(ctx, k.Environments(), env, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultManifest, "Environment manifest")

	return cmd
}

func runUp(ctx context.Context, svc in.EnvironmentService, env *domain.Environment, w io.Writer) error {
	report, err := svc.Up(ctx, env)
	if report != nil {
		if report.Network.Name != "" {
			cliInfo(w, "network %s (%s)", report.Network.Name, shortID(report.Network.ID))
		}
		for _, ref := range report.Pulled {
			cliInfo(w, "pulled %s", ref)
		}
		for _, c := range report.Containers {
			line := fmt.Sprintf("%s %s", c.Handle.Name, c.Start)
			if c.Start == domain.StartFailed {
				cliWarning(w, "%s", line)
				continue
			}
			cliSuccess(w, "%s", line)
			for _, p := range c.Copied {
				cliWriteLine(w, "  copied "+p)
			}
			if n := len(c.Execs); n > 0 {
				cliWriteLine(w, fmt.Sprintf("  ran %d command(s)", n))
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to bring up %s: %w", env.Name, err)
	}
	cliSuccess(w, "environment %s is up", env.Name)
	return nil
}

func newDownCmd(opts *rootOptions) *cobra.Command {
	var (
		file    string
		volumes bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Stop and remove an environment",
		Long: `Stops and removes the manifest's containers. With --volumes the declared
volumes are deleted too, which asks for confirmation unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := manifest.Load(manifestFs, file)
			if err != nil {
				return err
			}
			if volumes && !yes && len(env.Volumes) > 0 {
				ok, err := confirm(fmt.Sprintf("Delete volumes %s?", strings.Join(env.Volumes, ", ")))
				if err != nil {
					return err
				}
				if !ok {
					cliWriteLine(cmd.OutOrStdout(), "The command has been cancelled.")
					return nil
				}
			}
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				return runDown(ctx, k.Environments(), env, volumes, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultManifest, "Environment manifest")
	cmd.Flags().BoolVar(&volumes, "volumes", false, "Also delete the declared volumes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func runDown(ctx context.Context, svc in.EnvironmentService, env *domain.Environment, removeVolumes bool, w io.Writer) error {
	report, err := svc.Down(ctx, env, removeVolumes)
	if report != nil {
		for _, f := range report.Failures {
			cliError(w, "%s %s: %v", f.Step, f.Target, f.Err)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to tear down %s: %w", env.Name, err)
	}
	if report != nil && !report.OK() {
		cliWarning(w, "environment %s removed with %d failure(s)", env.Name, len(report.Failures))
		return nil
	}
	cliSuccess(w, "environment %s removed", env.Name)
	return nil
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of an environment's containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := manifest.Load(manifestFs, file)
			if err != nil {
				return err
			}
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				return runStatus(ctx, k.Environments(), env, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultManifest, "Environment manifest")

	return cmd
}

func runStatus(ctx context.Context, svc in.EnvironmentService, env *domain.Environment, w io.Writer) error {
	states, err := svc.Status(ctx, env)
	if err != nil {
		return fmt.Errorf("failed to get status of %s: %w", env.Name, err)
	}

	rows := make([][]string, 0, len(states))
	for _, s := range states {
		if !s.Present {
			rows = append(rows, []string{s.Name, "-", "-", "absent"})
			continue
		}
		status := s.Status
		if status == "" {
			status = s.State
		}
		rows = append(rows, []string{s.Name, shortID(s.ID), s.Image, status})
	}

	cliWriteLine(w, renderTable([]string{"CONTAINER", "ID", "IMAGE", "STATUS"}, rows))
	return nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
