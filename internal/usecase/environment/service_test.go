package environment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/docker/docker/pkg/stdcopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockenv/internal/domain"
	"github.com/bnema/dockenv/internal/testutils"
	"github.com/bnema/dockenv/internal/usecase/orchestrator"
)

func newTestServices(engine *testutils.FakeEngine, cfg orchestrator.Config) *Service {
	logger := testutils.DiscardLogger()
	return NewService(orchestrator.NewService(engine, logger, cfg), logger)
}

func mssqlEnvironment(t *testing.T) *domain.Environment {
	t.Helper()
	seed := filepath.Join(t.TempDir(), "seed.sql")
	require.NoError(t, os.WriteFile(seed, []byte("CREATE DATABASE app;"), 0o644))

	return &domain.Environment{
		Name:    "mssql",
		Network: "test-network",
		Volumes: []string{"test-mssql-volume"},
		Containers: []domain.EnvContainer{
			{
				Spec: domain.ContainerSpec{
					Name:          "test-mssql-container",
					Image:         "mcr.microsoft.com/mssql/server:2019-latest",
					ContainerPort: 1433,
					HostPort:      1433,
					Volume:        domain.VolumeBinding{Source: "test-mssql-volume", Target: "/var/opt/mssql"},
					Network:       "test-network",
				},
				Copies: []domain.CopyStep{{Source: seed, Destination: "/var/opt/mssql/", Overwrite: true}},
				Execs:  []domain.ExecStep{{Cmd: []string{"sqlcmd", "-i", domain.CopiedPlaceholder}, User: "root"}},
			},
			{
				Spec: domain.ContainerSpec{Name: "test-web", Image: "nginx:latest", Network: "test-network"},
			},
		},
	}
}

func TestService_Up(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	var gotCmd []string
	engine.OnExec = func(_ string, cfg domain.ExecConfig) testutils.ExecScript {
		gotCmd = cfg.Cmd
		return testutils.ExecScript{Frames: []testutils.Frame{{Stream: stdcopy.Stdout, Data: "done"}}}
	}
	svc := newTestServices(engine, orchestrator.Config{})

	report, err := svc.Up(ctx, mssqlEnvironment(t))

	require.NoError(t, err)
	assert.Equal(t, "test-network", report.Network.Name)
	assert.True(t, engine.HasVolume("test-mssql-volume"))
	require.Len(t, report.Containers, 2)

	db := report.Containers[0]
	assert.Equal(t, domain.Started, db.Start)
	assert.Equal(t, []string{"/var/opt/mssql/seed.sql"}, db.Copied)
	require.Len(t, db.Execs, 1)
	assert.Equal(t, "done", db.Execs[0].Stdout)
	assert.Equal(t, []string{"sqlcmd", "-i", "/var/opt/mssql/seed.sql"}, gotCmd)
	assert.True(t, engine.Running(db.Handle.ID))

	assert.Equal(t, 1, engine.Calls("CreateNetwork"))
	assert.Equal(t, 2, engine.Calls("CreateContainer"))
	assert.ElementsMatch(t, []string{"mcr.microsoft.com/mssql/server:2019-latest", "nginx:latest"}, report.Pulled)
}

func TestService_Up_PullsOnlyMissingImages(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.AddImage("nginx:latest")
	svc := newTestServices(engine, orchestrator.Config{})

	report, err := svc.Up(ctx, mssqlEnvironment(t))

	require.NoError(t, err)
	assert.Equal(t, []string{"mcr.microsoft.com/mssql/server:2019-latest"}, report.Pulled)
	assert.Equal(t, 1, engine.Calls("PullImage"))
	assert.True(t, engine.HasImage("mcr.microsoft.com/mssql/server:2019-latest"))
}

func TestService_Up_SharedImageIsPulledOnce(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newTestServices(engine, orchestrator.Config{})
	env := &domain.Environment{
		Name: "pair",
		Containers: []domain.EnvContainer{
			{Spec: domain.ContainerSpec{Name: "web-a", Image: "nginx:latest"}},
			{Spec: domain.ContainerSpec{Name: "web-b", Image: "nginx:latest"}},
		},
	}

	_, err := svc.Up(ctx, env)

	require.NoError(t, err)
	assert.Equal(t, 1, engine.Calls("PullImage"))
	assert.Equal(t, 2, engine.Calls("CreateContainer"))
}

func TestService_Up_PullFailureAborts(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.FailOn("PullImage", fmt.Errorf("pull access denied: %w", domain.ErrNotFound))
	svc := newTestServices(engine, orchestrator.Config{})

	report, err := svc.Up(ctx, mssqlEnvironment(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "pull image")
	assert.Empty(t, report.Containers)
	assert.Empty(t, report.Pulled)
	assert.Equal(t, 0, engine.Calls("CreateContainer"))
	assert.Equal(t, 0, engine.Calls("StartContainer"))
}

func TestService_Up_IsIdempotent(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newTestServices(engine, orchestrator.Config{})
	env := mssqlEnvironment(t)

	_, err := svc.Up(ctx, env)
	require.NoError(t, err)
	report, err := svc.Up(ctx, env)
	require.NoError(t, err)

	assert.Equal(t, domain.AlreadyRunning, report.Containers[0].Start)
	assert.Equal(t, 2, engine.Calls("CreateContainer"))
	assert.Equal(t, 1, engine.Calls("CreateNetwork"))
	assert.Equal(t, 1, engine.Calls("CreateVolume"))
}

func TestService_Up_ExecFailureAborts(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.OnExec = func(string, domain.ExecConfig) testutils.ExecScript {
		return testutils.ExecScript{Frames: []testutils.Frame{{Stream: stdcopy.Stderr, Data: "login failed"}}, ExitCode: 1}
	}
	svc := newTestServices(engine, orchestrator.Config{})

	report, err := svc.Up(ctx, mssqlEnvironment(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
	assert.Contains(t, err.Error(), "test-mssql-container")
	assert.Len(t, report.Containers, 1)
	assert.Equal(t, 1, engine.Calls("StartContainer"))
}

func TestService_Up_StartFailureSkipsSteps(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.FailOn("StartContainer", errors.New("port is already allocated"))
	svc := newTestServices(engine, orchestrator.Config{})

	report, err := svc.Up(ctx, mssqlEnvironment(t))

	require.NoError(t, err)
	require.Len(t, report.Containers, 2)
	assert.Equal(t, domain.StartFailed, report.Containers[0].Start)
	assert.Empty(t, report.Containers[0].Copied)
	assert.Zero(t, engine.Calls("CopyToContainer"))
}

func TestService_Up_StrictStartFailureAborts(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.FailOn("StartContainer", errors.New("port is already allocated"))
	svc := newTestServices(engine, orchestrator.Config{StrictStart: true})

	_, err := svc.Up(ctx, mssqlEnvironment(t))

	assert.ErrorIs(t, err, domain.ErrStartFailed)
}

func TestService_Up_EnsureFailure(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.FailOn("CreateVolume", errors.New("disk full"))
	svc := newTestServices(engine, orchestrator.Config{})

	_, err := svc.Up(ctx, mssqlEnvironment(t))

	require.Error(t, err)
	assert.Zero(t, engine.Calls("CreateContainer"))
}

func TestService_Down(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newTestServices(engine, orchestrator.Config{})
	env := mssqlEnvironment(t)

	_, err := svc.Up(ctx, env)
	require.NoError(t, err)

	report, err := svc.Down(ctx, env, false)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Nil(t, engine.Container("test-mssql-container"))
	assert.Nil(t, engine.Container("test-web"))
	assert.True(t, engine.HasVolume("test-mssql-volume"))

	report, err = svc.Down(ctx, env, true)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.False(t, engine.HasVolume("test-mssql-volume"))
}

func TestService_Status(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	id := engine.AddContainer("test-web", "nginx:latest", true)
	svc := newTestServices(engine, orchestrator.Config{})

	states, err := svc.Status(ctx, mssqlEnvironment(t))

	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, domain.ContainerState{Name: "test-mssql-container"}, states[0])
	assert.True(t, states[1].Present)
	assert.Equal(t, id, states[1].ID)
	assert.Equal(t, "running", states[1].State)
}

func TestService_Status_ListFailure(t *testing.T) {
	engine := testutils.NewFakeEngine()
	engine.FailOn("ListContainers", errors.New("daemon unavailable"))
	svc := newTestServices(engine, orchestrator.Config{})

	_, err := svc.Status(testutils.TestContext(t), mssqlEnvironment(t))

	assert.Error(t, err)
}
