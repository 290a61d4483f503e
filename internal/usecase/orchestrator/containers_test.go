package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockenv/internal/boundaries/out"
	"github.com/bnema/dockenv/internal/boundaries/out/mocks"
	"github.com/bnema/dockenv/internal/domain"
	"github.com/bnema/dockenv/internal/testutils"
)

func newTestService(engine out.ContainerEngine, cfg Config) *Service {
	if cfg.SessionID == "" {
		cfg.SessionID = "session-1"
	}
	return NewService(engine, log.New(io.Discard), cfg)
}

func engineErr(kind error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, kind, errors.New("engine said no"))
}

func mssqlSpec() *domain.ContainerSpec {
	return &domain.ContainerSpec{
		Name:          "test-mssql-container",
		Image:         "mcr.microsoft.com/mssql/server:2019-latest",
		ContainerPort: 1433,
		HostPort:      1433,
		Env:           []string{"ACCEPT_EULA=Y"},
		Volume:        domain.VolumeBinding{Source: "test-mssql-volume", Target: "/var/opt/mssql"},
		Network:       "test-network",
	}
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(testutils.NewFakeEngine(), nil, Config{})

	assert.Equal(t, domain.DefaultStopGrace, svc.config.StopGrace)
	assert.NotEmpty(t, svc.SessionID())
	assert.NotEqual(t, svc.SessionID(), NewService(testutils.NewFakeEngine(), nil, Config{}).SessionID())
}

func TestService_EnsureContainer_CreatesOnce(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newTestService(engine, Config{})

	first, err := svc.EnsureContainer(ctx, mssqlSpec())
	require.NoError(t, err)
	second, err := svc.EnsureContainer(ctx, mssqlSpec())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "test-mssql-container", first.Name)
	assert.Equal(t, 1, engine.Calls("CreateContainer"))
	assert.Equal(t, 1, engine.Calls("CreateNetwork"))

	created := engine.Container("test-mssql-container")
	require.NotNil(t, created)
	assert.Equal(t, "true", created.Labels[domain.LabelManaged])
	assert.Equal(t, "session-1", created.Labels[domain.LabelSession])
}

func TestService_EnsureContainer_ExistingIsReturnedUnchanged(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := mocks.NewMockContainerEngine(t)
	svc := newTestService(engine, Config{})

	engine.EXPECT().ListContainers(mock.Anything, true).Return([]*domain.Container{
		{ID: "other", Name: "web", Names: []string{"web"}},
		{ID: "abc123", Name: "test-mssql-container", Names: []string{"test-mssql-container"}, State: "exited"},
	}, nil)

	handle, err := svc.EnsureContainer(ctx, mssqlSpec())

	require.NoError(t, err)
	assert.Equal(t, domain.ContainerHandle{ID: "abc123", Name: "test-mssql-container"}, handle)
}

func TestService_EnsureContainer_SpecIsPassedThrough(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := mocks.NewMockContainerEngine(t)
	svc := newTestService(engine, Config{})

	spec := mssqlSpec()
	spec.Network = ""
	spec.Labels = map[string]string{"team": "qa", domain.LabelManaged: "nope"}

	engine.EXPECT().ListContainers(mock.Anything, true).Return(nil, nil)
	engine.EXPECT().CreateContainer(mock.Anything, mock.AnythingOfType("*domain.ContainerSpec")).
		RunAndReturn(func(_ context.Context, got *domain.ContainerSpec) (string, error) {
			assert.Equal(t, spec.Image, got.Image)
			assert.Equal(t, spec.Env, got.Env)
			assert.Equal(t, 1433, got.ContainerPort)
			assert.Equal(t, spec.Volume, got.Volume)
			assert.Equal(t, "qa", got.Labels["team"])
			assert.Equal(t, "true", got.Labels[domain.LabelManaged])
			return "new-id", nil
		})

	handle, err := svc.EnsureContainer(ctx, spec)

	require.NoError(t, err)
	assert.Equal(t, "new-id", handle.ID)
	assert.Equal(t, "nope", spec.Labels[domain.LabelManaged], "caller spec must not be mutated")
}

func TestService_EnsureContainer_ConflictReturnsExisting(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := mocks.NewMockContainerEngine(t)
	svc := newTestService(engine, Config{})

	spec := mssqlSpec()
	spec.Network = ""

	engine.EXPECT().ListContainers(mock.Anything, true).Return(nil, nil).Once()
	engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		Return("", engineErr(domain.ErrConflict, "failed to create container")).Once()
	engine.EXPECT().ListContainers(mock.Anything, true).Return([]*domain.Container{
		{ID: "raced-id", Name: "test-mssql-container", Names: []string{"test-mssql-container"}},
	}, nil).Once()

	handle, err := svc.EnsureContainer(ctx, spec)

	require.NoError(t, err)
	assert.Equal(t, "raced-id", handle.ID)
}

func TestService_EnsureContainer_ConflictWithoutContainerFails(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := mocks.NewMockContainerEngine(t)
	svc := newTestService(engine, Config{})

	spec := mssqlSpec()
	spec.Network = ""

	engine.EXPECT().ListContainers(mock.Anything, true).Return(nil, nil).Twice()
	engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		Return("", engineErr(domain.ErrConflict, "failed to create container")).Once()

	_, err := svc.EnsureContainer(ctx, spec)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestService_EnsureContainer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		spec    *domain.ContainerSpec
		setup   func(engine *mocks.MockContainerEngine)
		wantErr error
	}{
		{
			name:    "nil spec",
			spec:    nil,
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "missing name",
			spec:    &domain.ContainerSpec{Image: "nginx"},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "missing image",
			spec:    &domain.ContainerSpec{Name: "web"},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "list fails",
			spec: &domain.ContainerSpec{Name: "web", Image: "nginx"},
			setup: func(engine *mocks.MockContainerEngine) {
				engine.EXPECT().ListContainers(mock.Anything, true).Return(nil, engineErr(domain.ErrEngine, "failed to list containers"))
			},
			wantErr: domain.ErrEngine,
		},
		{
			name: "image not found",
			spec: &domain.ContainerSpec{Name: "web", Image: "nope:latest"},
			setup: func(engine *mocks.MockContainerEngine) {
				engine.EXPECT().ListContainers(mock.Anything, true).Return(nil, nil)
				engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("", engineErr(domain.ErrNotFound, "failed to create container"))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "network create fails",
			spec: &domain.ContainerSpec{Name: "web", Image: "nginx", Network: "net1"},
			setup: func(engine *mocks.MockContainerEngine) {
				engine.EXPECT().ListContainers(mock.Anything, true).Return(nil, nil)
				engine.EXPECT().ListNetworks(mock.Anything).Return(nil, nil)
				engine.EXPECT().CreateNetwork(mock.Anything, "net1", mock.Anything).Return("", engineErr(domain.ErrEngine, "failed to create network"))
			},
			wantErr: domain.ErrEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := mocks.NewMockContainerEngine(t)
			if tt.setup != nil {
				tt.setup(engine)
			}
			svc := newTestService(engine, Config{})

			handle, err := svc.EnsureContainer(testutils.TestContext(t), tt.spec)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, handle.ID)
		})
	}
}

func TestService_EnsureContainer_ConcurrentCallsCreateOnce(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.CreateDelay = 20 * time.Millisecond
	svc := newTestService(engine, Config{})

	const callers = 8
	handles := make([]domain.ContainerHandle, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = svc.EnsureContainer(ctx, mssqlSpec())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, handles[0], handles[i])
	}
	assert.Equal(t, 1, engine.Calls("CreateContainer"))
}

func TestService_FindContainer(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	id := engine.AddContainer("db", "postgres:16", false)
	svc := newTestService(engine, Config{})

	found, err := svc.FindContainer(ctx, "/db")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "exited", found.State)

	_, err = svc.FindContainer(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.FindContainer(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestService_Start(t *testing.T) {
	handle := domain.ContainerHandle{ID: "abc123", Name: "web"}

	tests := []struct {
		name       string
		strict     bool
		started    bool
		engineErr  error
		wantResult domain.StartResult
		wantErr    error
	}{
		{name: "started", started: true, wantResult: domain.Started},
		{name: "already running", started: false, wantResult: domain.AlreadyRunning},
		{name: "already running in strict mode", strict: true, started: false, wantResult: domain.AlreadyRunning},
		{name: "failure is logged", engineErr: engineErr(domain.ErrEngine, "failed to start container"), wantResult: domain.StartFailed},
		{name: "failure in strict mode", strict: true, engineErr: engineErr(domain.ErrEngine, "failed to start container"), wantResult: domain.StartFailed, wantErr: domain.ErrStartFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := mocks.NewMockContainerEngine(t)
			engine.EXPECT().StartContainer(mock.Anything, "abc123").Return(tt.started, tt.engineErr)
			svc := newTestService(engine, Config{StrictStart: tt.strict})

			result, err := svc.Start(testutils.TestContext(t), handle)

			assert.Equal(t, tt.wantResult, result)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrEngine)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Stop(t *testing.T) {
	handle := domain.ContainerHandle{ID: "abc123", Name: "web"}

	t.Run("uses configured grace", func(t *testing.T) {
		engine := mocks.NewMockContainerEngine(t)
		engine.EXPECT().StopContainer(mock.Anything, "abc123", 3*time.Second).Return(nil)
		svc := newTestService(engine, Config{StopGrace: 3 * time.Second})

		assert.NoError(t, svc.Stop(testutils.TestContext(t), handle))
	})

	t.Run("default grace is ten seconds", func(t *testing.T) {
		engine := mocks.NewMockContainerEngine(t)
		engine.EXPECT().StopContainer(mock.Anything, "abc123", 10*time.Second).Return(nil)
		svc := newTestService(engine, Config{})

		assert.NoError(t, svc.Stop(testutils.TestContext(t), handle))
	})

	t.Run("failure is suppressed", func(t *testing.T) {
		engine := mocks.NewMockContainerEngine(t)
		engine.EXPECT().StopContainer(mock.Anything, "abc123", mock.Anything).Return(engineErr(domain.ErrEngine, "failed to stop container"))
		svc := newTestService(engine, Config{})

		assert.NoError(t, svc.Stop(testutils.TestContext(t), handle))
	})

	t.Run("failure in strict mode", func(t *testing.T) {
		engine := mocks.NewMockContainerEngine(t)
		engine.EXPECT().StopContainer(mock.Anything, "abc123", mock.Anything).Return(engineErr(domain.ErrNotFound, "failed to stop container"))
		svc := newTestService(engine, Config{StrictTeardown: true})

		err := svc.Stop(testutils.TestContext(t), handle)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	handle := domain.ContainerHandle{ID: "abc123", Name: "web"}
	opts := domain.RemoveOptions{RemoveVolumes: true, Force: true}

	t.Run("passes options", func(t *testing.T) {
		engine := mocks.NewMockContainerEngine(t)
		engine.EXPECT().RemoveContainer(mock.Anything, "abc123", opts).Return(nil)
		svc := newTestService(engine, Config{})

		assert.NoError(t, svc.Remove(testutils.TestContext(t), handle, opts))
	})

	t.Run("failure is suppressed", func(t *testing.T) {
		engine := mocks.NewMockContainerEngine(t)
		engine.EXPECT().RemoveContainer(mock.Anything, "abc123", opts).Return(engineErr(domain.ErrConflict, "failed to remove container"))
		svc := newTestService(engine, Config{})

		assert.NoError(t, svc.Remove(testutils.TestContext(t), handle, opts))
	})

	t.Run("failure in strict mode", func(t *testing.T) {
		engine := mocks.NewMockContainerEngine(t)
		engine.EXPECT().RemoveContainer(mock.Anything, "abc123", opts).Return(engineErr(domain.ErrConflict, "failed to remove container"))
		svc := newTestService(engine, Config{StrictTeardown: true})

		err := svc.Remove(testutils.TestContext(t), handle, opts)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
