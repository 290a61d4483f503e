package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockenv/internal/boundaries/out/mocks"
	"github.com/bnema/dockenv/internal/domain"
	"github.com/bnema/dockenv/internal/testutils"
)

const mssqlImage = "mcr.microsoft.com/mssql/server:2019-latest"

func TestService_EnsureImage(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(engine *mocks.MockContainerEngine)
		wantPulled bool
		wantErr    error
	}{
		{
			name: "present locally",
			setup: func(engine *mocks.MockContainerEngine) {
				engine.EXPECT().ImageExists(mock.Anything, mssqlImage).Return(true, nil)
			},
		},
		{
			name: "absent is pulled",
			setup: func(engine *mocks.MockContainerEngine) {
				engine.EXPECT().ImageExists(mock.Anything, mssqlImage).Return(false, nil)
				engine.EXPECT().PullImage(mock.Anything, mssqlImage).Return(nil)
			},
			wantPulled: true,
		},
		{
			name: "pull fails",
			setup: func(engine *mocks.MockContainerEngine) {
				engine.EXPECT().ImageExists(mock.Anything, mssqlImage).Return(false, nil)
				engine.EXPECT().PullImage(mock.Anything, mssqlImage).Return(engineErr(domain.ErrNotFound, "pull access denied"))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "lookup fails",
			setup: func(engine *mocks.MockContainerEngine) {
				engine.EXPECT().ImageExists(mock.Anything, mssqlImage).Return(false, engineErr(domain.ErrEngine, "daemon gone"))
			},
			wantErr: domain.ErrEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := mocks.NewMockContainerEngine(t)
			tt.setup(engine)
			svc := newTestService(engine, Config{})

			pulled, err := svc.EnsureImage(testutils.TestContext(t), mssqlImage)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), mssqlImage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPulled, pulled)
		})
	}
}

func TestService_EnsureImage_EmptyReference(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := newTestService(engine, Config{})

	_, err := svc.EnsureImage(testutils.TestContext(t), "")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestService_EnsureImage_ConcurrentCallsShareOnePull(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	engine.EXPECT().ImageExists(mock.Anything, mssqlImage).Return(false, nil).Once()
	engine.EXPECT().PullImage(mock.Anything, mssqlImage).
		Run(func(_ context.Context, _ string) { time.Sleep(50 * time.Millisecond) }).
		Return(nil).Once()
	svc := newTestService(engine, Config{})
	ctx := testutils.TestContext(t)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.EnsureImage(ctx, mssqlImage)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
