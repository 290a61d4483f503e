//go:build unix

package orchestrator

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockenv/internal/boundaries/out/mocks"
	"github.com/bnema/dockenv/internal/domain"
	"github.com/bnema/dockenv/internal/testutils"
	"github.com/bnema/dockenv/pkg/archive"
)

func TestService_CopyToContainer_NamedPipe(t *testing.T) {
	// No expectations: the engine must not be reached.
	engine := mocks.NewMockContainerEngine(t)
	svc := newTestService(engine, Config{})

	fifo := filepath.Join(t.TempDir(), "seed.pipe")
	require.NoError(t, syscall.Mkfifo(fifo, 0o600))

	copied, err := svc.CopyToContainer(testutils.TestContext(t), domain.ContainerHandle{ID: "abc", Name: "db"}, fifo, "/data", true)

	require.Error(t, err)
	assert.Empty(t, copied)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorIs(t, err, archive.ErrUnsupported)
}
