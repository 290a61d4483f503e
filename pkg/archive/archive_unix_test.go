//go:build unix

package archive

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NamedPipe(t *testing.T) {
	fifo := filepath.Join(t.TempDir(), "seed.pipe")
	require.NoError(t, syscall.Mkfifo(fifo, 0o600))

	a, err := Build(fifo)

	require.Error(t, err)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "seed.pipe")
}

func TestBuild_DirectorySkipsNamedPipe(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "init.sql"), "CREATE DATABASE app;")
	require.NoError(t, syscall.Mkfifo(filepath.Join(dir, "seed.pipe"), 0o600))

	a, err := Build(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, map[string]string{"init.sql": "CREATE DATABASE app;"}, readAll(t, a))
}
