package testutils

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}

// CreateManifestFs creates an in-memory filesystem holding files keyed by path.
func CreateManifestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		err := afero.WriteFile(fs, path, []byte(content), 0644)
		require.NoError(t, err)
	}
	return fs
}

// AssertEventuallyTrue retries a condition until it's true or times out
func AssertEventuallyTrue(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Condition never became true: %s", message)
}

// SampleManifest returns a manifest fixture by name.
func SampleManifest(name string) string {
	switch name {
	case "mssql.yaml":
		return `network: test-network
volumes: [test-mssql-volume]
containers:
  - name: test-mssql-container
    image: mcr.microsoft.com/mssql/server:2019-latest
    port: {container: 1433, host: 1433}
    env: ["ACCEPT_EULA=Y"]
    env_file: mssql.env
    volume: {source: test-mssql-volume, target: /var/opt/mssql}
    copy:
      - {source: ./seed.sql, destination: /var/opt/mssql/, overwrite: true}
    exec:
      - {cmd: ["/opt/mssql-tools/bin/sqlcmd", "-i", "{{copied}}"], user: root}
`
	case "minimal.yaml":
		return `containers:
  - name: web
    image: nginx:latest
`
	case "invalid.yaml":
		return `containers:
  - name: [web
`
	default:
		return ""
	}
}
