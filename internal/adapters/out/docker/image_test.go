package docker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docker/docker/api/types/filters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockenv/internal/domain"
)

func TestRuntime_ImageExists(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantRef   string
		response  string
		wantFound bool
	}{
		{name: "tagged and present", ref: "mcr.microsoft.com/mssql/server:2019-latest", wantRef: "mcr.microsoft.com/mssql/server:2019-latest", response: `[{"Id":"sha256:aaa","RepoTags":["mcr.microsoft.com/mssql/server:2019-latest"]}]`, wantFound: true},
		{name: "untagged means latest", ref: "nginx", wantRef: "nginx:latest", response: `[{"Id":"sha256:bbb","RepoTags":["nginx:latest"]}]`, wantFound: true},
		{name: "absent", ref: "redis:7", wantRef: "redis:7", response: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1.41/images/json", r.URL.Path)

				args, err := filters.FromJSON(r.URL.Query().Get("filters"))
				require.NoError(t, err)
				assert.Equal(t, []string{tt.wantRef}, args.Get("reference"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			runtime := newRuntimeForHTTPServer(t, server)
			found, err := runtime.ImageExists(context.Background(), tt.ref)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestRuntime_ImageExists_InvalidReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)

	_, err := runtime.ImageExists(context.Background(), "Not A Valid/Ref")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = runtime.PullImage(context.Background(), "UPPER/Case")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRuntime_PullImage(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/images/create", r.URL.Path)
		assert.Equal(t, "nginx", r.URL.Query().Get("fromImage"))
		assert.Equal(t, "1.27", r.URL.Query().Get("tag"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"Pulling from library/nginx","id":"1.27"}
{"status":"Pull complete","id":"a1b2c3"}
{"status":"Status: Downloaded newer image for nginx:1.27"}
`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	err := runtime.PullImage(context.Background(), "nginx:1.27")

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRuntime_PullImage_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
		wantMsg  string
	}{
		{
			name:     "error inside the stream",
			status:   http.StatusOK,
			body:     `{"status":"Pulling from library/nginx"}` + "\n" + `{"errorDetail":{"message":"manifest unknown"},"error":"manifest unknown"}` + "\n",
			wantKind: domain.ErrEngine,
			wantMsg:  "manifest unknown",
		},
		{
			name:     "unknown repository",
			status:   http.StatusNotFound,
			body:     `{"message":"pull access denied for nosuch/image"}`,
			wantKind: domain.ErrNotFound,
			wantMsg:  "pull access denied",
		},
		{
			name:     "truncated stream",
			status:   http.StatusOK,
			body:     `{"status":"Pulling`,
			wantKind: domain.ErrEngine,
			wantMsg:  "failed to read pull response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			runtime := newRuntimeForHTTPServer(t, server)
			err := runtime.PullImage(context.Background(), "nosuch/image:1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}
