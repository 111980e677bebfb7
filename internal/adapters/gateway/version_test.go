package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/litebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionClientFetchesVersion(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"version":[2,3000,1023223821]}`))
	}))
	t.Cleanup(server.Close)

	client := &VersionClient{URL: server.URL}
	version, err := client.LatestVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ProtocolVersion{2, 3000, 1023223821}, version)
}

func TestVersionClientFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "server error", handler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{name: "malformed body", handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"version":`))
		}},
		{name: "wrong arity", handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"version":[2,3000]}`))
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			t.Cleanup(server.Close)

			client := &VersionClient{URL: server.URL, Fallback: domain.ProtocolVersion{1, 2, 3}}
			version, err := client.LatestVersion(context.Background())
			require.NoError(t, err)
			assert.Equal(t, domain.ProtocolVersion{1, 2, 3}, version)
		})
	}
}

func TestVersionClientDefaultFallbackWithoutURL(t *testing.T) {
	t.Parallel()

	version, err := (&VersionClient{}).LatestVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, version)
}

func TestVersionClientReturnsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&VersionClient{URL: "http://127.0.0.1:1"}).LatestVersion(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
