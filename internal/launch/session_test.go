package launch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// rewriteTransport redirects every request to the test server so the
// provider's fixed target URLs can be exercised against httptest.
type rewriteTransport struct {
	base string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	u, err := url.Parse(t.base)
	if err != nil {
		return nil, err
	}
	req.URL.Scheme = u.Scheme
	req.URL.Host = u.Host
	return http.DefaultTransport.RoundTrip(req)
}

func sessionProviderFor(srv *httptest.Server, mode launch.AuthMode) *launch.TokenSessionProvider {
	return &launch.TokenSessionProvider{
		Target:     atmo.TargetCyverse,
		AuthMode:   mode,
		HTTPClient: &http.Client{Transport: rewriteTransport{base: srv.URL}},
	}
}

func TestAuthenticatePasswordMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "secret", password)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	}))
	defer srv.Close()

	client, err := sessionProviderFor(srv, launch.AuthModePassword).
		Authenticate(context.Background(), launch.Credential{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestAuthenticateRejectedPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := sessionProviderFor(srv, launch.AuthModePassword).
		Authenticate(context.Background(), launch.Credential{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials for alice")
}

func TestAuthenticateTokenMode(t *testing.T) {
	t.Parallel()

	provider := launch.NewSessionProvider(atmo.TargetCyverse, launch.AuthModeToken)

	client, err := provider.Authenticate(context.Background(), launch.Credential{Username: "alice", Token: "tok-123"})
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = provider.Authenticate(context.Background(), launch.Credential{Username: "alice"})
	assert.Error(t, err)
}
