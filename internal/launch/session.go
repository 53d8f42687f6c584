package launch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// SessionProvider exchanges a credential for an authenticated control-plane
// session. Each pipeline authenticates independently; the returned client
// is owned by that pipeline alone.
type SessionProvider interface {
	Authenticate(ctx context.Context, cred Credential) (atmo.Client, error)
}

// TokenSessionProvider authenticates against a fixed target. The target is
// threaded in explicitly at construction, never read from ambient state.
type TokenSessionProvider struct {
	Target     atmo.Target
	AuthMode   AuthMode
	HTTPClient *http.Client

	// ClientOptions are applied to every session client (test hooks).
	ClientOptions []atmo.ClientOption
}

// NewSessionProvider creates a provider for the given target and auth mode.
func NewSessionProvider(target atmo.Target, mode AuthMode) *TokenSessionProvider {
	return &TokenSessionProvider{
		Target:   target,
		AuthMode: mode,
	}
}

// Authenticate implements SessionProvider. In password mode the credential
// is exchanged for an access token at the target's token endpoint; in token
// mode the preissued token is used directly.
func (p *TokenSessionProvider) Authenticate(ctx context.Context, cred Credential) (atmo.Client, error) {
	token := cred.Token
	if p.AuthMode == AuthModePassword {
		var err error
		token, err = atmo.Login(ctx, p.HTTPClient, p.Target.TokenURL(), cred.Username, cred.Password)
		if atmo.IsUnauthorized(err) {
			return nil, fmt.Errorf("invalid credentials for %s: %w", cred.Username, err)
		}
		if err != nil {
			return nil, err
		}
	}
	if token == "" {
		return nil, fmt.Errorf("no access token for %s", cred.Username)
	}

	opts := p.ClientOptions
	if p.HTTPClient != nil {
		opts = append([]atmo.ClientOption{atmo.WithHTTPClient(p.HTTPClient)}, opts...)
	}
	return atmo.NewClient(p.Target, token, opts...), nil
}
