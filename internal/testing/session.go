package testing

import (
	"context"
	"fmt"
	"sync"

	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// StubSessionProvider hands out preconfigured clients keyed by username.
// Unknown usernames fail with Err (or a per-username error from Errs).
type StubSessionProvider struct {
	mu      sync.Mutex
	Clients map[string]atmo.Client
	Errs    map[string]error
	Err     error

	// Authenticated records the usernames that requested a session.
	Authenticated []string
}

// Authenticate implements launch.SessionProvider.
func (s *StubSessionProvider) Authenticate(_ context.Context, cred launch.Credential) (atmo.Client, error) {
	s.mu.Lock()
	s.Authenticated = append(s.Authenticated, cred.Username)
	s.mu.Unlock()

	if err, ok := s.Errs[cred.Username]; ok {
		return nil, err
	}
	if client, ok := s.Clients[cred.Username]; ok {
		return client, nil
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, fmt.Errorf("no session configured for %s", cred.Username)
}
