// Package allocation updates allocation-unit limits for accounts.
//
// This is a single-pass administrative workflow: for each account, take
// the user's first allocation source and patch its allowed compute units.
package allocation

import (
	"context"
	"fmt"
	"log"

	"github.com/imamik/atmoctl/internal/launch"
)

// Result summarizes one account's allocation update.
type Result struct {
	Username string
	UUID     string
	Previous int
	Updated  int
	Err      error
}

// Updater patches allocation sources for a set of accounts.
type Updater struct {
	Sessions launch.SessionProvider
}

// SetComputeAllowed sets each account's first allocation source to the
// given compute-unit limit. One result per account; failures are recorded
// and do not stop later accounts.
func (u *Updater) SetComputeAllowed(ctx context.Context, creds []launch.Credential, computeAllowed int) []Result {
	results := make([]Result, 0, len(creds))
	for _, cred := range creds {
		result := u.updateAccount(ctx, cred, computeAllowed)
		if result.Err != nil {
			log.Printf("[%s] allocation update failed: %v", cred.Username, result.Err)
		} else {
			log.Printf("[%s] compute allowed: %d -> %d", cred.Username, result.Previous, result.Updated)
		}
		results = append(results, result)
	}
	return results
}

func (u *Updater) updateAccount(ctx context.Context, cred launch.Credential, computeAllowed int) Result {
	result := Result{Username: cred.Username}

	client, err := u.Sessions.Authenticate(ctx, cred)
	if err != nil {
		result.Err = &launch.AuthError{Username: cred.Username, Err: err}
		return result
	}

	sources, err := client.ListAllocationSources(ctx)
	if err != nil {
		result.Err = fmt.Errorf("list allocation sources: %w", err)
		return result
	}

	if len(sources) == 0 {
		result.Err = fmt.Errorf("no allocation sources for %s", cred.Username)
		return result
	}

	// The session is account-scoped, so the listing only contains the
	// user's sources; the first one is updated regardless of its name.
	result.UUID = sources[0].UUID
	result.Previous = sources[0].ComputeAllowed

	updated, err := client.UpdateAllocationSource(ctx, result.UUID, computeAllowed)
	if err != nil {
		result.Err = fmt.Errorf("update allocation source %s: %w", result.UUID, err)
		return result
	}
	if updated.UUID != result.UUID || updated.ComputeAllowed != computeAllowed {
		result.Err = fmt.Errorf("allocation source %s did not echo compute_allowed=%d", result.UUID, computeAllowed)
		return result
	}

	result.Updated = updated.ComputeAllowed
	return result
}
