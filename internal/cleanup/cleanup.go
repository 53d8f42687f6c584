// Package cleanup tears down all resources held by one or more accounts.
//
// Unlike the launch orchestrator this is a single-pass sequential
// workflow: instances first, then volumes, one account at a time.
// Per-account failures are recorded and do not stop later accounts.
package cleanup

import (
	"context"
	"fmt"
	"log"

	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/platform/atmo"
	"github.com/imamik/atmoctl/internal/util/retry"
)

// Result summarizes one account's cleanup.
type Result struct {
	Username         string
	InstancesDeleted int
	VolumesDeleted   int
	Err              error
}

// Cleaner deletes all instances and volumes for a set of accounts.
type Cleaner struct {
	Sessions launch.SessionProvider
}

// Run cleans each account in order and returns one result per account.
func (c *Cleaner) Run(ctx context.Context, creds []launch.Credential) []Result {
	results := make([]Result, 0, len(creds))
	for _, cred := range creds {
		result := c.cleanAccount(ctx, cred)
		if result.Err != nil {
			log.Printf("[%s] cleanup failed: %v", cred.Username, result.Err)
		} else {
			log.Printf("[%s] deleted %d instances, %d volumes",
				cred.Username, result.InstancesDeleted, result.VolumesDeleted)
		}
		results = append(results, result)
	}
	return results
}

func (c *Cleaner) cleanAccount(ctx context.Context, cred launch.Credential) Result {
	result := Result{Username: cred.Username}

	client, err := c.Sessions.Authenticate(ctx, cred)
	if err != nil {
		result.Err = &launch.AuthError{Username: cred.Username, Err: err}
		return result
	}

	// The default project is recreated if missing so the account is left
	// in a usable state after teardown.
	if _, err := launch.EnsureDefaultProject(ctx, client, cred.Username); err != nil {
		result.Err = err
		return result
	}

	instances, err := client.ListInstances(ctx)
	if err != nil {
		result.Err = fmt.Errorf("list instances: %w", err)
		return result
	}
	for i := range instances {
		if err := deleteWithRetry(ctx, func() error {
			return client.DeleteInstance(ctx, &instances[i])
		}); err != nil {
			result.Err = fmt.Errorf("delete instance %s: %w", instances[i].UUID, err)
			return result
		}
		result.InstancesDeleted++
	}

	volumes, err := client.ListVolumes(ctx)
	if err != nil {
		result.Err = fmt.Errorf("list volumes: %w", err)
		return result
	}
	for i := range volumes {
		if err := deleteWithRetry(ctx, func() error {
			return client.DeleteVolume(ctx, &volumes[i])
		}); err != nil {
			result.Err = fmt.Errorf("delete volume %s: %w", volumes[i].UUID, err)
			return result
		}
		result.VolumesDeleted++
	}

	return result
}

// deleteWithRetry retries transient failures. Deleting an already-gone
// resource counts as success.
func deleteWithRetry(ctx context.Context, deleteFn func() error) error {
	return retry.WithExponentialBackoff(ctx, func() error {
		err := deleteFn()
		switch {
		case err == nil, atmo.IsNotFound(err):
			return nil
		case atmo.IsRetryable(err):
			return err
		default:
			return retry.Fatal(err)
		}
	}, retry.WithMaxRetries(3))
}
