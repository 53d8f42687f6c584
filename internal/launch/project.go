package launch

import (
	"context"

	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// EnsureDefaultProject resolves the account's default project, creating it
// when absent. This is the cleanup-workflow variant of project resolution;
// the launch pipeline never creates projects and fails instead.
func EnsureDefaultProject(ctx context.Context, client atmo.Client, username string) (*atmo.Project, error) {
	project, err := resolveProject(ctx, client, username, true)
	if err != nil {
		return nil, &ResolutionError{Username: username, Lookup: LookupProject, Err: err}
	}
	return project, nil
}
