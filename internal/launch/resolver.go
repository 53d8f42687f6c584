package launch

import (
	"context"
	"fmt"

	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// ResolveOptions adjusts resolver behavior per workflow.
type ResolveOptions struct {
	// CreateProject auto-creates the default project when no project
	// matches the username. The cleanup workflow sets this; launch never
	// does, and fails instead.
	CreateProject bool
}

// ResolveContext derives an AccountContext for one request against an
// authenticated session. Every lookup is first-match-by-name: the control
// plane does not guarantee listing order, so ties between duplicate names
// are broken by whatever order the listing returns.
//
// Resolution is a pure lookup with no side effects, except project
// auto-creation when opts.CreateProject is set. Re-resolving the same
// request against unchanged control-plane state yields the same context.
func ResolveContext(ctx context.Context, client atmo.Client, req LaunchRequest, opts ResolveOptions) (*AccountContext, error) {
	username := req.Credential.Username

	project, err := resolveProject(ctx, client, username, opts.CreateProject)
	if err != nil {
		return nil, &ResolutionError{Username: username, Lookup: LookupProject, Err: err}
	}

	allocSource, err := resolveAllocationSource(ctx, client, username, req.AllocationSource)
	if err != nil {
		return nil, &ResolutionError{Username: username, Lookup: LookupAllocationSource, Err: err}
	}

	identity, err := resolveIdentity(ctx, client, username)
	if err != nil {
		return nil, &ResolutionError{Username: username, Lookup: LookupIdentity, Err: err}
	}

	size, err := resolveSize(ctx, client, req.Size)
	if err != nil {
		return nil, &ResolutionError{Username: username, Lookup: LookupSize, Err: err}
	}

	imageName, sourceAlias, err := resolveImageVersion(ctx, client, req.ImageID, req.ImageVersion)
	if err != nil {
		return nil, &ResolutionError{Username: username, Lookup: LookupImageVersion, Err: err}
	}

	return &AccountContext{
		Client:             client,
		Username:           username,
		ProjectID:          project.UUID,
		IdentityID:         identity.UUID,
		AllocationSourceID: allocSource.UUID,
		SourceAlias:        sourceAlias,
		SizeAlias:          size.Alias,
		InstanceName:       imageName,
	}, nil
}

func resolveProject(ctx context.Context, client atmo.Client, username string, create bool) (*atmo.Project, error) {
	projects, err := client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Name == username {
			return &projects[i], nil
		}
	}
	if create {
		return client.CreateProject(ctx, username)
	}
	return nil, fmt.Errorf("no project named %q", username)
}

func resolveAllocationSource(ctx context.Context, client atmo.Client, username, requested string) (*atmo.AllocationSource, error) {
	sources, err := client.ListAllocationSources(ctx)
	if err != nil {
		return nil, err
	}
	name := requested
	if name == "" {
		name = username
	}
	for i := range sources {
		if sources[i].Name == name {
			return &sources[i], nil
		}
	}
	return nil, fmt.Errorf("no allocation source named %q", name)
}

func resolveIdentity(ctx context.Context, client atmo.Client, username string) (*atmo.Identity, error) {
	identities, err := client.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}
	for i := range identities {
		if identities[i].User.Username == username {
			return &identities[i], nil
		}
	}
	return nil, fmt.Errorf("no identity for username %q", username)
}

func resolveSize(ctx context.Context, client atmo.Client, name string) (*atmo.Size, error) {
	sizes, err := client.ListSizes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sizes {
		if sizes[i].Name == name {
			return &sizes[i], nil
		}
	}
	return nil, fmt.Errorf("no size named %q", name)
}

// resolveImageVersion resolves the image reference to the exact requested
// version and returns the image's display name plus the first backing
// machine's UUID, which is the source alias the create call needs.
func resolveImageVersion(ctx context.Context, client atmo.Client, imageID int, version string) (name, sourceAlias string, err error) {
	image, err := client.GetImage(ctx, imageID)
	if err != nil {
		return "", "", err
	}

	var versionURL string
	for _, v := range image.Versions {
		if v.Name == version {
			versionURL = v.URL
			break
		}
	}
	if versionURL == "" {
		return "", "", fmt.Errorf("image %d has no version %q", imageID, version)
	}

	machines, err := client.ListVersionMachines(ctx, versionURL)
	if err != nil {
		return "", "", err
	}
	if len(machines) == 0 {
		return "", "", fmt.Errorf("image %d version %q has no machines", imageID, version)
	}
	return image.Name, machines[0].UUID, nil
}
