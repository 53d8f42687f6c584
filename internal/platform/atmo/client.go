package atmo

import "context"

// EntityLister defines the lookup operations used to resolve a launch
// context. All lookups are plain listings; name matching happens in the
// caller. Listing order is whatever the control plane returns.
type EntityLister interface {
	ListProjects(ctx context.Context) ([]Project, error)
	ListIdentities(ctx context.Context) ([]Identity, error)
	ListAllocationSources(ctx context.Context) ([]AllocationSource, error)
	ListSizes(ctx context.Context) ([]Size, error)
	GetImage(ctx context.Context, id int) (*Image, error)
	ListVersionMachines(ctx context.Context, versionURL string) ([]Machine, error)
}

// ProjectManager defines project mutation operations.
type ProjectManager interface {
	CreateProject(ctx context.Context, name string) (*Project, error)
}

// AllocationManager defines allocation source mutation operations.
type AllocationManager interface {
	UpdateAllocationSource(ctx context.Context, uuid string, computeAllowed int) (*AllocationSource, error)
}

// InstanceService defines instance lifecycle operations.
type InstanceService interface {
	CreateInstance(ctx context.Context, opts InstanceCreateOpts) (*Instance, error)
	// GetInstance re-fetches an instance; safe to call repeatedly while
	// polling for activation.
	GetInstance(ctx context.Context, uuid string) (*Instance, error)
	ListInstances(ctx context.Context) ([]Instance, error)
	DeleteInstance(ctx context.Context, instance *Instance) error
}

// VolumeService defines volume lifecycle operations.
type VolumeService interface {
	ListVolumes(ctx context.Context) ([]Volume, error)
	DeleteVolume(ctx context.Context, volume *Volume) error
}

// Client combines all control-plane operations behind one interface.
// A Client is scoped to a single authenticated session; pipelines never
// share one.
type Client interface {
	EntityLister
	ProjectManager
	AllocationManager
	InstanceService
	VolumeService
}
