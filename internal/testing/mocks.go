package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// MockClient is a mock implementation of the atmo.Client interface.
type MockClient struct {
	mock.Mock
}

// ListProjects returns the mocked project listing.
func (m *MockClient) ListProjects(ctx context.Context) ([]atmo.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]atmo.Project), args.Error(1)
}

// CreateProject returns the mocked created project.
func (m *MockClient) CreateProject(ctx context.Context, name string) (*atmo.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atmo.Project), args.Error(1)
}

// ListIdentities returns the mocked identity listing.
func (m *MockClient) ListIdentities(ctx context.Context) ([]atmo.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]atmo.Identity), args.Error(1)
}

// ListAllocationSources returns the mocked allocation source listing.
func (m *MockClient) ListAllocationSources(ctx context.Context) ([]atmo.AllocationSource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]atmo.AllocationSource), args.Error(1)
}

// UpdateAllocationSource returns the mocked updated allocation source.
func (m *MockClient) UpdateAllocationSource(ctx context.Context, uuid string, computeAllowed int) (*atmo.AllocationSource, error) {
	args := m.Called(ctx, uuid, computeAllowed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atmo.AllocationSource), args.Error(1)
}

// ListSizes returns the mocked size listing.
func (m *MockClient) ListSizes(ctx context.Context) ([]atmo.Size, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]atmo.Size), args.Error(1)
}

// GetImage returns the mocked image.
func (m *MockClient) GetImage(ctx context.Context, id int) (*atmo.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atmo.Image), args.Error(1)
}

// ListVersionMachines returns the mocked machine listing.
func (m *MockClient) ListVersionMachines(ctx context.Context, versionURL string) ([]atmo.Machine, error) {
	args := m.Called(ctx, versionURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]atmo.Machine), args.Error(1)
}

// CreateInstance returns the mocked created instance.
func (m *MockClient) CreateInstance(ctx context.Context, opts atmo.InstanceCreateOpts) (*atmo.Instance, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atmo.Instance), args.Error(1)
}

// GetInstance returns the mocked instance fetch.
func (m *MockClient) GetInstance(ctx context.Context, uuid string) (*atmo.Instance, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atmo.Instance), args.Error(1)
}

// ListInstances returns the mocked instance listing.
func (m *MockClient) ListInstances(ctx context.Context) ([]atmo.Instance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]atmo.Instance), args.Error(1)
}

// DeleteInstance returns the mocked deletion result.
func (m *MockClient) DeleteInstance(ctx context.Context, instance *atmo.Instance) error {
	args := m.Called(ctx, instance)
	return args.Error(0)
}

// ListVolumes returns the mocked volume listing.
func (m *MockClient) ListVolumes(ctx context.Context) ([]atmo.Volume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]atmo.Volume), args.Error(1)
}

// DeleteVolume returns the mocked deletion result.
func (m *MockClient) DeleteVolume(ctx context.Context, volume *atmo.Volume) error {
	args := m.Called(ctx, volume)
	return args.Error(0)
}
