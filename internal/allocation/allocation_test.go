package allocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/platform/atmo"
	mocks "github.com/imamik/atmoctl/internal/testing"
)

func TestSetComputeAllowed(t *testing.T) {
	t.Parallel()

	client := &mocks.MockClient{}
	client.On("ListAllocationSources", mock.Anything).Return([]atmo.AllocationSource{
		{UUID: "a-own", Name: "alice", ComputeAllowed: 128},
	}, nil)
	client.On("UpdateAllocationSource", mock.Anything, "a-own", 168).
		Return(&atmo.AllocationSource{UUID: "a-own", Name: "alice", ComputeAllowed: 168}, nil)

	updater := &Updater{Sessions: &mocks.StubSessionProvider{Clients: map[string]atmo.Client{"alice": client}}}
	results := updater.SetComputeAllowed(context.Background(), []launch.Credential{{Username: "alice", Password: "secret"}}, 168)

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "a-own", results[0].UUID)
	assert.Equal(t, 128, results[0].Previous)
	assert.Equal(t, 168, results[0].Updated)
}

func TestSetComputeAllowedUsesFirstSourceRegardlessOfName(t *testing.T) {
	t.Parallel()

	// The account-scoped listing may carry a source that is not named
	// after the user; the first one is still the user's and gets updated.
	client := &mocks.MockClient{}
	client.On("ListAllocationSources", mock.Anything).Return([]atmo.AllocationSource{
		{UUID: "a-pool", Name: "workshop-pool", ComputeAllowed: 500},
	}, nil)
	client.On("UpdateAllocationSource", mock.Anything, "a-pool", 168).
		Return(&atmo.AllocationSource{UUID: "a-pool", Name: "workshop-pool", ComputeAllowed: 168}, nil)

	updater := &Updater{Sessions: &mocks.StubSessionProvider{Clients: map[string]atmo.Client{"alice": client}}}
	results := updater.SetComputeAllowed(context.Background(), []launch.Credential{{Username: "alice", Password: "secret"}}, 168)

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "a-pool", results[0].UUID)
	assert.Equal(t, 168, results[0].Updated)
}

func TestSetComputeAllowedFirstOfSeveral(t *testing.T) {
	t.Parallel()

	client := &mocks.MockClient{}
	client.On("ListAllocationSources", mock.Anything).Return([]atmo.AllocationSource{
		{UUID: "a-first", Name: "shared", ComputeAllowed: 256},
		{UUID: "a-second", Name: "alice", ComputeAllowed: 128},
	}, nil)
	client.On("UpdateAllocationSource", mock.Anything, "a-first", 168).
		Return(&atmo.AllocationSource{UUID: "a-first", Name: "shared", ComputeAllowed: 168}, nil)

	updater := &Updater{Sessions: &mocks.StubSessionProvider{Clients: map[string]atmo.Client{"alice": client}}}
	results := updater.SetComputeAllowed(context.Background(), []launch.Credential{{Username: "alice", Password: "secret"}}, 168)

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "a-first", results[0].UUID)
	assert.Equal(t, 256, results[0].Previous)
	client.AssertNotCalled(t, "UpdateAllocationSource", mock.Anything, "a-second", mock.Anything)
}

func TestSetComputeAllowedEmptyListing(t *testing.T) {
	t.Parallel()

	client := &mocks.MockClient{}
	client.On("ListAllocationSources", mock.Anything).Return([]atmo.AllocationSource{}, nil)

	updater := &Updater{Sessions: &mocks.StubSessionProvider{Clients: map[string]atmo.Client{"alice": client}}}
	results := updater.SetComputeAllowed(context.Background(), []launch.Credential{{Username: "alice", Password: "secret"}}, 168)

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	client.AssertNotCalled(t, "UpdateAllocationSource", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetComputeAllowedVerifiesEcho(t *testing.T) {
	t.Parallel()

	client := &mocks.MockClient{}
	client.On("ListAllocationSources", mock.Anything).Return([]atmo.AllocationSource{
		{UUID: "a-own", Name: "alice", ComputeAllowed: 128},
	}, nil)
	// The control plane echoes a stale value; the update must be reported
	// as failed.
	client.On("UpdateAllocationSource", mock.Anything, "a-own", 168).
		Return(&atmo.AllocationSource{UUID: "a-own", Name: "alice", ComputeAllowed: 128}, nil)

	updater := &Updater{Sessions: &mocks.StubSessionProvider{Clients: map[string]atmo.Client{"alice": client}}}
	results := updater.SetComputeAllowed(context.Background(), []launch.Credential{{Username: "alice", Password: "secret"}}, 168)

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestSetComputeAllowedContinuesPastFailures(t *testing.T) {
	t.Parallel()

	client := &mocks.MockClient{}
	client.On("ListAllocationSources", mock.Anything).Return([]atmo.AllocationSource{
		{UUID: "a-bob", Name: "bob", ComputeAllowed: 128},
	}, nil)
	client.On("UpdateAllocationSource", mock.Anything, "a-bob", 42).
		Return(&atmo.AllocationSource{UUID: "a-bob", Name: "bob", ComputeAllowed: 42}, nil)

	sessions := &mocks.StubSessionProvider{Clients: map[string]atmo.Client{"bob": client}}

	updater := &Updater{Sessions: sessions}
	results := updater.SetComputeAllowed(context.Background(), []launch.Credential{
		{Username: "alice", Password: "wrong"},
		{Username: "bob", Password: "secret"},
	}, 42)

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Equal(t, 42, results[1].Updated)
}
