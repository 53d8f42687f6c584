package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/platform/atmo"
	mocks "github.com/imamik/atmoctl/internal/testing"
)

func emptyAccountClient(username string) *mocks.MockClient {
	client := &mocks.MockClient{}
	client.On("ListProjects", mock.Anything).Return([]atmo.Project{{UUID: "p1", Name: username}}, nil)
	client.On("ListInstances", mock.Anything).Return([]atmo.Instance{}, nil)
	client.On("ListVolumes", mock.Anything).Return([]atmo.Volume{}, nil)
	return client
}

func TestCleanupFromCSV(t *testing.T) {
	origRead := readAccountsCSV
	defer func() { readAccountsCSV = origRead }()

	readAccountsCSV = func(path string, _ launch.AuthMode) ([]launch.Credential, error) {
		assert.Equal(t, "accounts.csv", path)
		return []launch.Credential{
			{Username: "alice", Password: "secret"},
			{Username: "bob", Password: "secret"},
		}, nil
	}

	stubSessions(t, &mocks.StubSessionProvider{Clients: map[string]atmo.Client{
		"alice": emptyAccountClient("alice"),
		"bob":   emptyAccountClient("bob"),
	}})

	err := Cleanup(context.Background(), CleanupOptions{CSVPath: "accounts.csv"})

	require.NoError(t, err)
}

func TestCleanupPartialFailureIsNotFatal(t *testing.T) {
	origRead := readAccountsCSV
	defer func() { readAccountsCSV = origRead }()

	readAccountsCSV = func(string, launch.AuthMode) ([]launch.Credential, error) {
		return []launch.Credential{
			{Username: "alice", Password: "wrong"},
			{Username: "bob", Password: "secret"},
		}, nil
	}

	stubSessions(t, &mocks.StubSessionProvider{
		Clients: map[string]atmo.Client{"bob": emptyAccountClient("bob")},
		Errs:    map[string]error{"alice": errors.New("bad credentials")},
	})

	err := Cleanup(context.Background(), CleanupOptions{CSVPath: "accounts.csv"})

	assert.NoError(t, err)
}

func TestCleanupAllAccountsFailing(t *testing.T) {
	origRead := readAccountsCSV
	defer func() { readAccountsCSV = origRead }()

	readAccountsCSV = func(string, launch.AuthMode) ([]launch.Credential, error) {
		return []launch.Credential{{Username: "alice", Password: "wrong"}}, nil
	}

	stubSessions(t, &mocks.StubSessionProvider{
		Errs: map[string]error{"alice": errors.New("bad credentials")},
	})

	err := Cleanup(context.Background(), CleanupOptions{CSVPath: "accounts.csv"})

	assert.Error(t, err)
}

func TestCleanupRequiresAccountInput(t *testing.T) {
	t.Parallel()

	err := Cleanup(context.Background(), CleanupOptions{})
	assert.Error(t, err)

	err = Cleanup(context.Background(), CleanupOptions{CSVPath: "a.csv", Username: "alice"})
	assert.Error(t, err)
}
