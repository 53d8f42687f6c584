package credsource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/atmoctl/internal/launch"
)

func TestReadAccounts(t *testing.T) {
	t.Parallel()

	input := `username,password
alice,secret-a
bob,secret-b
`

	creds, err := ReadAccounts(strings.NewReader(input), launch.AuthModePassword)

	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, "alice", creds[0].Username)
	assert.Equal(t, "secret-a", creds[0].Password)
	assert.Equal(t, "bob", creds[1].Username)
}

func TestReadAccountsIgnoresLaunchColumns(t *testing.T) {
	t.Parallel()

	// A full launch CSV works as an accounts file; extra columns are ignored.
	input := `username,password,image,image version,instance size
alice,secret,1552,2.0,tiny1
`

	creds, err := ReadAccounts(strings.NewReader(input), launch.AuthModePassword)

	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "alice", creds[0].Username)
	assert.Equal(t, "secret", creds[0].Password)
}

func TestReadAccountsTokenMode(t *testing.T) {
	t.Parallel()

	input := `username,token
alice,tok-123
`

	creds, err := ReadAccounts(strings.NewReader(input), launch.AuthModeToken)

	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "tok-123", creds[0].Token)
}

func TestReadAccountsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"header only", "username,password\n"},
		{"missing password column", "username\nalice\n"},
		{"row missing secret", "username,password\nalice,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadAccounts(strings.NewReader(tt.input), launch.AuthModePassword)
			assert.Error(t, err)
		})
	}
}
