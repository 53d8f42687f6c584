package credsource

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/atmoctl/internal/launch"
)

func TestRead(t *testing.T) {
	t.Parallel()

	input := `Username,Password,Image,Image Version,Instance Size,Allocation Source
alice,secret-a,1552,2.0,tiny1,
bob,secret-b,https://atmo.cyverse.org/application/images/1552,2.0,medium3,workshop
`

	requests, err := Read(strings.NewReader(input), launch.AuthModePassword)

	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, "alice", requests[0].Credential.Username)
	assert.Equal(t, "secret-a", requests[0].Credential.Password)
	assert.Equal(t, 1552, requests[0].ImageID)
	assert.Equal(t, "2.0", requests[0].ImageVersion)
	assert.Equal(t, "tiny1", requests[0].Size)
	assert.Empty(t, requests[0].AllocationSource)

	assert.Equal(t, 1552, requests[1].ImageID)
	assert.Equal(t, "workshop", requests[1].AllocationSource)
}

func TestReadTokenMode(t *testing.T) {
	t.Parallel()

	input := `username,token,image,image version,instance size
alice,tok-123,1552,2.0,tiny1
`

	requests, err := Read(strings.NewReader(input), launch.AuthModeToken)

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "tok-123", requests[0].Credential.Token)
	assert.Empty(t, requests[0].Credential.Password)
}

func TestReadColumnOrderIsFree(t *testing.T) {
	t.Parallel()

	input := `instance size,image version,image,password,username
tiny1,2.0,1552,secret,alice
`

	requests, err := Read(strings.NewReader(input), launch.AuthModePassword)

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "alice", requests[0].Credential.Username)
	assert.Equal(t, "tiny1", requests[0].Size)
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		mode  launch.AuthMode
	}{
		{
			name:  "empty file",
			input: "",
			mode:  launch.AuthModePassword,
		},
		{
			name:  "header only",
			input: "username,password,image,image version,instance size\n",
			mode:  launch.AuthModePassword,
		},
		{
			name:  "missing size column",
			input: "username,password,image,image version\nalice,secret,1552,2.0\n",
			mode:  launch.AuthModePassword,
		},
		{
			name:  "missing token column in token mode",
			input: "username,password,image,image version,instance size\nalice,secret,1552,2.0,tiny1\n",
			mode:  launch.AuthModeToken,
		},
		{
			name:  "non-numeric image",
			input: "username,password,image,image version,instance size\nalice,secret,ubuntu,2.0,tiny1\n",
			mode:  launch.AuthModePassword,
		},
		{
			name:  "row missing password",
			input: "username,password,image,image version,instance size\nalice,,1552,2.0,tiny1\n",
			mode:  launch.AuthModePassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Read(strings.NewReader(tt.input), tt.mode)
			assert.Error(t, err)
		})
	}
}

func TestReadEchoesRowsWithMaskedSecret(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	input := `username,password,image,image version,instance size
alice,secret-a,1552,2.0,tiny1
`

	_, err := Read(strings.NewReader(input), launch.AuthModePassword)

	require.NoError(t, err)
	echoed := buf.String()
	assert.Contains(t, echoed, "alice")
	assert.Contains(t, echoed, MaskSecret("secret-a"))
	assert.NotContains(t, echoed, "secret-a")
}

func TestParseImageRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{ref: "1552", want: 1552},
		{ref: "https://atmo.cyverse.org/application/images/1552", want: 1552},
		{ref: "https://atmo.cyverse.org/application/images/1552/", want: 1552},
		{ref: "", wantErr: true},
		{ref: "ubuntu", wantErr: true},
		{ref: "https://atmo.cyverse.org/application/images/latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()
			id, err := ParseImageRef(tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "******", MaskSecret("secret"))
	assert.Equal(t, "", MaskSecret(""))
}
