package credsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/imamik/atmoctl/internal/launch"
)

// ReadAccountsFile parses bare account credentials from a CSV file. Used
// by the cleanup and allocation workflows, which need no launch fields.
func ReadAccountsFile(path string, mode launch.AuthMode) ([]launch.Credential, error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential file: %w", err)
	}
	defer func() { _ = f.Close() }()

	creds, err := ReadAccounts(f, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return creds, nil
}

// ReadAccounts parses credentials from CSV input with a header row naming
// at least the username and password (or token) columns.
func ReadAccounts(r io.Reader, mode launch.AuthMode) ([]launch.Credential, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty credential file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	secretField := fieldPassword
	if mode == launch.AuthModeToken {
		secretField = fieldToken
	}
	for _, required := range []string{fieldUsername, secretField} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("no column called %q", required)
		}
	}

	var creds []launch.Credential
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		cred := launch.Credential{Username: field(fieldUsername)}
		if mode == launch.AuthModeToken {
			cred.Token = field(secretField)
		} else {
			cred.Password = field(secretField)
		}
		if cred.Username == "" || (cred.Password == "" && cred.Token == "") {
			return nil, fmt.Errorf("row %d missing username or %s field", row, secretField)
		}
		creds = append(creds, cred)
	}

	if len(creds) == 0 {
		return nil, fmt.Errorf("no accounts in credential file")
	}
	return creds, nil
}
