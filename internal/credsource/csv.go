package credsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/imamik/atmoctl/internal/launch"
)

// CSV column headers. The header row may order columns freely; lookup is
// by name, not position.
const (
	fieldUsername         = "username"
	fieldPassword         = "password"
	fieldToken            = "token"
	fieldImage            = "image"
	fieldImageVersion     = "image version"
	fieldInstanceSize     = "instance size"
	fieldAllocationSource = "allocation source"
)

// ReadFile parses launch requests from a CSV file.
func ReadFile(path string, mode launch.AuthMode) ([]launch.LaunchRequest, error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential file: %w", err)
	}
	defer func() { _ = f.Close() }()

	requests, err := Read(f, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return requests, nil
}

// Read parses launch requests from CSV input. The first row is a header
// naming the columns; every later row is one account.
func Read(r io.Reader, mode launch.AuthMode) ([]launch.LaunchRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

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
	for _, required := range []string{fieldUsername, secretField, fieldImage, fieldImageVersion, fieldInstanceSize} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("no column called %q", required)
		}
	}

	var requests []launch.LaunchRequest
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		request, err := parseRow(record, columns, mode)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if err := request.Validate(mode); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		// Echo each account as it is read, with the secret masked.
		secret := request.Credential.Password
		if mode == launch.AuthModeToken {
			secret = request.Credential.Token
		}
		log.Printf("[%s] %s image=%d version=%s size=%s",
			request.Credential.Username, MaskSecret(secret),
			request.ImageID, request.ImageVersion, request.Size)

		requests = append(requests, request)
	}

	if len(requests) == 0 {
		return nil, fmt.Errorf("no accounts in credential file")
	}
	return requests, nil
}

func parseRow(record []string, columns map[string]int, mode launch.AuthMode) (launch.LaunchRequest, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	imageID, err := ParseImageRef(field(fieldImage))
	if err != nil {
		return launch.LaunchRequest{}, err
	}

	request := launch.LaunchRequest{
		Credential: launch.Credential{
			Username: field(fieldUsername),
		},
		ImageID:          imageID,
		ImageVersion:     field(fieldImageVersion),
		Size:             field(fieldInstanceSize),
		AllocationSource: field(fieldAllocationSource),
	}
	if mode == launch.AuthModeToken {
		request.Credential.Token = field(fieldToken)
	} else {
		request.Credential.Password = field(fieldPassword)
	}
	return request, nil
}

// ParseImageRef extracts the numeric image id from an image reference.
// References are either a bare id ("1552") or an application URL whose
// last path segment is the id.
func ParseImageRef(ref string) (int, error) {
	if ref == "" {
		return 0, fmt.Errorf("missing image reference")
	}
	segments := strings.Split(strings.TrimRight(ref, "/"), "/")
	last := segments[len(segments)-1]
	id, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("image reference %q does not end in a numeric id", ref)
	}
	return id, nil
}

// MaskSecret renders a secret as asterisks for display, preserving length.
func MaskSecret(secret string) string {
	return strings.Repeat("*", len(secret))
}
