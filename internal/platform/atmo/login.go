package atmo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// tokenResponse is the body returned by the token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges a username and password for an access token at the
// given token endpoint. The endpoint uses HTTP basic auth; the returned
// token authorizes subsequent API calls for that account only.
func Login(ctx context.Context, httpClient *http.Client, tokenURL, username, password string) (string, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenURL, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(username, password)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request for %s: %w", username, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Method:     http.MethodGet,
			Path:       req.URL.Path,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	var token tokenResponse
	if err := json.Unmarshal(data, &token); err != nil {
		return "", fmt.Errorf("parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access_token for %s", username)
	}
	return token.AccessToken, nil
}
