package atmo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RealClient implements Client against a live control plane.
type RealClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the target's API base URL (useful for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *RealClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// NewClient creates a session-scoped client for the given target.
// The token comes from Login or from a preissued access token.
func NewClient(target Target, token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		baseURL:    target.APIBaseURL(),
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listResponse is the paginated envelope the v2 API wraps listings in.
type listResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// versionDetail is the response of an image-version URL.
type versionDetail struct {
	Machines []Machine `json:"machines"`
}

// ListProjects implements EntityLister.
func (c *RealClient) ListProjects(ctx context.Context) ([]Project, error) {
	return listGET[Project](ctx, c, "/api/v2/projects")
}

// CreateProject implements ProjectManager.
func (c *RealClient) CreateProject(ctx context.Context, name string) (*Project, error) {
	body := map[string]any{"name": name, "description": name}
	var project Project
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/v2/projects", body, &project); err != nil {
		return nil, fmt.Errorf("create project %s: %w", name, err)
	}
	return &project, nil
}

// ListIdentities implements EntityLister.
func (c *RealClient) ListIdentities(ctx context.Context) ([]Identity, error) {
	return listGET[Identity](ctx, c, "/api/v2/identities")
}

// ListAllocationSources implements EntityLister.
func (c *RealClient) ListAllocationSources(ctx context.Context) ([]AllocationSource, error) {
	return listGET[AllocationSource](ctx, c, "/api/v2/allocation_sources")
}

// UpdateAllocationSource implements AllocationManager.
func (c *RealClient) UpdateAllocationSource(ctx context.Context, uuid string, computeAllowed int) (*AllocationSource, error) {
	body := map[string]any{"compute_allowed": computeAllowed}
	var src AllocationSource
	path := fmt.Sprintf("%s/api/v2/allocation_sources/%s", c.baseURL, uuid)
	if err := c.doJSON(ctx, http.MethodPatch, path, body, &src); err != nil {
		return nil, fmt.Errorf("update allocation source %s: %w", uuid, err)
	}
	return &src, nil
}

// ListSizes implements EntityLister.
func (c *RealClient) ListSizes(ctx context.Context) ([]Size, error) {
	return listGET[Size](ctx, c, "/api/v2/sizes")
}

// GetImage implements EntityLister.
func (c *RealClient) GetImage(ctx context.Context, id int) (*Image, error) {
	var image Image
	path := fmt.Sprintf("%s/api/v2/images/%d", c.baseURL, id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &image); err != nil {
		return nil, fmt.Errorf("get image %d: %w", id, err)
	}
	return &image, nil
}

// ListVersionMachines implements EntityLister. The version URL is absolute,
// handed out by the control plane in the image's version listing.
func (c *RealClient) ListVersionMachines(ctx context.Context, versionURL string) ([]Machine, error) {
	var detail versionDetail
	if err := c.doJSON(ctx, http.MethodGet, versionURL, nil, &detail); err != nil {
		return nil, fmt.Errorf("list version machines: %w", err)
	}
	return detail.Machines, nil
}

// CreateInstance implements InstanceService. Single-shot: the instance
// provisions asynchronously after this returns.
func (c *RealClient) CreateInstance(ctx context.Context, opts InstanceCreateOpts) (*Instance, error) {
	scripts := opts.Scripts
	if scripts == nil {
		scripts = []string{}
	}
	body := map[string]any{
		"name":                 opts.Name,
		"source_alias":         opts.SourceAlias,
		"size_alias":           opts.SizeAlias,
		"allocation_source_id": opts.AllocationSourceID,
		"project":              opts.ProjectID,
		"identity":             opts.IdentityID,
		"scripts":              scripts,
	}
	var instance Instance
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/v2/instances", body, &instance); err != nil {
		return nil, fmt.Errorf("create instance %s: %w", opts.Name, err)
	}
	return &instance, nil
}

// GetInstance implements InstanceService.
func (c *RealClient) GetInstance(ctx context.Context, uuid string) (*Instance, error) {
	var instance Instance
	path := fmt.Sprintf("%s/api/v2/instances/%s", c.baseURL, uuid)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &instance); err != nil {
		return nil, fmt.Errorf("get instance %s: %w", uuid, err)
	}
	return &instance, nil
}

// ListInstances implements InstanceService.
func (c *RealClient) ListInstances(ctx context.Context) ([]Instance, error) {
	return listGET[Instance](ctx, c, "/api/v2/instances")
}

// DeleteInstance implements InstanceService. Deletion goes through the v1
// action API, which routes by provider and identity.
func (c *RealClient) DeleteInstance(ctx context.Context, instance *Instance) error {
	path := fmt.Sprintf("%s/api/v1/provider/%s/identity/%s/instance/%s",
		c.baseURL, instance.Provider.UUID, instance.Identity.UUID, instance.UUID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete instance %s: %w", instance.UUID, err)
	}
	return nil
}

// ListVolumes implements VolumeService.
func (c *RealClient) ListVolumes(ctx context.Context) ([]Volume, error) {
	return listGET[Volume](ctx, c, "/api/v2/volumes")
}

// DeleteVolume implements VolumeService.
func (c *RealClient) DeleteVolume(ctx context.Context, volume *Volume) error {
	path := fmt.Sprintf("%s/api/v1/provider/%s/identity/%s/volume/%s",
		c.baseURL, volume.Provider.UUID, volume.Identity.UUID, volume.UUID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete volume %s: %w", volume.UUID, err)
	}
	return nil
}

// listGET fetches a v2 listing and unwraps the results envelope.
func listGET[T any](ctx context.Context, c *RealClient, path string) ([]T, error) {
	var resp listResponse[T]
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list %s: %w", strings.TrimPrefix(path, "/api/v2/"), err)
	}
	return resp.Results, nil
}

// doJSON performs one request with the session token, decoding the JSON
// response into out when out is non-nil.
func (c *RealClient) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json;q=0.9,*/*;q=0.8")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "TOKEN "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       req.URL.Path,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}
	return nil
}
