package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

// Client talks to the content API. Every response is checked against the
// {success, data, error} envelope before data is trusted.
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

func NewClient(baseURL, token string) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.Logger = nil
	// API failures carry an envelope worth reading; only retry when the
	// request never got a response at all.
	httpClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    httpClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		if env.Error != "" {
			return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, env.Error)
		}
		return nil, fmt.Errorf("api error (status %d)", resp.StatusCode)
	}
	return env.Data, nil
}

func (c *Client) FetchProfile(ctx context.Context) (*profile.Profile, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/profile", nil)
	if err != nil {
		return nil, err
	}
	var p profile.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// SaveProfile sends payload through the profile write route and returns the
// full document the server echoes back. payload may be a whole Profile or a
// field subset.
func (c *Client) SaveProfile(ctx context.Context, payload any) (*profile.Profile, error) {
	data, err := c.do(ctx, http.MethodPut, "/api/admin/profile", payload)
	if err != nil {
		return nil, err
	}
	var p profile.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (c *Client) FetchProjects(ctx context.Context) ([]*project.Project, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/projects", nil)
	if err != nil {
		return nil, err
	}
	var projects []*project.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, payload any) (*project.Project, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/admin/projects", payload)
	if err != nil {
		return nil, err
	}
	var p project.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}

func (c *Client) UpdateProject(ctx context.Context, payload any) (*project.Project, error) {
	data, err := c.do(ctx, http.MethodPut, "/api/admin/projects", payload)
	if err != nil {
		return nil, err
	}
	var p project.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/projects?id="+id, nil)
	return err
}

// SignUpload exchanges upload parameters for a signature. The sign route
// answers {success, signature} rather than the data envelope.
func (c *Client) SignUpload(ctx context.Context, params map[string]any) (string, error) {
	raw, err := json.Marshal(map[string]any{"paramsToSign": params})
	if err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/sign-upload", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var signed struct {
		Success   bool   `json:"success"`
		Signature string `json:"signature"`
		Error     string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return "", fmt.Errorf("malformed sign response (status %d): %w", resp.StatusCode, err)
	}
	if !signed.Success {
		if signed.Error != "" {
			return "", fmt.Errorf("sign upload failed (status %d): %s", resp.StatusCode, signed.Error)
		}
		return "", fmt.Errorf("sign upload failed (status %d)", resp.StatusCode)
	}
	return signed.Signature, nil
}
