package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ytget/amdl-client/internal/model"
)

// Backend routes
const (
	pathDownload     = "/api/download"
	pathSearch       = "/api/search"
	pathArtist       = "/api/artist"
	pathQueue        = "/api/queue"
	pathHistoryClear = "/api/history/clear"
	pathSettings     = "/api/settings"
	pathParallel     = "/api/settings/parallel"
	pathLoginStatus  = "/api/login/status"
	pathLogin        = "/api/login"
	path2FA          = "/api/2fa"
	pathLogs         = "/ws/logs"
	pathStorefronts  = "/static/data/storefronts.json"
)

// StatusResponse is the generic acknowledgement returned by mutating endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// LoginState is the answer of the login status endpoint
type LoginState struct {
	Status model.LoginStatus `json:"status"`
}

// Enqueue adds a download to the backend queue
func (c *Client) Enqueue(ctx context.Context, req model.DownloadRequest) error {
	if req.URL == "" {
		return fmt.Errorf("enqueue: empty url")
	}
	var resp StatusResponse
	if err := c.postJSON(ctx, pathDownload, req, &resp); err != nil {
		return fmt.Errorf("failed to add to queue: %w", err)
	}
	return nil
}

// Queue returns the full queue snapshot
func (c *Client) Queue(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.getJSON(ctx, pathQueue, c.cacheBuster(), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Search queries the catalog
func (c *Client) Search(ctx context.Context, query string) (model.SearchResults, error) {
	var res model.SearchResults
	err := c.getJSON(ctx, pathSearch, url.Values{"query": []string{query}}, &res)
	return res, err
}

// ResolveArtist returns the discography of the artist at artistURL
func (c *Client) ResolveArtist(ctx context.Context, artistURL string) (model.Discography, error) {
	var d model.Discography
	if err := c.getJSON(ctx, pathArtist, url.Values{"url": []string{artistURL}}, &d); err != nil {
		return d, fmt.Errorf("failed to load artist data: %w", err)
	}
	return d, nil
}

// ClearHistory removes finished tasks from the backend queue
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.postJSON(ctx, pathHistoryClear, nil, nil)
}

// Settings returns the backend configuration as a flat key/value map
func (c *Client) Settings(ctx context.Context) (map[string]any, error) {
	cfg := map[string]any{}
	if err := c.getJSON(ctx, pathSettings, nil, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveSettings merges update into the backend configuration
func (c *Client) SaveSettings(ctx context.Context, update map[string]any) error {
	return c.postJSON(ctx, pathSettings, update, nil)
}

// SetParallelLimit changes how many tasks the backend runs at once
func (c *Client) SetParallelLimit(ctx context.Context, limit int) error {
	return c.postJSON(ctx, pathParallel, map[string]int{"limit": limit}, nil)
}

// LoginStatus polls the login process state
func (c *Client) LoginStatus(ctx context.Context) (model.LoginStatus, error) {
	var st LoginState
	if err := c.getJSON(ctx, pathLoginStatus, c.cacheBuster(), &st); err != nil {
		return "", err
	}
	return st.Status, nil
}

// Login starts the backend login process with the given credentials
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.postJSON(ctx, pathLogin, body, nil)
}

// Submit2FA sends the second-factor code to a waiting login process. The
// backend answers 200 with status "error" when no login is waiting.
func (c *Client) Submit2FA(ctx context.Context, code string) error {
	var resp StatusResponse
	if err := c.postJSON(ctx, path2FA, map[string]string{"code": code}, &resp); err != nil {
		return err
	}
	if resp.Status == "error" {
		if resp.Message != "" {
			return fmt.Errorf("2fa rejected: %s", resp.Message)
		}
		return fmt.Errorf("2fa rejected: no login waiting for a code")
	}
	return nil
}

// Storefronts loads the list of catalog regions
func (c *Client) Storefronts(ctx context.Context) (model.StorefrontList, error) {
	var list model.StorefrontList
	if err := c.getJSON(ctx, pathStorefronts, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
