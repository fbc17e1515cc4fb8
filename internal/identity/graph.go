package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// graphClient performs raw Graph API calls.
type graphClient struct {
	baseURL string
	http    *http.Client
}

func newGraphClient(baseURL string, hc *http.Client) graphClient {
	if baseURL == "" {
		baseURL = DefaultGraphURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return graphClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// call sends method to path with params in the query string. A Graph error
// envelope, in any status, is returned as *GraphError.
func (g graphClient) call(ctx context.Context, path, method string, params url.Values) ([]byte, error) {
	u := g.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), u, nil)
	if err != nil {
		return nil, fmt.Errorf("graph request error: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph call error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("graph read error: %w", err)
	}

	var envelope struct {
		Error *GraphError `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
		return nil, envelope.Error
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &GraphError{Message: fmt.Sprintf("graph status %d", resp.StatusCode), Code: resp.StatusCode}
	}
	return body, nil
}

// Profile is the subset of the Graph "me" object the backend uses.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfileClient resolves access tokens to profiles.
type ProfileClient struct {
	g graphClient
}

// NewProfileClient returns a client for baseURL. Empty baseURL means
// DefaultGraphURL; nil hc means a client with a 30s timeout.
func NewProfileClient(baseURL string, hc *http.Client) *ProfileClient {
	return &ProfileClient{g: newGraphClient(baseURL, hc)}
}

// Me fetches the profile owning accessToken.
func (c *ProfileClient) Me(ctx context.Context, accessToken string) (*Profile, error) {
	body, err := c.g.call(ctx, "/me", http.MethodGet, url.Values{"access_token": {accessToken}})
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("graph decode error: %w", err)
	}
	return &p, nil
}
