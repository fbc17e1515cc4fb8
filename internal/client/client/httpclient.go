package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/models"
)

// DefaultBaseURL is where the accounts API is expected when none is
// configured.
const DefaultBaseURL = "http://localhost:4000"

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for the API rooted at baseURL. All
// requests go through hc, so a custom transport decides where they land.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Authenticate(ctx context.Context, accessToken string) (*models.Account, error) {
	body := map[string]string{"accessToken": accessToken}
	var acc models.Account
	found, err := c.do(ctx, http.MethodPost, "/accounts/authenticate", body, &acc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("authenticate: %w", common.ErrorInvalidBody)
	}
	return &acc, nil
}

func (c *HTTPClient) GetAll(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	if _, err := c.do(ctx, http.MethodGet, "/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetByID(ctx context.Context, id int) (*models.Account, error) {
	var acc models.Account
	found, err := c.do(ctx, http.MethodGet, accountPath(id), nil, &acc)
	if err != nil || !found {
		return nil, err
	}
	return &acc, nil
}

func (c *HTTPClient) Update(ctx context.Context, id int, params models.AccountParams) (*models.Account, error) {
	var acc models.Account
	found, err := c.do(ctx, http.MethodPut, accountPath(id), params, &acc)
	if err != nil || !found {
		return nil, err
	}
	return &acc, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, accountPath(id), nil, nil)
	return err
}

func accountPath(id int) string {
	return "/accounts/" + strconv.Itoa(id)
}

// do sends in as JSON and decodes a 2xx body into out. It reports false
// when the body was empty.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) (bool, error) {
	var rd io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return false, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.currentToken(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, mapError(resp.StatusCode, data)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return false, fmt.Errorf("decode response: %w", err)
		}
	}
	return true, nil
}

func mapError(status int, body []byte) error {
	var m struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &m)
	return &APIError{Status: status, Message: m.Message}
}
