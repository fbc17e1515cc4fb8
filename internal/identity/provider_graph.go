package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// GraphProvider implements Provider on top of the Graph API. The login
// "popup" is a TokenSource and the provider session lives in a TokenCache.
type GraphProvider struct {
	g      graphClient
	source TokenSource
	cache  TokenCache

	mu   sync.RWMutex
	resp *AuthResponse
}

func NewGraphProvider(baseURL string, hc *http.Client, source TokenSource, cache TokenCache) *GraphProvider {
	return &GraphProvider{g: newGraphClient(baseURL, hc), source: source, cache: cache}
}

// Login reads a token from the source and validates it against /me before
// caching it.
func (p *GraphProvider) Login(ctx context.Context) (*AuthResponse, error) {
	tok, err := p.source.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider login: %w", err)
	}
	if tok == "" {
		return nil, nil
	}

	me, err := (&ProfileClient{g: p.g}).Me(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("provider login: %w", err)
	}

	r := &AuthResponse{AccessToken: tok, UserID: me.ID}
	if err := p.cache.Save(ctx, r); err != nil {
		return nil, err
	}
	p.set(r)
	return r, nil
}

func (p *GraphProvider) Logout(ctx context.Context) error {
	p.set(nil)
	return p.cache.Clear(ctx)
}

func (p *GraphProvider) LoginStatus(ctx context.Context) (*AuthResponse, error) {
	r, err := p.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	p.set(r)
	return r, nil
}

func (p *GraphProvider) AuthResponse() *AuthResponse {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.resp == nil {
		return nil
	}
	r := *p.resp
	return &r
}

// API calls path with the cached access token added to params.
func (p *GraphProvider) API(ctx context.Context, path, method string, params url.Values) ([]byte, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	if r := p.AuthResponse(); r != nil {
		q.Set("access_token", r.AccessToken)
	}
	return p.g.call(ctx, path, method, q)
}

func (p *GraphProvider) set(r *AuthResponse) {
	p.mu.Lock()
	p.resp = r
	p.mu.Unlock()
}
