package fakebackend

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/store"
	"github.com/dmitrijs2005/gophaccounts/internal/identity"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
)

// ProfileFetcher resolves a provider access token to a profile.
type ProfileFetcher interface {
	Me(ctx context.Context, accessToken string) (*identity.Profile, error)
}

type handlerFunc func(ctx context.Context, req *http.Request, body []byte) response

type route struct {
	method  string
	pattern *regexp.Regexp
	handle  handlerFunc
}

// Router is the simulated API. Routes are tried in order and the first
// match wins.
type Router struct {
	store    *store.Store
	profiles ProfileFetcher
	log      logging.Logger
	now      func() time.Time

	routes []route
}

func New(st *store.Store, profiles ProfileFetcher, log logging.Logger) *Router {
	if log == nil {
		log = logging.NopLogger{}
	}
	r := &Router{
		store:    st,
		profiles: profiles,
		log:      log,
		now:      time.Now,
	}

	byID := regexp.MustCompile(`/accounts/[^/]+$`)
	r.routes = []route{
		{http.MethodPost, regexp.MustCompile(`/accounts/authenticate$`), r.authenticate},
		{http.MethodGet, regexp.MustCompile(`/accounts$`), r.requireAuth(r.list)},
		{http.MethodGet, byID, r.requireAuth(r.getByID)},
		{http.MethodPut, byID, r.requireAuth(r.update)},
		{http.MethodDelete, byID, r.requireAuth(r.delete)},
	}
	return r
}

func (r *Router) match(method, path string) (handlerFunc, bool) {
	for _, rt := range r.routes {
		if rt.method == method && rt.pattern.MatchString(path) {
			return rt.handle, true
		}
	}
	return nil, false
}

// Handles reports whether a request with method and path would be served
// by the router rather than passed through.
func (r *Router) Handles(method, path string) bool {
	_, ok := r.match(method, path)
	return ok
}

func (r *Router) serve(ctx context.Context, h handlerFunc, req *http.Request) response {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return badRequest(err.Error())
		}
		body = b
	}
	return h(ctx, req, body)
}

// ServeHTTP serves the route table on a real listener. Unmatched requests
// get 404.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h, ok := r.match(req.Method, req.URL.Path)
	if !ok {
		errorResponse(http.StatusNotFound, http.StatusText(http.StatusNotFound)).write(w)
		return
	}
	r.serve(req.Context(), h, req).write(w)
}
