package fakebackend

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/google/uuid"
)

// DefaultDelay is the artificial latency of every simulated response.
const DefaultDelay = 500 * time.Millisecond

// Interceptor is an http.RoundTripper serving Router's routes in process.
// Requests the router does not handle go to Next unchanged.
type Interceptor struct {
	router *Router
	next   http.RoundTripper
	delay  time.Duration
	log    logging.Logger
}

// NewInterceptor wraps next, or http.DefaultTransport when next is nil.
// A negative delay is treated as zero.
func NewInterceptor(router *Router, next http.RoundTripper, delay time.Duration, log logging.Logger) *Interceptor {
	if next == nil {
		next = http.DefaultTransport
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	if delay < 0 {
		delay = 0
	}
	return &Interceptor{router: router, next: next, delay: delay, log: log}
}

func (i *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	h, matched := i.router.match(req.Method, req.URL.Path)
	if !matched {
		return i.next.RoundTrip(req)
	}

	ctx := req.Context()
	log := i.log.With("req_id", uuid.NewString(), "method", req.Method, "path", req.URL.Path)
	log.Debug(ctx, "simulated request")

	res := i.router.serve(ctx, h, req)

	if err := sleep(ctx, i.delay); err != nil {
		log.Debug(ctx, "simulated request cancelled", "error", err)
		return nil, err
	}

	log.Info(ctx, "simulated response", "status", res.status)
	return res.toHTTP(req), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
