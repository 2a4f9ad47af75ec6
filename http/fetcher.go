// Package http provides an HTTP-based implementation of enrzones.Fetcher
// for downloading eAIP pages, which are static and need no JavaScript
// rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/enrzones"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher to publication servers.
const DefaultUserAgent = "enrzones/1.0"

// Ensure Fetcher implements enrzones.Fetcher at compile time.
var _ enrzones.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents from URLs using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit allows at most rps requests per second with the given burst.
// A non-positive rps disables limiting, which is the default.
func WithRateLimit(rps float64, burst int) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body at the given URL. A 404 response returns
// ENOTFOUND so callers can tell a missing cycle from a transport failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, enrzones.Errorf(enrzones.ENOTFOUND, "no document at %s", url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
