package identity_client

import (
	"net/http"

	"go.uber.org/zap"
)

// Doer is the transport capability the client needs. *http.Client satisfies
// it; tests substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customizes an IdentityClient at construction time.
type Option func(*IdentityClient)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(d Doer) Option {
	return func(c *IdentityClient) {
		if d != nil {
			c.client = d
		}
	}
}

// WithLogger makes the client log every dispatch at debug level.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *IdentityClient) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMetrics records request counts and latencies into m.
func WithMetrics(m *Metrics) Option {
	return func(c *IdentityClient) {
		c.metrics = m
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *IdentityClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}
