package identity_client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	contentTypeJSON  = "application/json"
	requestIDHeader  = "X-Request-ID"
	defaultUserAgent = "identity_client/1"
)

// IdentityClient talks to a remote identity service. It is immutable after
// CreateClient and safe for concurrent use.
type IdentityClient struct {
	client    Doer
	host      string
	log       *zap.SugaredLogger
	metrics   *Metrics
	userAgent string
}

// CreateClient returns a client that sends requests to endpoints under host.
// host is not validated here; a bad host surfaces on the first call.
func CreateClient(host string, opts ...Option) *IdentityClient {
	c := &IdentityClient{
		client:    &http.Client{},
		host:      host,
		log:       zap.NewNop().Sugar(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the base host the client was created with.
func (c *IdentityClient) Host() string {
	return c.host
}

// Login posts credentials to {host}/login.
func (c *IdentityClient) Login(ctx context.Context, req LoginRequest) (*http.Response, error) {
	return c.dispatch(ctx, EndpointLogin, req)
}

// Signup posts a new account to {host}/signup.
func (c *IdentityClient) Signup(ctx context.Context, req SignupRequest) (*http.Response, error) {
	return c.dispatch(ctx, EndpointSignup, req)
}

// Auth asks {host}/auth to validate a token.
func (c *IdentityClient) Auth(ctx context.Context, req AuthRequest) (*http.Response, error) {
	return c.dispatch(ctx, EndpointAuth, req)
}

// dispatch encodes body, POSTs it to {host}/{endpoint} and hands back the raw
// response. The status code is not inspected: a 4xx or 5xx comes back with a
// nil error and the caller decides what it means. The caller owns resp.Body.
func (c *IdentityClient) dispatch(ctx context.Context, endpoint string, body any) (resp *http.Response, err error) {
	start := time.Now()
	c.metrics.begin()
	defer func() {
		c.metrics.observe(endpoint, err, time.Since(start))
	}()

	if v, ok := body.(interface{ validate() error }); ok {
		if err := v.validate(); err != nil {
			return nil, &SerializationError{Op: "encode", Endpoint: endpoint, Err: err}
		}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &SerializationError{Op: "encode", Endpoint: endpoint, Err: err}
	}

	target, err := JoinEndpoint(c.host, endpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, &URLCompositionError{Host: c.host, Endpoint: endpoint, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	resp, err = c.client.Do(req)
	if err != nil {
		c.log.Debugw("identity_request_failed", "endpoint", endpoint, "url", target, "request_id", requestID, "err", err)
		return nil, &TransportError{Op: "post", Endpoint: endpoint, URL: target, Err: err}
	}

	c.log.Debugw("identity_request_done", "endpoint", endpoint, "url", target, "request_id", requestID, "status", resp.StatusCode)
	return resp, nil
}
