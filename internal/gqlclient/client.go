// Package gqlclient provides the GraphQL client handle shared by the views.
// A Client pairs one endpoint with one response cache for the lifetime of the
// process.
package gqlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"
	"github.com/rs/zerolog"
)

// DefaultTimeout is the timeout for a single request when none is configured.
const DefaultTimeout = 5 * time.Second

var (
	// ErrNetwork wraps failures to reach the endpoint.
	ErrNetwork = errors.New("network error")

	// ErrResponse wraps GraphQL errors and unusable responses.
	ErrResponse = errors.New("graphql error")
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Client executes queries and mutations against a GraphQL endpoint.
type Client struct {
	id         string
	endpoint   string
	cache      Cache
	timeout    time.Duration
	httpClient *http.Client
	gql        *graphql.Client
}

// New creates a client for endpoint backed by cache. It never fails: an
// unusable endpoint surfaces as ErrNetwork on the first request.
// A nil cache gets a fresh in-memory cache.
func New(endpoint string, cache Cache, opts ...Option) *Client {
	if cache == nil {
		cache = NewInMemoryCache()
	}
	c := &Client{
		id:         uuid.NewString(),
		endpoint:   endpoint,
		cache:      cache,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.gql = graphql.NewClient(endpoint, graphql.WithHTTPClient(withStatusCheck(c.httpClient)))
	return c
}

// statusError reports a non-2xx HTTP response from the endpoint.
type statusError struct {
	status string
}

func (e *statusError) Error() string {
	return "server returned " + e.status
}

// statusTransport fails any response outside the 2xx range, whatever its body.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, &statusError{status: res.Status}
	}
	return res, nil
}

// withStatusCheck returns a copy of hc whose transport rejects non-2xx responses.
func withStatusCheck(hc *http.Client) *http.Client {
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	checked := *hc
	checked.Transport = statusTransport{base: base}
	return &checked
}

// ID returns the random identifier of this client instance.
func (c *Client) ID() string { return c.id }

// Endpoint returns the configured endpoint.
func (c *Client) Endpoint() string { return c.endpoint }

// Cache returns the cache owned by this client.
func (c *Client) Cache() Cache { return c.cache }

// Query runs a query document, serving it from the cache when possible.
// out receives the decoded "data" object.
func (c *Client) Query(ctx context.Context, document string, vars map[string]any, out any) error {
	log := zerolog.Ctx(ctx)
	key, err := cacheKey(document, vars)
	if err != nil {
		return err
	}

	if data, ok := c.cache.Get(key); ok {
		log.Debug().Str("client", c.id).Msg("graphql cache hit")
		return decode(data, out)
	}

	data, err := c.run(ctx, document, vars)
	if err != nil {
		return err
	}
	c.cache.Set(key, data)
	return decode(data, out)
}

// Mutate runs a mutation document. Any successful mutation resets the cache
// so later queries observe the change.
func (c *Client) Mutate(ctx context.Context, document string, vars map[string]any, out any) error {
	data, err := c.run(ctx, document, vars)
	if err != nil {
		return err
	}
	c.cache.Reset()
	if out == nil {
		return nil
	}
	return decode(data, out)
}

func (c *Client) run(ctx context.Context, document string, vars map[string]any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	req := graphql.NewRequest(document)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set("X-Request-ID", requestID)

	zerolog.Ctx(ctx).Debug().
		Str("client", c.id).
		Str("request_id", requestID).
		Str("endpoint", c.endpoint).
		Msg("graphql request")

	var data json.RawMessage
	if err := c.gql.Run(ctx, req, &data); err != nil {
		return nil, wrapError(err)
	}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, fmt.Errorf("%w: response has no data", ErrResponse)
	}
	return data, nil
}

// cacheKey identifies an operation by its document and variables.
// encoding/json sorts map keys, so equal variable sets give equal keys.
func cacheKey(document string, vars map[string]any) (string, error) {
	if len(vars) == 0 {
		return document, nil
	}
	encoded, err := json.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("failed to encode variables: %w", err)
	}
	return document + "\x00" + string(encoded), nil
}

func decode(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding data: %v", ErrResponse, err)
	}
	return nil
}

// wrapError sorts transport failures from GraphQL-level failures.
func wrapError(err error) error {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %w", ErrResponse, statusErr)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out", ErrNetwork)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrNetwork, context.Canceled)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return fmt.Errorf("%w: request timed out", ErrNetwork)
		}
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return fmt.Errorf("%w: %w", ErrResponse, err)
}
