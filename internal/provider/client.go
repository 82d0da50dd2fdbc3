// Package provider is the HTTP client for the transit information API that
// supplies routes, directions, stops and departures.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// DefaultBaseURL is the public NexTrip endpoint.
const DefaultBaseURL = "http://svc.metrotransit.org/nextrip"

// DefaultFormat is the response format requested on every call.
const DefaultFormat = "json"

// HeaderRequestID carries the pipeline run ID on every request.
const HeaderRequestID = "X-Request-ID"

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL string
	Format  string
	// Timeout bounds each request. Zero leaves the transport default in
	// place, which never times out.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client fetches provider resources. It is safe for sequential use by a
// single pipeline run.
type Client struct {
	baseURL    string
	format     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a provider client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		format:     opts.Format,
		httpClient: opts.HTTPClient,
		log:        opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.format == "" {
		c.format = DefaultFormat
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Routes lists every known route in provider order.
func (c *Client) Routes(ctx context.Context) ([]types.Candidate, error) {
	var routes []types.Route
	if err := c.get(ctx, &routes, "Routes"); err != nil {
		return nil, err
	}
	out := make([]types.Candidate, len(routes))
	for i, r := range routes {
		out[i] = r.Candidate()
	}
	return out, nil
}

// Directions lists the valid directions for a route.
func (c *Client) Directions(ctx context.Context, routeID string) ([]types.Candidate, error) {
	return c.textValues(ctx, "Directions", routeID)
}

// Stops lists the stops served by a route in one direction.
func (c *Client) Stops(ctx context.Context, routeID, directionID string) ([]types.Candidate, error) {
	return c.textValues(ctx, "Stops", routeID, directionID)
}

// Departures lists upcoming departures at a stop, in provider order.
func (c *Client) Departures(ctx context.Context, routeID, directionID, stopID string) ([]types.Departure, error) {
	var deps []types.Departure
	if err := c.get(ctx, &deps, routeID, directionID, stopID); err != nil {
		return nil, err
	}
	return deps, nil
}

func (c *Client) textValues(ctx context.Context, segments ...string) ([]types.Candidate, error) {
	var tvs []types.TextValue
	if err := c.get(ctx, &tvs, segments...); err != nil {
		return nil, err
	}
	out := make([]types.Candidate, len(tvs))
	for i, tv := range tvs {
		out[i] = tv.Candidate()
	}
	return out, nil
}

// resourceURL builds {base}/{seg...}?format={format} with each segment
// path escaped.
func (c *Client) resourceURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	q := url.Values{"format": {c.format}}
	return c.baseURL + "/" + strings.Join(escaped, "/") + "?" + q.Encode()
}

// get performs a GET on the resource and decodes the JSON body into out.
// Every failure is returned as an *Error wrapping ErrProviderUnavailable.
func (c *Client) get(ctx context.Context, out any, segments ...string) error {
	u := c.resourceURL(segments...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: u, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("provider response",
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{URL: u, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
