package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bridges/internal/bridge"
)

// maxErrorBody bounds how much of a failed response is kept in a StatusError.
const maxErrorBody = 512

// Response captures the response details and duration.
type Response struct {
	Status   int
	Headers  http.Header
	Body     []byte
	Duration time.Duration
}

// Client executes requests for one bridge, records metrics and turns
// non-2xx answers into *bridge.StatusError.
type Client struct {
	name      string
	baseURL   string
	http      *http.Client
	metrics   *Metrics
	userAgent string
}

// Option allows configuring a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMetrics records every call on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient builds a Client for the named bridge rooted at baseURL.
func NewClient(name, baseURL string, opts ...Option) *Client {
	c := &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    New(DefaultConfig()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the bridge name the client reports metrics under.
func (c *Client) Name() string { return c.name }

// BaseURL returns the service root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// HTTP exposes the underlying client for transports that build their own requests.
func (c *Client) HTTP() *http.Client { return c.http }

// Metrics returns the metrics sink, possibly nil.
func (c *Client) Metrics() *Metrics { return c.metrics }

// URL joins path segments onto the base URL and appends the query.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Get performs a GET request on path and returns the 2xx response.
func (c *Client) Get(ctx context.Context, path string, query url.Values, accept string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path, query), nil)
	if err != nil {
		return Response{}, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return c.Do(req)
}

// PostForm performs a form-encoded POST on path.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.Do(req)
}

// Do executes req. The body is fully read; a non-2xx status yields a
// *bridge.StatusError carrying the start of the body.
func (c *Client) Do(req *http.Request) (Response, error) {
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		d := time.Since(start)
		c.metrics.Observe(c.name, "error", d)
		return Response{Duration: d}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	d := time.Since(start)
	if err != nil {
		c.metrics.Observe(c.name, "error", d)
		return Response{Duration: d}, fmt.Errorf("read body: %w", err)
	}

	c.metrics.Observe(c.name, strconv.Itoa(resp.StatusCode), d)

	out := Response{
		Status:   resp.StatusCode,
		Headers:  resp.Header.Clone(),
		Body:     body,
		Duration: d,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(body)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return out, &bridge.StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(snippet)}
	}
	return out, nil
}
