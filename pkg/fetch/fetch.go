package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/whitebox/pkg/requestid"
)

// DefaultTimeout bounds every request made by a Client.
const DefaultTimeout = 10 * time.Second

// Doer sends an HTTP request. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches JSON documents.
type Client struct {
	doer    Doer
	timeout time.Duration
	maxBody int64
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the default *http.Client.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxBodySize limits how many bytes of the response body are decoded.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// New creates a Client backed by an *http.Client unless WithDoer is given.
func New(opts ...Option) *Client {
	c := &Client{
		timeout: DefaultTimeout,
		maxBody: 10 << 20,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// JSON fetches rawURL and returns the decoded document as produced by
// encoding/json for an interface value.
func (c *Client) JSON(ctx context.Context, rawURL string) (any, error) {
	var v any
	if err := c.Decode(ctx, rawURL, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Decode fetches rawURL and decodes the JSON body into dst.
func (c *Client) Decode(ctx context.Context, rawURL string, dst any) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToCreateReq, err)
	}
	req.Header.Set("Accept", "application/json")
	requestid.Propagate(req)

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, c.maxBody)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}
