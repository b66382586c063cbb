/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package apic

import (
	"bytes"
	"context"
	"crypto/tls"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/jcriveros/devaci/pkg/errors"
)

const (
	// DefaultTimeout bounds every controller request.
	DefaultTimeout = 180 * time.Second

	// DefaultUsername and DefaultHost match a factory-default controller.
	DefaultUsername = "admin"
	DefaultHost     = "127.0.0.1"

	cookieName = "APIC-cookie"

	contentJSON = "application/json"
	contentXML  = "application/xml"
)

// Client talks to one APIC controller. It is safe for concurrent use once a
// session has been established.
type Client struct {
	host     string
	username string
	password string
	secure   bool
	timeout  time.Duration
	retryMax int

	hc      *retryablehttp.Client
	limiter *rate.Limiter
	log     *slog.Logger

	mu      sync.Mutex
	token   string
	version string
	refresh time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets the login identity.
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		if username != "" {
			c.username = username
		}
		c.password = password
	}
}

// WithTimeout bounds every request to the controller.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithSecure enables certificate verification. Lab fabrics run self-signed,
// so verification is off unless asked for.
func WithSecure(secure bool) Option {
	return func(c *Client) {
		c.secure = secure
	}
}

// WithLogger sets the session logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRateLimit caps requests per second against the controller.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithRetryMax sets how many times transient failures are retried.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retryMax = n
		}
	}
}

// WithToken resumes an existing session instead of logging in again.
func WithToken(token, version string) Option {
	return func(c *Client) {
		c.token = token
		c.version = version
	}
}

// NewClient creates a client for the controller at host.
func NewClient(host string, opts ...Option) *Client {
	c := &Client{
		host:     host,
		username: DefaultUsername,
		timeout:  DefaultTimeout,
		retryMax: 3,
		limiter:  rate.NewLimiter(rate.Inf, 0),
		log:      slog.Default(),
	}
	if c.host == "" {
		c.host = DefaultHost
	}
	for _, opt := range opts {
		opt(c)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = c.retryMax
	rc.Logger = nil
	rc.HTTPClient = &http.Client{
		Timeout: c.timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: !c.secure},
		},
	}
	c.hc = rc
	return c
}

// Host returns the controller address.
func (c *Client) Host() string {
	return c.host
}

// Version returns the controller version reported at login.
func (c *Client) Version() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Token returns the current session token.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) url(path string) string {
	return fmt.Sprintf("https://%s%s", c.host, path)
}

// do performs one request against the controller, attaching the session
// cookie when present. The response body is returned for envelope parsing
// regardless of status.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeConnection, "rate limiter interrupted", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeInternal, "building request failed", err)
	}
	req.Header.Set("Content-Type", contentType)

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if goerrors.Is(err, context.DeadlineExceeded) {
			return nil, 0, errors.Wrap(errors.ErrCodeTimeout, "controller request timed out", err)
		}
		return nil, 0, errors.Wrap(errors.ErrCodeConnection, "controller unreachable", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(errors.ErrCodeConnection, "reading controller response failed", err)
	}
	return data, resp.StatusCode, nil
}
