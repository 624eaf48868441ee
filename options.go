package nido

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the header transport is installed, so any
// transport an option wraps in (debug logging included) sits underneath the
// auth and request-id headers.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client timeout.
//
// Prefer per-request context deadlines where possible; this is a coarse
// safety net bounding the total time spent on a single HTTP request.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The header
// transport is still installed on top of whatever transport it carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithAuthToken makes every request carry "Authorization: Bearer <token>".
// The token is fixed for the client's lifetime; obtain one via Login and
// construct a new client to switch identities.
func WithAuthToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("auth token must not be empty")
		}
		c.authToken = token
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the log when enabled is true. Not intended for production use.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
