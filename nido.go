// Package nido is the Go SDK for the Nido property-listing platform.
//
// A Client wraps the platform's JSON REST API: listing retrieval and
// search, featured selections, listing CRUD for agents, and account
// authentication. Every operation is a stateless one-shot request; the
// server is the source of truth and the client caches nothing.
package nido

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nidohq/nido-go/internal/api"
)

const defaultHTTPTimeout = 30 * time.Second

// Client talks to one Nido backend. It is safe for concurrent use; all
// configuration is immutable after New returns.
type Client struct {
	baseURL   string
	http      *http.Client
	authToken string
	userAgent string
}

// New constructs a Client for the given base URL. Additional behaviour is
// configured via functional options.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: defaultHTTPTimeout},
		userAgent: defaultUserAgent,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Installed last so auth and request-id headers sit above any
	// transport an option wrapped in.
	c.wrapTransport()

	return c, nil
}

// wrapTransport installs the header transport that stamps every outgoing
// request with the bearer token (when configured), a request ID and the
// user agent.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{
		base:      base,
		token:     c.authToken,
		userAgent: c.userAgent,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Property operations - delegated to internal/api
// --------------------------------------------------------------------

// ListProperties fetches one page of listings. Non-positive page or limit
// fall back to page 1 and the server's default page size.
func (c *Client) ListProperties(ctx context.Context, page, limit int) (*PaginatedResponse[Property], error) {
	return api.ListProperties(ctx, c.http, c.baseURL, page, limit)
}

// GetProperty fetches a single listing. Returns ErrNotFound for unknown IDs.
func (c *Client) GetProperty(ctx context.Context, propertyID string) (*Property, error) {
	return api.GetProperty(ctx, c.http, c.baseURL, propertyID)
}

// SearchProperties submits filter criteria and returns one page of matches.
func (c *Client) SearchProperties(ctx context.Context, filters SearchFilters, page int) (*PaginatedResponse[Property], error) {
	return api.SearchProperties(ctx, c.http, c.baseURL, filters, page)
}

// FeaturedProperties fetches the curated subset of listings.
func (c *Client) FeaturedProperties(ctx context.Context) ([]Property, error) {
	return api.FeaturedProperties(ctx, c.http, c.baseURL)
}

// CreateProperty creates a listing. The client must carry an auth token for
// an agent or admin account.
func (c *Client) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Property, error) {
	return api.CreateProperty(ctx, c.http, c.baseURL, req)
}

// UpdateProperty replaces a listing's attributes.
func (c *Client) UpdateProperty(ctx context.Context, propertyID string, req CreatePropertyRequest) (*Property, error) {
	return api.UpdateProperty(ctx, c.http, c.baseURL, propertyID, req)
}

// DeleteProperty removes a listing.
func (c *Client) DeleteProperty(ctx context.Context, propertyID string) error {
	return api.DeleteProperty(ctx, c.http, c.baseURL, propertyID)
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// Login exchanges credentials for a session token. The token is returned to
// the caller; the client itself stays session-free. To authenticate
// subsequent calls, construct a client with WithAuthToken.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	return api.Register(ctx, c.http, c.baseURL, req)
}

// Logout invalidates the session behind the configured auth token.
func (c *Client) Logout(ctx context.Context) error {
	return api.Logout(ctx, c.http, c.baseURL)
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	return api.GetProfile(ctx, c.http, c.baseURL)
}

// Ping checks that the backend is reachable and healthy.
func (c *Client) Ping(ctx context.Context) error {
	return api.Ping(ctx, c.http, c.baseURL)
}
