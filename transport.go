package nido

import (
	"net/http"

	"github.com/google/uuid"
)

const defaultUserAgent = "nido-go"

// headerTransport stamps outgoing requests with the configured bearer token,
// a per-request X-Request-Id for backend trace correlation, and the user
// agent. Requests are cloned before modification.
type headerTransport struct {
	base      http.RoundTripper
	token     string
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	if t.token != "" {
		cloned.Header.Set("Authorization", "Bearer "+t.token)
	}
	if cloned.Header.Get("X-Request-Id") == "" {
		cloned.Header.Set("X-Request-Id", uuid.NewString())
	}
	if t.userAgent != "" && cloned.Header.Get("User-Agent") == "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}
