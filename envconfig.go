package nido

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envSettings mirrors the NIDO_* environment variables understood by
// FromEnv.
type envSettings struct {
	BaseURL     string        `envconfig:"BASE_URL" required:"true"`
	AuthToken   string        `envconfig:"AUTH_TOKEN"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	UserAgent   string        `envconfig:"USER_AGENT"`
}

// FromEnv builds a Client from NIDO_* environment variables:
//
//	NIDO_BASE_URL      backend origin (required)
//	NIDO_AUTH_TOKEN    bearer token for authenticated calls
//	NIDO_HTTP_TIMEOUT  request timeout (default 30s)
//	NIDO_USER_AGENT    User-Agent override
//
// Explicit options take precedence over the environment.
func FromEnv(opts ...Option) (*Client, error) {
	var s envSettings
	if err := envconfig.Process("nido", &s); err != nil {
		return nil, err
	}
	envOpts := []Option{WithHTTPTimeout(s.HTTPTimeout)}
	if s.AuthToken != "" {
		envOpts = append(envOpts, WithAuthToken(s.AuthToken))
	}
	if s.UserAgent != "" {
		envOpts = append(envOpts, WithUserAgent(s.UserAgent))
	}
	return New(s.BaseURL, append(envOpts, opts...)...)
}
