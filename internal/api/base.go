// Package api holds the request core and the per-resource endpoint
// functions. Each function issues exactly one HTTP call and returns the
// decoded backend payload; no state is kept between calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nidohq/nido-go/internal/httperr"
	"github.com/nidohq/nido-go/internal/types"
)

// maxErrorBody bounds how much of a failed response is attached to the
// returned StatusError.
const maxErrorBody = 4 << 10

// request issues one HTTP call and decodes the JSON response into T.
//
// Failure taxonomy:
//   - non-2xx status:  *httperr.StatusError carrying the code and body
//   - network failure: *httperr.TransportError wrapping the cause
//   - decode failure:  *httperr.TransportError wrapping the cause
//
// Transport and decode failures are logged before propagating. There is no
// retry on any path.
func request[T any](ctx context.Context, hc *http.Client, method, url string, payload any) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(raw)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	requestsTotal.WithLabelValues(method).Inc()
	resp, err := hc.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(method, "transport").Inc()
		log.Error().Err(err).Str("method", method).Str("url", url).Msg("request failed")
		return nil, &httperr.TransportError{Op: method + " " + url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		requestFailuresTotal.WithLabelValues(method, "status").Inc()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &httperr.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		requestFailuresTotal.WithLabelValues(method, "decode").Inc()
		log.Error().Err(err).Str("method", method).Str("url", url).Msg("decoding response failed")
		return nil, &httperr.TransportError{Op: "decode " + method + " " + url, Err: err}
	}
	return &out, nil
}

func get[T any](ctx context.Context, hc *http.Client, url string) (*T, error) {
	return request[T](ctx, hc, http.MethodGet, url, nil)
}

func post[T any](ctx context.Context, hc *http.Client, url string, payload any) (*T, error) {
	return request[T](ctx, hc, http.MethodPost, url, payload)
}

func put[T any](ctx context.Context, hc *http.Client, url string, payload any) (*T, error) {
	return request[T](ctx, hc, http.MethodPut, url, payload)
}

func del[T any](ctx context.Context, hc *http.Client, url string) (*T, error) {
	return request[T](ctx, hc, http.MethodDelete, url, nil)
}

// unwrap extracts the payload of a plain envelope, converting a backend
// error field into a RemoteError.
func unwrap[T any](env *types.APIResponse[T]) (*T, error) {
	if env.Error != "" {
		return nil, &httperr.RemoteError{Msg: env.Error}
	}
	return &env.Data, nil
}

// unwrapPage applies the same backend-error check to paginated envelopes.
func unwrapPage[T any](env *types.PaginatedResponse[T]) (*types.PaginatedResponse[T], error) {
	if env.Error != "" {
		return nil, &httperr.RemoteError{Msg: env.Error}
	}
	return env, nil
}
