// Package httperr defines the error taxonomy for the SDK's request layer.
// Every failed call surfaces as exactly one of these types, so callers can
// branch on the kind of failure without parsing error strings.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the backend reports 404 for a resource.
var ErrNotFound = errors.New("resource not found")

// StatusError is returned for any non-2xx HTTP response. Body holds the raw
// response body when one was present (truncated by the request layer).
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("http status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("http status %d", e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match a 404 StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// TransportError wraps a network or decode failure. The underlying cause is
// preserved for errors.Is/As chains.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is returned when a 2xx response envelope carries a non-empty
// error field. The HTTP exchange succeeded; the backend rejected the
// operation.
type RemoteError struct {
	Msg string
}

func (e *RemoteError) Error() string { return "backend error: " + e.Msg }

// Recoverable reports whether err may succeed on a later attempt.
//   - transport failures are recoverable (they may be transient)
//   - 408 and 429 are recoverable
//   - other 4xx are not
//   - 5xx are recoverable
//
// Only the readiness poller consults this; the request path itself never
// retries.
func Recoverable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch {
		case se.Code == http.StatusRequestTimeout, se.Code == http.StatusTooManyRequests:
			return true
		case se.Code >= 400 && se.Code < 500:
			return false
		default:
			return true
		}
	}
	var te *TransportError
	return errors.As(err, &te)
}
