package nido

import (
	"errors"

	"github.com/nidohq/nido-go/internal/httperr"
)

// Error types re-exported so callers compare against a single package.
type (
	// StatusError is returned for any non-2xx HTTP response.
	StatusError = httperr.StatusError
	// TransportError wraps a network or decode failure.
	TransportError = httperr.TransportError
	// RemoteError is returned when a 2xx envelope carries an error field.
	RemoteError = httperr.RemoteError
)

// ErrNotFound is returned when the backend reports 404 for a resource.
var ErrNotFound = httperr.ErrNotFound

// IsNotFound reports whether err represents a missing resource.
func IsNotFound(err error) bool { return errors.Is(err, httperr.ErrNotFound) }

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *httperr.StatusError
	return errors.As(err, &se) && se.Code == code
}
