package nido

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/nidohq/nido-go/internal/httperr"
)

// WaitForReady polls the backend health endpoint with exponential backoff
// until it reports healthy, the error becomes irrecoverable (e.g. 401), or
// ctx is done. The regular request path never retries; this helper exists
// for process startup and test harnesses that must wait for a backend to
// come up.
func WaitForReady(ctx context.Context, c *Client) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = 0 // bounded by ctx only

	op := func() error {
		err := c.Ping(ctx)
		if err == nil {
			return nil
		}
		if !httperr.Recoverable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Retry(op, backoff.WithContext(exp, ctx))
}
