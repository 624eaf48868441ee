package api

import (
	"context"
	"net/http"

	"github.com/nidohq/nido-go/internal/types"
)

// Ping checks that the backend is reachable and reporting healthy.
func Ping(ctx context.Context, hc *http.Client, baseURL string) error {
	env, err := get[types.APIResponse[types.Health]](ctx, hc, baseURL+"/health")
	if err != nil {
		return err
	}
	_, err = unwrap(env)
	return err
}
