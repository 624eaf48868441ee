package api

import (
	"context"
	"net/http"

	"github.com/nidohq/nido-go/internal/types"
)

// Login exchanges credentials for a session token.
func Login(ctx context.Context, hc *http.Client, baseURL string, req types.LoginRequest) (*types.Session, error) {
	if err := types.ValidateLogin(req); err != nil {
		return nil, err
	}
	env, err := post[types.APIResponse[types.Session]](ctx, hc, baseURL+"/auth/login", req)
	if err != nil {
		return nil, err
	}
	return unwrap(env)
}

// Register creates a new account and returns its first session.
func Register(ctx context.Context, hc *http.Client, baseURL string, req types.RegisterRequest) (*types.Session, error) {
	if err := types.ValidateRegister(req); err != nil {
		return nil, err
	}
	env, err := post[types.APIResponse[types.Session]](ctx, hc, baseURL+"/auth/register", req)
	if err != nil {
		return nil, err
	}
	return unwrap(env)
}

// Logout invalidates the session carried by the client's auth token.
func Logout(ctx context.Context, hc *http.Client, baseURL string) error {
	env, err := post[types.APIResponse[any]](ctx, hc, baseURL+"/auth/logout", nil)
	if err != nil {
		return err
	}
	_, err = unwrap(env)
	return err
}

// GetProfile fetches the profile of the authenticated user.
func GetProfile(ctx context.Context, hc *http.Client, baseURL string) (*types.User, error) {
	env, err := get[types.APIResponse[types.User]](ctx, hc, baseURL+"/user/profile")
	if err != nil {
		return nil, err
	}
	return unwrap(env)
}
