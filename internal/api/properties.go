package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nidohq/nido-go/internal/types"
)

// DefaultPageLimit is applied when the caller passes a non-positive limit.
const DefaultPageLimit = 12

// ListProperties fetches one page of listings.
func ListProperties(ctx context.Context, hc *http.Client, baseURL string, page, limit int) (*types.PaginatedResponse[types.Property], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	url := fmt.Sprintf("%s/properties?page=%d&limit=%d", baseURL, page, limit)
	env, err := get[types.PaginatedResponse[types.Property]](ctx, hc, url)
	if err != nil {
		return nil, err
	}
	return unwrapPage(env)
}

// GetProperty fetches a single listing by ID. A backend 404 matches
// ErrNotFound.
func GetProperty(ctx context.Context, hc *http.Client, baseURL, propertyID string) (*types.Property, error) {
	if err := types.ValidateIDPresent(propertyID, "propertyId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/properties/%s", baseURL, propertyID)
	env, err := get[types.APIResponse[types.Property]](ctx, hc, url)
	if err != nil {
		return nil, err
	}
	return unwrap(env)
}

// SearchProperties submits filter criteria and returns one page of matches.
func SearchProperties(ctx context.Context, hc *http.Client, baseURL string, filters types.SearchFilters, page int) (*types.PaginatedResponse[types.Property], error) {
	if page <= 0 {
		page = 1
	}
	url := fmt.Sprintf("%s/properties/search?page=%d", baseURL, page)
	env, err := post[types.PaginatedResponse[types.Property]](ctx, hc, url, filters)
	if err != nil {
		return nil, err
	}
	return unwrapPage(env)
}

// FeaturedProperties fetches the curated subset of listings.
func FeaturedProperties(ctx context.Context, hc *http.Client, baseURL string) ([]types.Property, error) {
	url := baseURL + "/properties/featured"
	env, err := get[types.APIResponse[[]types.Property]](ctx, hc, url)
	if err != nil {
		return nil, err
	}
	list, err := unwrap(env)
	if err != nil {
		return nil, err
	}
	return *list, nil
}

// CreateProperty creates a new listing. Requires an authenticated client.
func CreateProperty(ctx context.Context, hc *http.Client, baseURL string, req types.CreatePropertyRequest) (*types.Property, error) {
	env, err := post[types.APIResponse[types.Property]](ctx, hc, baseURL+"/properties", req)
	if err != nil {
		return nil, err
	}
	return unwrap(env)
}

// UpdateProperty replaces a listing's attributes. Requires an authenticated
// client.
func UpdateProperty(ctx context.Context, hc *http.Client, baseURL, propertyID string, req types.CreatePropertyRequest) (*types.Property, error) {
	if err := types.ValidateIDPresent(propertyID, "propertyId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/properties/%s", baseURL, propertyID)
	env, err := put[types.APIResponse[types.Property]](ctx, hc, url, req)
	if err != nil {
		return nil, err
	}
	return unwrap(env)
}

// DeleteProperty removes a listing. Requires an authenticated client.
func DeleteProperty(ctx context.Context, hc *http.Client, baseURL, propertyID string) error {
	if err := types.ValidateIDPresent(propertyID, "propertyId"); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/properties/%s", baseURL, propertyID)
	env, err := del[types.APIResponse[any]](ctx, hc, url)
	if err != nil {
		return err
	}
	_, err = unwrap(env)
	return err
}
