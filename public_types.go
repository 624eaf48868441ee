package nido

import "github.com/nidohq/nido-go/internal/types"

// Public type aliases so SDK consumers can import only the nido package.
type (
	// Domain entities
	Property = types.Property
	User     = types.User
	GeoPoint = types.GeoPoint

	// Requests
	SearchFilters         = types.SearchFilters
	LoginRequest          = types.LoginRequest
	RegisterRequest       = types.RegisterRequest
	CreatePropertyRequest = types.CreatePropertyRequest

	// Responses
	Session = types.Session
)

// Envelope aliases (generic).
type (
	APIResponse[T any]       = types.APIResponse[T]
	PaginatedResponse[T any] = types.PaginatedResponse[T]
)

// Listing type values accepted in filters and listing payloads.
const (
	ListingSale = types.ListingSale
	ListingRent = types.ListingRent
)

// Errors re-exported in errors.go
