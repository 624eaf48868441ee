package types

// ------------------------------
// Response Types
// ------------------------------

// APIResponse is the uniform envelope the backend wraps every payload in.
// Exactly one of Data or Error is meaningful; Message may accompany either.
type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// PaginatedResponse is the envelope variant for list endpoints. The page
// metadata always reflects the request that produced it; no cursor is
// retained between calls.
type PaginatedResponse[T any] struct {
	Data       []T    `json:"data"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Session is the payload of a successful login or registration.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Health is the payload of the health endpoint.
type Health struct {
	Status string `json:"status"`
}
