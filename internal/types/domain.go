package types

import "time"

// ------------------------------
// Domain Entities
// ------------------------------

// Listing type values used by the backend.
const (
	ListingSale = "sale"
	ListingRent = "rent"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Property is a single listing as returned by the backend.
type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency,omitempty"`
	ListingType string    `json:"listingType"`
	Status      string    `json:"status,omitempty"`
	City        string    `json:"city"`
	Region      string    `json:"region,omitempty"`
	Address     string    `json:"address,omitempty"`
	Latitude    float64   `json:"lat,omitempty"`
	Longitude   float64   `json:"lng,omitempty"`
	Geohash     string    `json:"geohash,omitempty"`
	Bedrooms    int       `json:"bedrooms,omitempty"`
	Bathrooms   int       `json:"bathrooms,omitempty"`
	Area        float64   `json:"area,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
	AgentID     string    `json:"agentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// User is an authenticated principal.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
