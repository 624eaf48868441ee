package types

// ------------------------------
// Request Types
// ------------------------------

// SearchFilters narrows a property search. Every field is optional; zero
// values are omitted from the serialized payload.
type SearchFilters struct {
	Query        string    `json:"query,omitempty"`
	City         string    `json:"city,omitempty"`
	Region       string    `json:"region,omitempty"`
	ListingType  string    `json:"listingType,omitempty"`
	MinPrice     *float64  `json:"minPrice,omitempty"`
	MaxPrice     *float64  `json:"maxPrice,omitempty"`
	MinBedrooms  *int      `json:"minBedrooms,omitempty"`
	MinBathrooms *int      `json:"minBathrooms,omitempty"`
	MinArea      *float64  `json:"minArea,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
	Near         *GeoPoint `json:"near,omitempty"`
}

// LoginRequest holds credentials for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for a new account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// CreatePropertyRequest holds parameters for a new or updated listing.
type CreatePropertyRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	ListingType string   `json:"listingType"`
	City        string   `json:"city"`
	Region      string   `json:"region,omitempty"`
	Address     string   `json:"address,omitempty"`
	Latitude    float64  `json:"lat,omitempty"`
	Longitude   float64  `json:"lng,omitempty"`
	Bedrooms    int      `json:"bedrooms,omitempty"`
	Bathrooms   int      `json:"bathrooms,omitempty"`
	Area        float64  `json:"area,omitempty"`
	Images      []string `json:"images,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}
