// Package stub is an in-memory implementation of the Nido listings API for
// local development and integration tests. It serves the same routes and
// envelopes as the hosted backend, seeded with a handful of accounts and
// listings, and keeps everything in process memory.
package stub

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"golang.org/x/crypto/bcrypt"

	"github.com/nidohq/nido-go/internal/types"
)

// nearPrecision is the geohash prefix length used for "near" matching;
// 5 characters is roughly a 5 km cell.
const nearPrecision = 5

type account struct {
	user         types.User
	passwordHash []byte
}

// Store holds the stub's listings and accounts. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	props    map[string]types.Property
	accounts map[string]*account // keyed by lowercase email
}

// NewStore returns a store seeded with development accounts and listings.
//
// Seed accounts (password is the part before the @ plus "123"):
//
//	admin@nido.dev / admin123  (admin)
//	agent@nido.dev / agent123  (agent)
//	buyer@nido.dev / buyer123  (buyer)
func NewStore() *Store {
	s := &Store{
		props:    make(map[string]types.Property),
		accounts: make(map[string]*account),
	}
	s.seedAccount("admin@nido.dev", "admin123", "Ada", "Admin", "admin")
	s.seedAccount("agent@nido.dev", "agent123", "Alex", "Agent", "agent")
	s.seedAccount("buyer@nido.dev", "buyer123", "Bo", "Buyer", "buyer")
	s.seedListings()
	return s
}

func (s *Store) seedAccount(email, password, first, last, role string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err) // seed data, cannot fail at runtime
	}
	s.accounts[strings.ToLower(email)] = &account{
		user: types.User{
			ID:        uuid.NewString(),
			Email:     email,
			FirstName: first,
			LastName:  last,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		},
		passwordHash: hash,
	}
}

func (s *Store) seedListings() {
	seeds := []types.Property{
		{Title: "Riverside loft", City: "Porto", Region: "Norte", ListingType: types.ListingSale, Price: 285000, Bedrooms: 2, Bathrooms: 1, Area: 86, Latitude: 41.1446, Longitude: -8.6110, Featured: true},
		{Title: "Alfama studio", City: "Lisbon", Region: "Lisboa", ListingType: types.ListingRent, Price: 1150, Bedrooms: 1, Bathrooms: 1, Area: 42, Latitude: 38.7118, Longitude: -9.1285, Featured: true},
		{Title: "Belém townhouse", City: "Lisbon", Region: "Lisboa", ListingType: types.ListingSale, Price: 640000, Bedrooms: 4, Bathrooms: 3, Area: 198, Latitude: 38.6979, Longitude: -9.2063},
		{Title: "Douro valley farmhouse", City: "Peso da Régua", Region: "Norte", ListingType: types.ListingSale, Price: 410000, Bedrooms: 5, Bathrooms: 2, Area: 320, Latitude: 41.1629, Longitude: -7.7895},
		{Title: "Foz beach apartment", City: "Porto", Region: "Norte", ListingType: types.ListingRent, Price: 1750, Bedrooms: 3, Bathrooms: 2, Area: 120, Latitude: 41.1523, Longitude: -8.6812, Featured: true},
		{Title: "Coimbra student flat", City: "Coimbra", Region: "Centro", ListingType: types.ListingRent, Price: 680, Bedrooms: 2, Bathrooms: 1, Area: 58, Latitude: 40.2056, Longitude: -8.4196},
		{Title: "Algarve villa with pool", City: "Lagos", Region: "Algarve", ListingType: types.ListingSale, Price: 980000, Bedrooms: 4, Bathrooms: 4, Area: 260, Latitude: 37.1028, Longitude: -8.6730, Featured: true},
		{Title: "Braga garden duplex", City: "Braga", Region: "Norte", ListingType: types.ListingSale, Price: 325000, Bedrooms: 3, Bathrooms: 2, Area: 140, Latitude: 41.5454, Longitude: -8.4265},
	}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, p := range seeds {
		p.ID = fmt.Sprintf("prop-%03d", i+1)
		p.Status = "active"
		p.Currency = "EUR"
		p.Geohash = geohash.Encode(p.Latitude, p.Longitude)
		p.CreatedAt = base.Add(time.Duration(i) * 24 * time.Hour)
		p.UpdatedAt = p.CreatedAt
		s.props[p.ID] = p
	}
}

// Authenticate checks credentials against the seeded and registered
// accounts.
func (s *Store) Authenticate(email, password string) (*types.User, bool) {
	s.mu.RLock()
	acc, ok := s.accounts[strings.ToLower(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, false
	}
	u := acc.user
	return &u, true
}

// CreateAccount registers a new buyer account.
func (s *Store) CreateAccount(req types.RegisterRequest) (*types.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(req.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[key]; exists {
		return nil, fmt.Errorf("email %s is already registered", req.Email)
	}
	u := types.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      "buyer",
		CreatedAt: time.Now().UTC(),
	}
	s.accounts[key] = &account{user: u, passwordHash: hash}
	return &u, nil
}

// UserByID resolves a user from a token subject.
func (s *Store) UserByID(id string) (*types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.user.ID == id {
			u := acc.user
			return &u, true
		}
	}
	return nil, false
}

// sorted returns all listings ordered by creation time, newest first.
func (s *Store) sorted() []types.Property {
	out := make([]types.Property, 0, len(s.props))
	for _, p := range s.props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// List returns one page of listings plus the total count.
func (s *Store) List(page, limit int) ([]types.Property, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.sorted(), page, limit)
}

// Get returns a listing by ID.
func (s *Store) Get(id string) (*types.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.props[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Featured returns all listings flagged as featured.
func (s *Store) Featured() []types.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.Property
	for _, p := range s.sorted() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Search returns one page of listings matching the filters, plus the total
// match count.
func (s *Store) Search(f types.SearchFilters, page, limit int) ([]types.Property, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []types.Property
	for _, p := range s.sorted() {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, page, limit)
}

// Create inserts a listing on behalf of agentID and returns it with server
// fields populated.
func (s *Store) Create(req types.CreatePropertyRequest, agentID string) types.Property {
	now := time.Now().UTC()
	p := propertyFromRequest(req)
	p.ID = "prop-" + uuid.NewString()[:8]
	p.Status = "active"
	p.AgentID = agentID
	p.CreatedAt = now
	p.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.props[p.ID] = p
	return p
}

// Update replaces a listing's mutable attributes.
func (s *Store) Update(id string, req types.CreatePropertyRequest) (*types.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.props[id]
	if !ok {
		return nil, false
	}
	p := propertyFromRequest(req)
	p.ID = old.ID
	p.Status = old.Status
	p.AgentID = old.AgentID
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	s.props[id] = p
	return &p, true
}

// Delete removes a listing.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.props[id]; !ok {
		return false
	}
	delete(s.props, id)
	return true
}

func propertyFromRequest(req types.CreatePropertyRequest) types.Property {
	p := types.Property{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		ListingType: req.ListingType,
		City:        req.City,
		Region:      req.Region,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Images:      req.Images,
		Featured:    req.Featured,
	}
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	if p.Latitude != 0 || p.Longitude != 0 {
		p.Geohash = geohash.Encode(p.Latitude, p.Longitude)
	}
	return p
}

func matches(p types.Property, f types.SearchFilters) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.City), q) {
			return false
		}
	}
	if f.City != "" && !strings.EqualFold(f.City, p.City) {
		return false
	}
	if f.Region != "" && !strings.EqualFold(f.Region, p.Region) {
		return false
	}
	if f.ListingType != "" && f.ListingType != p.ListingType {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.MinBathrooms != nil && p.Bathrooms < *f.MinBathrooms {
		return false
	}
	if f.MinArea != nil && p.Area < *f.MinArea {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Near != nil {
		want := geohash.EncodeWithPrecision(f.Near.Latitude, f.Near.Longitude, nearPrecision)
		if len(p.Geohash) < nearPrecision || p.Geohash[:nearPrecision] != want {
			return false
		}
	}
	return true
}

func paginate(list []types.Property, page, limit int) ([]types.Property, int) {
	total := len(list)
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 12
	}
	start := (page - 1) * limit
	if start >= total {
		return nil, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return list[start:end], total
}
