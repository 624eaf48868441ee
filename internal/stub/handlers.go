package stub

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nidohq/nido-go/internal/types"
)

const defaultPageLimit = 12

// maxSearchBody bounds how much of a search payload is read.
const maxSearchBody = 64 << 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, map[string]any{"data": v})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func writePage(w http.ResponseWriter, items []types.Property, page, limit, total int) {
	if items == nil {
		items = []types.Property{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	writeJSON(w, http.StatusOK, types.PaginatedResponse[types.Property]{
		Data:       items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, types.Health{Status: "ok"})
}

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageLimit)
	items, total := s.store.List(page, limit)
	writePage(w, items, page, limit, total)
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "propertyID")
	p, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "property "+id+" not found")
		return
	}
	writeData(w, http.StatusOK, p)
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	items := s.store.Featured()
	if items == nil {
		items = []types.Property{}
	}
	writeData(w, http.StatusOK, items)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSearchBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	if err := validateSearchPayload(raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var filters types.SearchFilters
	if err := json.Unmarshal(raw, &filters); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode filters")
		return
	}
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageLimit)
	items, total := s.store.Search(filters, page, limit)
	writePage(w, items, page, limit, total)
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode listing")
		return
	}
	if req.Title == "" || req.City == "" || req.ListingType == "" {
		writeError(w, http.StatusBadRequest, "title, city and listingType are required")
		return
	}
	claims := claimsFromContext(r.Context())
	p := s.store.Create(req, claims.Subject)
	writeData(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "propertyID")
	var req types.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode listing")
		return
	}
	p, ok := s.store.Update(id, req)
	if !ok {
		writeError(w, http.StatusNotFound, "property "+id+" not found")
		return
	}
	writeData(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "propertyID")
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, "property "+id+" not found")
		return
	}
	writeMessage(w, http.StatusOK, "deleted")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode credentials")
		return
	}
	u, ok := s.store.Authenticate(req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	token, err := s.issueToken(*u)
	if err != nil {
		s.log.Error("signing token failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeData(w, http.StatusOK, types.Session{Token: token, User: *u})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode registration")
		return
	}
	if err := types.ValidateRegister(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := s.store.CreateAccount(req)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	token, err := s.issueToken(*u)
	if err != nil {
		s.log.Error("signing token failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeData(w, http.StatusCreated, types.Session{Token: token, User: *u})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	s.revokeToken(claims.ID)
	writeMessage(w, http.StatusOK, "logged out")
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	u, ok := s.store.UserByID(claims.Subject)
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeData(w, http.StatusOK, u)
}
