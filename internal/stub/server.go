package stub

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// Config holds the stub server's settings. Zero values get development
// defaults.
type Config struct {
	Addr           string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

// Server serves the stub API over HTTP.
type Server struct {
	cfg   Config
	store *Store
	log   *slog.Logger

	mu      sync.Mutex
	revoked map[string]struct{}

	httpServer *http.Server
}

// NewServer wires the router and handlers. The returned server is ready for
// Start, or its Handler can be mounted on an httptest server.
func NewServer(cfg Config, store *Store, logger *slog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8090"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "nido-stub-dev-secret"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:     cfg,
		store:   store,
		log:     logger,
		revoked: make(map[string]struct{}),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, s.requestID, s.requestLogger, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", s.handleListProperties)
		r.Get("/featured", s.handleFeatured)
		r.Post("/search", s.handleSearch)
		r.Get("/{propertyID}", s.handleGetProperty)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth, s.requireRole("agent", "admin"))
			r.Post("/", s.handleCreateProperty)
			r.Put("/{propertyID}", s.handleUpdateProperty)
			r.Delete("/{propertyID}", s.handleDeleteProperty)
		})
	})

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/register", s.handleRegister)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/user/profile", s.handleProfile)
	})

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for in-process tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start blocks serving HTTP until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.log.Info("starting stub server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("stopping stub server")
	return s.httpServer.Shutdown(ctx)
}

// requestID ensures every request carries an X-Request-Id and echoes it on
// the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-Id", id)
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", r.Header.Get("X-Request-Id"),
		)
	})
}
