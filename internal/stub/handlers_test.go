package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	nido "github.com/nidohq/nido-go"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(Config{}, NewStore(), logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func login(t *testing.T, ts *httptest.Server, email, password string) *nido.Session {
	t.Helper()
	anon, err := nido.New(ts.URL, nido.WithHTTPClient(ts.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sess, err := anon.Login(context.Background(), nido.LoginRequest{Email: email, Password: password})
	if err != nil {
		t.Fatalf("Login(%s): %v", email, err)
	}
	return sess
}

func authedClient(t *testing.T, ts *httptest.Server, token string) *nido.Client {
	t.Helper()
	c, err := nido.New(ts.URL, nido.WithHTTPClient(ts.Client()), nido.WithAuthToken(token))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestStub_PublicListingFlow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	c, err := nido.New(ts.URL, nido.WithHTTPClient(ts.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	page, err := c.ListProperties(ctx, 1, 5)
	if err != nil || len(page.Data) != 5 || page.Limit != 5 || page.Total < 5 {
		t.Fatalf("ListProperties unexpected: page=%+v err=%v", page, err)
	}

	got, err := c.GetProperty(ctx, page.Data[0].ID)
	if err != nil || got.ID != page.Data[0].ID {
		t.Fatalf("GetProperty unexpected: got=%+v err=%v", got, err)
	}

	if _, err := c.GetProperty(ctx, "prop-999"); !nido.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}

	featured, err := c.FeaturedProperties(ctx)
	if err != nil || len(featured) == 0 {
		t.Fatalf("FeaturedProperties unexpected: %v %v", featured, err)
	}
	for _, p := range featured {
		if !p.Featured {
			t.Fatalf("non-featured listing returned: %+v", p)
		}
	}

	results, err := c.SearchProperties(ctx, nido.SearchFilters{City: "Lisbon"}, 1)
	if err != nil || results.Total == 0 {
		t.Fatalf("SearchProperties unexpected: %+v err=%v", results, err)
	}
	for _, p := range results.Data {
		if p.City != "Lisbon" {
			t.Fatalf("search leaked %+v", p)
		}
	}
}

func TestStub_SearchRejectsInvalidFilters(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	for _, body := range []string{
		`{"minPrice": -5}`,
		`{"listingType": "lease"}`,
		`{"near": {"lat": 91, "lng": 0}}`,
		`{"unknownField": true}`,
		`not json`,
	} {
		resp, err := ts.Client().Post(ts.URL+"/properties/search", "application/json", bytes.NewBufferString(body))
		if err != nil {
			t.Fatalf("POST search: %v", err)
		}
		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %q -> status %d, want 400 (%s)", body, resp.StatusCode, raw)
		}
		var env map[string]any
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("400 response is not JSON: %s", raw)
		}
		if msg, _ := env["error"].(string); msg == "" {
			t.Fatalf("400 response is not an error envelope: %s", raw)
		}
	}
}

func TestStub_AuthFlow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	sess := login(t, ts, "buyer@nido.dev", "buyer123")
	if sess.Token == "" || sess.User.Role != "buyer" {
		t.Fatalf("session incomplete: %+v", sess)
	}

	c := authedClient(t, ts, sess.Token)
	u, err := c.Profile(ctx)
	if err != nil || u.Email != "buyer@nido.dev" {
		t.Fatalf("Profile unexpected: %+v err=%v", u, err)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	// The revoked token must stop working.
	if _, err := c.Profile(ctx); !nido.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 after logout, got %v", err)
	}
}

func TestStub_WrongCredentials(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	anon, err := nido.New(ts.URL, nido.WithHTTPClient(ts.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = anon.Login(context.Background(), nido.LoginRequest{Email: "buyer@nido.dev", Password: "nope"})
	if !nido.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestStub_RegisterThenLogin(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()
	anon, err := nido.New(ts.URL, nido.WithHTTPClient(ts.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sess, err := anon.Register(ctx, nido.RegisterRequest{Email: "fresh@nido.dev", Password: "secret1", FirstName: "Fresh"})
	if err != nil || sess.User.Role != "buyer" {
		t.Fatalf("Register unexpected: %+v err=%v", sess, err)
	}

	c := authedClient(t, ts, sess.Token)
	if _, err := c.Profile(ctx); err != nil {
		t.Fatalf("Profile with fresh token: %v", err)
	}

	_, err = anon.Register(ctx, nido.RegisterRequest{Email: "fresh@nido.dev", Password: "secret1"})
	if !nido.IsStatus(err, http.StatusConflict) {
		t.Fatalf("duplicate registration: %v", err)
	}
}

func TestStub_ListingCRUDRequiresAgentRole(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	req := nido.CreatePropertyRequest{
		Title: "Agent listing", City: "Faro", ListingType: nido.ListingSale,
		Price: 220000, Latitude: 37.0194, Longitude: -7.9304,
	}

	buyer := authedClient(t, ts, login(t, ts, "buyer@nido.dev", "buyer123").Token)
	if _, err := buyer.CreateProperty(ctx, req); !nido.IsStatus(err, http.StatusForbidden) {
		t.Fatalf("buyer create: expected 403, got %v", err)
	}

	agent := authedClient(t, ts, login(t, ts, "agent@nido.dev", "agent123").Token)
	created, err := agent.CreateProperty(ctx, req)
	if err != nil || created.ID == "" || created.Geohash == "" {
		t.Fatalf("agent create unexpected: %+v err=%v", created, err)
	}

	req.Title = "Agent listing (reduced)"
	req.Price = 210000
	updated, err := agent.UpdateProperty(ctx, created.ID, req)
	if err != nil || updated.Price != 210000 {
		t.Fatalf("update unexpected: %+v err=%v", updated, err)
	}

	if err := agent.DeleteProperty(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := agent.GetProperty(ctx, created.ID); !nido.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestStub_AnonymousCannotMutate(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	resp, err := ts.Client().Post(ts.URL+"/properties", "application/json", strings.NewReader(`{"title":"x"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous create -> %d, want 401", resp.StatusCode)
	}
}
