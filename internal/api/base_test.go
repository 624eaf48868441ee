package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nidohq/nido-go/internal/httperr"
	"github.com/nidohq/nido-go/internal/types"
)

func TestRequest_TransportError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	_, err := ListProperties(context.Background(), hc, "http://unreachable.invalid", 1, 1)
	var te *httperr.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestRequest_DecodeError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := GetProperty(context.Background(), srv.Client(), srv.URL, "p1")
	var te *httperr.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestRequest_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv, rec := newRecordingServer(t, http.StatusOK, types.APIResponse[types.Health]{Data: types.Health{Status: "ok"}})
	if err := Ping(ctx, srv.Client(), srv.URL); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if rec.calls != 0 {
		t.Fatal("request issued on canceled context")
	}
}

func TestRequest_StatusErrorCarriesBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"minPrice must be positive"}`))
	}))
	defer srv.Close()

	_, err := SearchProperties(context.Background(), srv.Client(), srv.URL, types.SearchFilters{}, 1)
	var se *httperr.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusBadRequest {
		t.Fatalf("expected StatusError{400}, got %v", err)
	}
	if se.Body == "" {
		t.Fatal("status error body not captured")
	}
}

func TestPing(t *testing.T) {
	t.Parallel()
	srv, rec := newRecordingServer(t, http.StatusOK, types.APIResponse[types.Health]{Data: types.Health{Status: "ok"}})
	if err := Ping(context.Background(), srv.Client(), srv.URL); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if rec.method != http.MethodGet || rec.path != "/health" {
		t.Fatalf("got %s %s", rec.method, rec.path)
	}
}
