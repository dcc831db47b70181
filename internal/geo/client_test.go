package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(url string) *Client {
	return &Client{
		HTTPClient:  &http.Client{Timeout: time.Second},
		URL:         url,
		MaxAttempts: 3,
		Backoff:     time.Millisecond,
	}
}

func TestCountry_ResolvesOnFirstAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"country":"Norway"}`))
	}))
	defer srv.Close()

	if got := testClient(srv.URL).Country(context.Background()); got != "Norway" {
		t.Fatalf("country = %q, want Norway", got)
	}
}

func TestCountry_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"country":"Portugal"}`))
	}))
	defer srv.Close()

	if got := testClient(srv.URL).Country(context.Background()); got != "Portugal" {
		t.Fatalf("country = %q, want Portugal", got)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want 3", calls.Load())
	}
}

func TestCountry_AttemptCapSwallowsFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if got := testClient(srv.URL).Country(context.Background()); got != "" {
		t.Fatalf("country = %q, want empty on persistent failure", got)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want exactly the attempt cap", calls.Load())
	}
}

func TestCountry_EmptyBodyIsAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if got := testClient(srv.URL).Country(context.Background()); got != "" {
		t.Fatalf("country = %q, want empty for blank payload", got)
	}
}

func TestCountry_CancelledContextStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.Backoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan string, 1)
	go func() { done <- c.Country(ctx) }()
	select {
	case got := <-done:
		if got != "" {
			t.Fatalf("country = %q, want empty", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("cancelled lookup did not return promptly")
	}
}
