package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMapboxForward(t *testing.T) {
	var gotPath, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"center":[-115.1767,36.1132]}]}`))
	}))
	defer server.Close()

	client := NewMapboxClient("test-key")
	client.BaseURL = server.URL

	lon, lat, ok, err := client.Forward("3600 S Las Vegas Blvd", "Las Vegas", "Nevada")
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if !ok {
		t.Fatal("Forward() ok = false, want true")
	}
	if lon != -115.1767 || lat != 36.1132 {
		t.Errorf("Forward() = (%v, %v), want (-115.1767, 36.1132)", lon, lat)
	}
	if gotToken != "test-key" {
		t.Errorf("access_token = %q, want %q", gotToken, "test-key")
	}
	if gotPath == "" {
		t.Error("no request path recorded")
	}
}

func TestMapboxForwardNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	client := NewMapboxClient("test-key")
	client.BaseURL = server.URL

	_, _, ok, err := client.Forward("Nowhere St", "Atlantis", "Ocean")
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if ok {
		t.Error("Forward() ok = true for empty feature list, want false")
	}
}

func TestMapboxForwardWithoutAPIKey(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := NewMapboxClient("")
	client.BaseURL = server.URL

	_, _, ok, err := client.Forward("Somewhere", "Las Vegas", "Nevada")
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if ok {
		t.Error("Forward() ok = true without API key, want false")
	}
	if requested {
		t.Error("lookup was attempted without an API key")
	}
}

func TestMapboxForwardServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewMapboxClient("bad-key")
	client.BaseURL = server.URL

	_, _, ok, err := client.Forward("Somewhere", "Las Vegas", "Nevada")
	if err == nil {
		t.Error("expected error for non-200 response, got nil")
	}
	if ok {
		t.Error("Forward() ok = true on error, want false")
	}
}
