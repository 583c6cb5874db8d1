// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/chocorocks/gateway/cliparse"
	"github.com/chocorocks/gateway/models"
)

// RecordedRequest is one request the fake backend saw.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
}

// Backend is a fake Chocorocks backend on httptest. Every request is
// recorded so tests can assert on call counts and headers.
type Backend struct {
	Server *httptest.Server

	mux      *http.ServeMux
	mu       sync.Mutex
	requests []RecordedRequest
}

// NewBackend starts a fake backend that is torn down with the test.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{mux: http.NewServeMux()}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
		})
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.Server.Close)
	return b
}

// URL is the backend base URL to hand to apiclient.New.
func (b *Backend) URL() string {
	return b.Server.URL
}

// Handle registers a route on the fake backend (Go 1.22+ patterns).
func (b *Backend) Handle(pattern string, handler http.HandlerFunc) {
	b.mux.HandleFunc(pattern, handler)
}

// AllowSession registers /auth/me to confirm exactly one bearer token.
func (b *Backend) AllowSession(token string, sess models.Session) {
	b.Handle("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid or expired token"})
			return
		}
		WriteJSON(w, http.StatusOK, sess)
	})
}

// Requests returns a copy of everything the backend has seen.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestCount returns how many requests the backend has seen.
func (b *Backend) RequestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Identity is a fake identity provider accepting one credential.
type Identity struct {
	Server *httptest.Server

	Email        string
	Password     string
	AccessToken  string
	RefreshToken string

	mu      sync.Mutex
	revoked int
	grants  int
}

// NewIdentity starts a fake identity provider that issues a fixed token
// pair for the given credential.
func NewIdentity(t *testing.T, email, password string) *Identity {
	t.Helper()

	i := &Identity{
		Email:        email,
		Password:     password,
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email        string `json:"email"`
			Password     string `json:"password"`
			RefreshToken string `json:"refresh_token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		granted := false
		switch r.URL.Query().Get("grant_type") {
		case "password":
			granted = body.Email == i.Email && body.Password == i.Password
		case "refresh_token":
			granted = body.RefreshToken == i.RefreshToken
		}
		if !granted {
			WriteJSON(w, http.StatusBadRequest, map[string]string{
				"error_description": "Invalid login credentials",
			})
			return
		}

		i.mu.Lock()
		i.grants++
		i.mu.Unlock()
		WriteJSON(w, http.StatusOK, map[string]any{
			"access_token":  i.AccessToken,
			"refresh_token": i.RefreshToken,
			"expires_in":    3600,
		})
	})
	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		i.mu.Lock()
		i.revoked++
		i.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	i.Server = httptest.NewServer(mux)
	t.Cleanup(i.Server.Close)
	return i
}

func (i *Identity) URL() string {
	return i.Server.URL
}

// RevokeCount returns how many logout calls the provider has seen.
func (i *Identity) RevokeCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.revoked
}

// GrantCount returns how many token grants the provider has issued.
func (i *Identity) GrantCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.grants
}

// StaticTokens is an in-memory token store so tests can fix session
// state without cookie plumbing.
type StaticTokens struct {
	mu      sync.Mutex
	pair    models.TokenPair
	has     bool
	cleared int
}

// NewStaticTokens seeds the store. A zero pair means "no session".
func NewStaticTokens(pair models.TokenPair) *StaticTokens {
	return &StaticTokens{pair: pair, has: pair.AccessToken != ""}
}

func (s *StaticTokens) Load(r *http.Request) (models.TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, s.has
}

func (s *StaticTokens) Save(w http.ResponseWriter, r *http.Request, pair models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	s.has = pair.AccessToken != ""
	return nil
}

func (s *StaticTokens) Clear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = models.TokenPair{}
	s.has = false
	s.cleared++
}

// ClearCount returns how many times the store was cleared.
func (s *StaticTokens) ClearCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

// Pair returns the currently stored pair.
func (s *StaticTokens) Pair() models.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		BackendURL:     "http://backend.test",
		IdentityURL:    "http://identity.test",
		IdentityKey:    "test-anon-key",
		CookieSecret:   "test-cookie-secret",
		Environment:    "development",
		RequestTimeout: 5 * time.Second,
	}
}
