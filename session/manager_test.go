// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/testutil"
)

const (
	testEmail    = "ana@chocorocks.ec"
	testPassword = "secret123"
)

func adminSession() models.Session {
	return models.Session{UserID: 1, Name: "Ana", Email: testEmail, Role: models.RoleAdmin, Authenticated: true}
}

func newTestManager(t *testing.T, tokens TokenStore) (*Manager, *testutil.Backend, *testutil.Identity) {
	t.Helper()
	backend := testutil.NewBackend(t)
	identity := testutil.NewIdentity(t, testEmail, testPassword)
	api := apiclient.New(backend.URL(), 5*time.Second)
	provider := NewIdentityProvider(identity.URL(), "anon-key", 5*time.Second)
	return NewManager(tokens, provider, api), backend, identity
}

func testRequest() (*httptest.ResponseRecorder, *http.Request) {
	return httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)
}

// With no persisted token, session lookup must resolve to "no session"
// without any network call.
func TestCurrentUserWithoutTokenMakesNoNetworkCall(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{})
	mgr, backend, identity := newTestManager(t, tokens)

	w, r := testRequest()
	sess, err := mgr.CurrentUser(context.Background(), w, r)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if sess != nil {
		t.Errorf("CurrentUser() = %+v, want nil", sess)
	}
	if backend.RequestCount() != 0 {
		t.Errorf("backend saw %d requests, want 0", backend.RequestCount())
	}
	if identity.GrantCount() != 0 {
		t.Errorf("identity provider saw %d grants, want 0", identity.GrantCount())
	}
}

func TestLoginSuccess(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{})
	mgr, backend, _ := newTestManager(t, tokens)
	backend.AllowSession("test-access-token", adminSession())

	w, r := testRequest()
	sess, err := mgr.Login(context.Background(), w, r, models.Credential{Email: testEmail, Password: testPassword})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if sess.UserID != 1 || sess.Role != models.RoleAdmin || !sess.Authenticated {
		t.Errorf("Login() session = %+v", sess)
	}
	if tokens.Pair().AccessToken != "test-access-token" {
		t.Errorf("persisted access token = %q", tokens.Pair().AccessToken)
	}
	if tokens.Pair().RefreshToken != "test-refresh-token" {
		t.Errorf("persisted refresh token = %q", tokens.Pair().RefreshToken)
	}
}

// Validation failures must be detected before any network call.
func TestLoginValidationFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		cred    models.Credential
		wantErr error
	}{
		{"short password", models.Credential{Email: "user@x.com", Password: "short"}, ErrWeakCredential},
		{"empty password", models.Credential{Email: "user@x.com", Password: ""}, ErrWeakCredential},
		{"missing email", models.Credential{Email: "", Password: "secret123"}, ErrMalformedCredential},
		{"not an email", models.Credential{Email: "not-an-email", Password: "secret123"}, ErrMalformedCredential},
		{"trailing at", models.Credential{Email: "user@", Password: "secret123"}, ErrMalformedCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := testutil.NewStaticTokens(models.TokenPair{})
			mgr, backend, identity := newTestManager(t, tokens)

			w, r := testRequest()
			_, err := mgr.Login(context.Background(), w, r, tt.cred)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if backend.RequestCount() != 0 || identity.GrantCount() != 0 {
				t.Error("validation failure reached the network")
			}
		})
	}
}

func TestLoginRejectedByProvider(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{})
	mgr, _, _ := newTestManager(t, tokens)

	w, r := testRequest()
	_, err := mgr.Login(context.Background(), w, r, models.Credential{Email: testEmail, Password: "wrong-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
	if tokens.Pair().AccessToken != "" {
		t.Error("tokens persisted after a rejected login")
	}
}

// The identity provider accepting the credential is not enough: if the
// backend rejects the fresh token, login fails and nothing dangles.
func TestLoginBackendRejectsFreshToken(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{})
	mgr, backend, _ := newTestManager(t, tokens)
	backend.Handle("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "unknown user"})
	})

	w, r := testRequest()
	_, err := mgr.Login(context.Background(), w, r, models.Credential{Email: testEmail, Password: testPassword})
	if !errors.Is(err, ErrSessionRejected) {
		t.Errorf("Login() error = %v, want ErrSessionRejected", err)
	}
	if tokens.Pair().AccessToken != "" || tokens.Pair().RefreshToken != "" {
		t.Errorf("tokens left dangling after backend rejection: %+v", tokens.Pair())
	}
	if tokens.ClearCount() == 0 {
		t.Error("token store was never cleared")
	}
}

// Once the backend rejects a token, session lookups stay "no session"
// and make no further calls until a new login.
func TestTokenInvalidationIsAbsorbing(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{AccessToken: "stale-token", RefreshToken: ""})
	mgr, backend, _ := newTestManager(t, tokens)
	backend.AllowSession("some-other-token", adminSession())

	w, r := testRequest()
	sess, err := mgr.CurrentUser(context.Background(), w, r)
	if err != nil || sess != nil {
		t.Fatalf("CurrentUser() = %v, %v; want nil, nil", sess, err)
	}
	if tokens.Pair().AccessToken != "" {
		t.Error("stale token survived rejection")
	}
	seen := backend.RequestCount()

	w, r = testRequest()
	sess, err = mgr.CurrentUser(context.Background(), w, r)
	if err != nil || sess != nil {
		t.Fatalf("second CurrentUser() = %v, %v; want nil, nil", sess, err)
	}
	if backend.RequestCount() != seen {
		t.Error("lookup after invalidation hit the network")
	}
}

func TestCurrentUserConfirmedByBackend(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{AccessToken: "good-token"})
	mgr, backend, _ := newTestManager(t, tokens)
	backend.AllowSession("good-token", adminSession())

	w, r := testRequest()
	sess, err := mgr.CurrentUser(context.Background(), w, r)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if sess == nil || sess.UserID != 1 {
		t.Errorf("CurrentUser() = %+v", sess)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{AccessToken: "tok", RefreshToken: "ref"})
	mgr, _, identity := newTestManager(t, tokens)

	w, r := testRequest()
	mgr.Logout(context.Background(), w, r)
	if tokens.Pair().AccessToken != "" {
		t.Error("tokens survived logout")
	}
	if identity.RevokeCount() != 1 {
		t.Errorf("revoke count = %d, want 1", identity.RevokeCount())
	}

	// Second logout with no session: no revocation, no panic
	w, r = testRequest()
	mgr.Logout(context.Background(), w, r)
	if identity.RevokeCount() != 1 {
		t.Errorf("revoke count after second logout = %d, want still 1", identity.RevokeCount())
	}
}

func TestLogoutSurvivesRevocationFailure(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{AccessToken: "tok"})
	backend := testutil.NewBackend(t)
	identity := testutil.NewIdentity(t, testEmail, testPassword)
	identityURL := identity.URL()
	identity.Server.Close()

	api := apiclient.New(backend.URL(), time.Second)
	provider := NewIdentityProvider(identityURL, "anon-key", time.Second)
	mgr := NewManager(tokens, provider, api)

	w, r := testRequest()
	mgr.Logout(context.Background(), w, r)
	if tokens.Pair().AccessToken != "" {
		t.Error("tokens survived logout with a dead provider")
	}
}

func TestRefreshFailureIsFullLogout(t *testing.T) {
	tokens := testutil.NewStaticTokens(models.TokenPair{AccessToken: "tok", RefreshToken: "wrong-refresh"})
	mgr, _, _ := newTestManager(t, tokens)

	w, r := testRequest()
	sess, err := mgr.Refresh(context.Background(), w, r)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if sess != nil {
		t.Errorf("Refresh() = %+v, want nil", sess)
	}
	if tokens.Pair().AccessToken != "" || tokens.Pair().RefreshToken != "" {
		t.Error("tokens survived a failed refresh")
	}
}

// An access token whose JWT expiry has passed triggers a silent refresh
// before the backend confirmation.
func TestExpiredAccessTokenIsRefreshed(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	expiredToken, err := expired.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("signing fixture token: %v", err)
	}

	tokens := testutil.NewStaticTokens(models.TokenPair{AccessToken: expiredToken, RefreshToken: "test-refresh-token"})
	mgr, backend, identity := newTestManager(t, tokens)
	backend.AllowSession("test-access-token", adminSession())

	w, r := testRequest()
	sess, err := mgr.CurrentUser(context.Background(), w, r)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if sess == nil {
		t.Fatal("CurrentUser() = nil, want a session after refresh")
	}
	if identity.GrantCount() != 1 {
		t.Errorf("grant count = %d, want 1 refresh grant", identity.GrantCount())
	}
	if tokens.Pair().AccessToken != "test-access-token" {
		t.Errorf("access token after refresh = %q", tokens.Pair().AccessToken)
	}
}
