// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/models"
)

const minPasswordLength = 6

// Manager owns the authenticated identity for a browser context. It is
// the single writer of the persisted token pair; every other component
// reads session state through it.
//
// States: no tokens (unauthenticated), tokens persisted and confirmed by
// the backend (authenticated). Possession of a token alone never counts:
// the backend must confirm it on every lookup.
type Manager struct {
	tokens   TokenStore
	provider IdentityProvider
	api      *apiclient.Client
}

func NewManager(tokens TokenStore, provider IdentityProvider, api *apiclient.Client) *Manager {
	return &Manager{tokens: tokens, provider: provider, api: api}
}

// Login exchanges the credential for a token pair, persists it, and
// confirms it with the backend. On any failure no partial session state
// survives: persisted tokens are cleared and the credential is dropped.
//
// Validation failures (ErrMalformedCredential, ErrWeakCredential) are
// detected before any network call.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, cred models.Credential) (*models.Session, error) {
	if err := validateCredential(cred); err != nil {
		return nil, err
	}

	pair, err := m.provider.PasswordGrant(ctx, strings.TrimSpace(cred.Email), cred.Password)
	if err != nil {
		return nil, err
	}

	if err := m.tokens.Save(w, r, pair); err != nil {
		m.tokens.Clear(w, r)
		return nil, err
	}

	sess, err := m.api.Auth.Me(apiclient.WithToken(ctx, pair.AccessToken))
	if err != nil {
		// Do not leave tokens dangling from the provider step.
		m.tokens.Clear(w, r)
		if models.IsAuthExpired(err) {
			return nil, ErrSessionRejected
		}
		return nil, err
	}
	return sess, nil
}

// Logout revokes the token best-effort and unconditionally clears the
// persisted pair. It is idempotent and cannot fail from the caller's
// perspective.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if pair, ok := m.tokens.Load(r); ok {
		if err := m.provider.Revoke(ctx, pair.AccessToken); err != nil {
			slog.Warn("token revocation failed", "error", err)
		}
	}
	m.tokens.Clear(w, r)
}

// CurrentUser resolves the session for the request. With no persisted
// token it returns (nil, nil) without touching the network. A token the
// backend rejects is cleared and also resolves to (nil, nil); only
// transport-level failures surface as errors.
func (m *Manager) CurrentUser(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Session, error) {
	pair, ok := m.tokens.Load(r)
	if !ok {
		return nil, nil
	}

	if tokenExpired(pair.AccessToken) {
		if pair.RefreshToken != "" {
			return m.Refresh(ctx, w, r)
		}
		m.tokens.Clear(w, r)
		return nil, nil
	}

	sess, err := m.api.Auth.Me(apiclient.WithToken(ctx, pair.AccessToken))
	if err != nil {
		if apiErr, isAPI := models.AsAPIError(err); isAPI && (apiErr.AuthExpired() || apiErr.Status == http.StatusForbidden) {
			m.tokens.Clear(w, r)
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

// Refresh exchanges the refresh token for a fresh pair. Any failure is
// treated as a full logout: tokens are cleared and (nil, nil) is
// returned.
func (m *Manager) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Session, error) {
	pair, _ := m.tokens.Load(r)
	if pair.RefreshToken == "" {
		m.tokens.Clear(w, r)
		return nil, nil
	}

	fresh, err := m.provider.RefreshGrant(ctx, pair.RefreshToken)
	if err != nil {
		slog.Info("token refresh failed, dropping session", "error", err)
		m.tokens.Clear(w, r)
		return nil, nil
	}
	if err := m.tokens.Save(w, r, fresh); err != nil {
		m.tokens.Clear(w, r)
		return nil, err
	}

	sess, err := m.api.Auth.Me(apiclient.WithToken(ctx, fresh.AccessToken))
	if err != nil {
		m.tokens.Clear(w, r)
		if models.IsAuthExpired(err) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

// Expire drops the persisted pair without contacting the provider. The
// handler layer calls this when any backend response reports an expired
// token, so the navigation redirect stays out of the HTTP client.
func (m *Manager) Expire(w http.ResponseWriter, r *http.Request) {
	m.tokens.Clear(w, r)
}

// Token returns the persisted access token for attaching to outgoing
// backend requests.
func (m *Manager) Token(r *http.Request) (string, bool) {
	pair, ok := m.tokens.Load(r)
	return pair.AccessToken, ok
}

func validateCredential(cred models.Credential) error {
	email := strings.TrimSpace(cred.Email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrMalformedCredential
	}
	if len(cred.Password) < minPasswordLength {
		return ErrWeakCredential
	}
	return nil
}

// tokenExpired is a cheap local staleness check on the access token. The
// identity provider issues JWTs, so an expiry claim is usually readable
// without verification; a token that does not parse is passed through for
// the backend to judge.
func tokenExpired(token string) bool {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
