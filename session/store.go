// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/chocorocks/gateway/models"
)

// Cookie names for the persisted token pair
const (
	AccessCookieName  = "auth-token"
	RefreshCookieName = "refresh-token"
)

const (
	tokenTTL = 7 * 24 * time.Hour
	valueKey = "value"
)

// TokenStore persists the opaque token pair between requests. The cookie
// implementation is the only one used in production; tests inject fakes
// so session state can be fixed without cookie plumbing.
type TokenStore interface {
	Load(r *http.Request) (models.TokenPair, bool)
	Save(w http.ResponseWriter, r *http.Request, pair models.TokenPair) error
	Clear(w http.ResponseWriter, r *http.Request)
}

// CookieTokenStore keeps the token pair in two signed cookies with a
// 7-day expiry, SameSite=Strict and the Secure flag in production.
type CookieTokenStore struct {
	store *sessions.CookieStore
}

func NewCookieTokenStore(secret []byte, secure bool) *CookieTokenStore {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
	cs.MaxAge(cs.Options.MaxAge)
	return &CookieTokenStore{store: cs}
}

// Load returns the persisted pair. A missing or undecodable cookie is
// treated as "no token", never as an error.
func (s *CookieTokenStore) Load(r *http.Request) (models.TokenPair, bool) {
	var pair models.TokenPair
	if sess, err := s.store.Get(r, AccessCookieName); err == nil {
		pair.AccessToken, _ = sess.Values[valueKey].(string)
	}
	if sess, err := s.store.Get(r, RefreshCookieName); err == nil {
		pair.RefreshToken, _ = sess.Values[valueKey].(string)
	}
	return pair, pair.AccessToken != ""
}

func (s *CookieTokenStore) Save(w http.ResponseWriter, r *http.Request, pair models.TokenPair) error {
	access, _ := s.store.Get(r, AccessCookieName)
	access.Values[valueKey] = pair.AccessToken
	if err := access.Save(r, w); err != nil {
		return err
	}
	refresh, _ := s.store.Get(r, RefreshCookieName)
	refresh.Values[valueKey] = pair.RefreshToken
	return refresh.Save(r, w)
}

// Clear expires both cookies. Errors are deliberately swallowed; clearing
// must look unconditional to callers.
func (s *CookieTokenStore) Clear(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		sess, _ := s.store.Get(r, name)
		sess.Options.MaxAge = -1
		delete(sess.Values, valueKey)
		_ = sess.Save(r, w)
	}
}

// HasSessionCookie reports whether the request carries the access-token
// cookie at all. The navigation gate uses presence only; validity is
// always decided by the backend.
func HasSessionCookie(r *http.Request) bool {
	_, err := r.Cookie(AccessCookieName)
	return err == nil
}
