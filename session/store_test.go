// session/store_test.go
package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chocorocks/gateway/models"
)

var testSecret = []byte("test-cookie-secret-32-bytes-long")

func saveAndCarry(t *testing.T, store *CookieTokenStore, pair models.TokenPair) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/auth/login", nil)
	if err := store.Save(w, r, pair); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	next := httptest.NewRequest("GET", "/screens/products", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestCookieRoundTrip(t *testing.T) {
	store := NewCookieTokenStore(testSecret, false)
	pair := models.TokenPair{AccessToken: "access-abc", RefreshToken: "refresh-xyz"}

	next := saveAndCarry(t, store, pair)
	loaded, ok := store.Load(next)
	if !ok {
		t.Fatal("Load() ok = false after Save")
	}
	if loaded.AccessToken != pair.AccessToken || loaded.RefreshToken != pair.RefreshToken {
		t.Errorf("Load() = %+v, want %+v", loaded, pair)
	}
}

func TestCookieAttributes(t *testing.T) {
	store := NewCookieTokenStore(testSecret, true)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/auth/login", nil)
	if err := store.Save(w, r, models.TokenPair{AccessToken: "a", RefreshToken: "b"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cookies := w.Result().Cookies()
	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}

	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		c, ok := byName[name]
		if !ok {
			t.Fatalf("cookie %q not set", name)
		}
		if c.MaxAge != int(tokenTTL.Seconds()) {
			t.Errorf("%s MaxAge = %d, want %d", name, c.MaxAge, int(tokenTTL.Seconds()))
		}
		if !c.HttpOnly {
			t.Errorf("%s is not HttpOnly", name)
		}
		if !c.Secure {
			t.Errorf("%s is not Secure in production mode", name)
		}
		if c.SameSite != http.SameSiteStrictMode {
			t.Errorf("%s SameSite = %v, want Strict", name, c.SameSite)
		}
		if c.Path != "/" {
			t.Errorf("%s Path = %q, want /", name, c.Path)
		}
	}
}

func TestClearExpiresBothCookies(t *testing.T) {
	store := NewCookieTokenStore(testSecret, false)
	next := saveAndCarry(t, store, models.TokenPair{AccessToken: "a", RefreshToken: "b"})

	w := httptest.NewRecorder()
	store.Clear(w, next)

	cookies := w.Result().Cookies()
	if len(cookies) < 2 {
		t.Fatalf("Clear() set %d cookies, want 2", len(cookies))
	}
	for _, c := range cookies {
		if c.MaxAge >= 0 {
			t.Errorf("cookie %q MaxAge = %d, want negative (expired)", c.Name, c.MaxAge)
		}
	}
}

func TestLoadWithoutCookies(t *testing.T) {
	store := NewCookieTokenStore(testSecret, false)
	r := httptest.NewRequest("GET", "/", nil)
	if _, ok := store.Load(r); ok {
		t.Error("Load() ok = true for a bare request")
	}
}

func TestLoadGarbageCookie(t *testing.T) {
	store := NewCookieTokenStore(testSecret, false)
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: "not-a-signed-value"})
	if _, ok := store.Load(r); ok {
		t.Error("Load() ok = true for a garbage cookie")
	}
}

func TestHasSessionCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if HasSessionCookie(r) {
		t.Error("HasSessionCookie() = true for a bare request")
	}
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: "anything"})
	if !HasSessionCookie(r) {
		t.Error("HasSessionCookie() = false with the cookie present")
	}
}
