// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strings"

	"github.com/chocorocks/gateway/session"
)

// Paths that never require a session cookie
var publicPaths = []string{
	"/login",
	"/health",
	"/auth/",
	"/static/",
	"/favicon.ico",
}

// NavigationGate is the request-level intercept in front of the whole
// route table. /api/* traffic passes straight through (the backend
// authenticates it); public paths pass; every other path without the
// session cookie is redirected to /login.
//
// Only cookie presence is checked here. Validity is decided per screen
// by RequireSession, and for /api/* by the backend.
func NavigationGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if strings.HasPrefix(path, "/api/") || isPublicPath(path) {
			next.ServeHTTP(w, r)
			return
		}
		if !session.HasSessionCookie(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return true
		}
	}
	return false
}
