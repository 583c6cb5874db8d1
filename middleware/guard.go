// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strings"

	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

// SessionHandler is a handler that receives the resolved session along
// with the request.
type SessionHandler func(w http.ResponseWriter, r *http.Request, sess *models.Session)

// RequireSession resolves the session on every call (nothing is cached
// across requests) and denies access when there is none. Browser page
// loads are redirected to /login; JSON consumers get a 401.
func RequireSession(mgr *session.Manager, next SessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := mgr.CurrentUser(r.Context(), w, r)
		if err != nil {
			ErrorResponse(w, http.StatusServiceUnavailable, "could not verify your session, try again")
			return
		}
		if sess == nil {
			denyUnauthenticated(w, r)
			return
		}
		next(w, r, sess)
	}
}

// RequireRole gates a handler on a role. An administrator session always
// passes; a session whose role matches passes; anything else gets a 403
// "not authorized" response with no redirect.
func RequireRole(mgr *session.Manager, role string, next SessionHandler) http.HandlerFunc {
	return RequireSession(mgr, func(w http.ResponseWriter, r *http.Request, sess *models.Session) {
		if !sess.HasRole(role) {
			ErrorResponse(w, http.StatusForbidden, "you are not authorized to view this resource")
			return
		}
		next(w, r, sess)
	})
}

func denyUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	ErrorResponse(w, http.StatusUnauthorized, "no active session")
}
