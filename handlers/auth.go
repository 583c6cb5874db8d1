// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

type AuthHandler struct {
	mgr *session.Manager
}

func NewAuthHandler(mgr *session.Manager) *AuthHandler {
	return &AuthHandler{mgr: mgr}
}

// Login handles POST /auth/login. JSON is the primary content type;
// form-encoded bodies are accepted too so the /login shell can submit
// without scripting.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var cred models.Credential
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid form body")
			return
		}
		cred.Email = r.PostFormValue("email")
		cred.Password = r.PostFormValue("password")
	} else if err := middleware.ParseJSONBody(r, &cred); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess, err := h.mgr.Login(r.Context(), w, r, cred)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMalformedCredential), errors.Is(err, session.ErrWeakCredential):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrInvalidCredentials), errors.Is(err, session.ErrSessionRejected):
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		default:
			slog.Error("login failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "could not sign in right now, try again")
		}
		return
	}

	slog.Info("user signed in", "user_id", sess.UserID, "role", sess.Role)
	middleware.JSONResponse(w, http.StatusOK, sess)
}

// Logout handles POST /auth/logout. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.mgr.Logout(r.Context(), w, r)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "signed out"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := h.mgr.CurrentUser(r.Context(), w, r)
	if err != nil {
		slog.Error("session lookup failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "could not verify your session, try again")
		return
	}
	if sess == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "no active session")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sess)
}

// LoginPage handles GET /login with a minimal form shell; the real
// screens live in the browser bundle served separately.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(loginPage))
}

const loginPage = `<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Chocorocks - Iniciar sesion</title></head>
<body>
<form method="post" action="/auth/login">
  <h1>Chocorocks</h1>
  <label>Email <input type="email" name="email" required></label>
  <label>Contrasena <input type="password" name="password" required minlength="6"></label>
  <button type="submit">Entrar</button>
</form>
</body>
</html>
`
