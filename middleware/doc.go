// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Session Guard

Protected screens resolve the session on every request:

	mux.HandleFunc("GET /screens/products", middleware.RequireSession(mgr, handler))

With no session, browser page loads are redirected to /login and JSON
consumers get a 401. Role-gated screens add a requirement on top:

	mux.HandleFunc("GET /screens/users", middleware.RequireRole(mgr, models.RoleAdmin, handler))

A session that fails the role check gets a 403 with a "not authorized"
message and stays on the page; there is no redirect.

# Navigation Gate

The gate wraps the whole mux and sends cookie-less visitors to /login
before any screen handler runs:

	server := http.Server{
		Handler: middleware.NavigationGate(mux),
	}

Public paths (/login, /health, /auth/, /static/, favicon) and /api/*
traffic pass through untouched.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
tagged with a per-request correlation id.

# CORS Middleware

Enable cross-origin requests on the /api/* proxy:

	mux.Handle("/api/", middleware.CORS(proxy.New(backend)))

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
