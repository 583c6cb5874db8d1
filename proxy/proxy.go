// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package proxy forwards raw /api/* traffic to the Chocorocks backend.
package proxy

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/chocorocks/gateway/middleware"
)

// New builds the /api/* reverse proxy. Requests to /api/<rest> are
// rewritten to <backend>/<rest> so the browser never sees the backend
// origin. Authorization headers pass through untouched in both
// directions; authentication for this traffic belongs to the backend.
func New(backend *url.URL) http.Handler {
	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			suffix := strings.TrimPrefix(pr.In.URL.Path, "/api")
			if suffix == "" {
				suffix = "/"
			}
			pr.Out.URL.Scheme = backend.Scheme
			pr.Out.URL.Host = backend.Host
			pr.Out.URL.Path = strings.TrimRight(backend.Path, "/") + suffix
			pr.Out.URL.RawQuery = pr.In.URL.RawQuery
			pr.Out.Host = backend.Host
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("backend proxy failure", "path", r.URL.Path, "error", err)
			middleware.ErrorResponse(w, http.StatusBadGateway, "backend is unreachable")
		},
	}
	return rp
}
