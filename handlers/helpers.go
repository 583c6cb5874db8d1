// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

// apiContext attaches the request's access token for outgoing backend
// calls. With no persisted token the call goes out anonymous and the
// backend answers 401.
func apiContext(r *http.Request, mgr *session.Manager) context.Context {
	ctx := r.Context()
	if token, ok := mgr.Token(r); ok {
		ctx = apiclient.WithToken(ctx, token)
	}
	return ctx
}

// respondAPIError translates an apiclient error for the browser. This is
// the single place where an expired token tears the session down; the
// API client itself only reports.
func respondAPIError(w http.ResponseWriter, r *http.Request, mgr *session.Manager, err error) {
	apiErr, ok := models.AsAPIError(err)
	if !ok {
		slog.Error("unexpected error talking to backend", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	switch {
	case apiErr.AuthExpired():
		if mgr != nil {
			mgr.Expire(w, r)
		}
		middleware.ErrorResponse(w, http.StatusUnauthorized, "your session has expired, sign in again")
	case apiErr.NoConnection():
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, apiErr.Message)
	default:
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		// Backend business messages pass through verbatim.
		middleware.ErrorResponse(w, status, apiErr.Message)
	}
}

// pathID parses the {id} segment of the matched route.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// matchesSearch reports whether any of the fields contains the query,
// case-insensitively. An empty query matches everything, mirroring the
// screens' substring filter.
func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
