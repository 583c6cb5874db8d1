// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"net/http"
)

// StatusNoConnection is the sentinel status used when a request produced
// no HTTP response at all (DNS failure, refused connection, timeout).
const StatusNoConnection = 0

// APIError is the single error shape produced by the API client for every
// non-2xx response and every transport failure. Message is always non-empty.
type APIError struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// AuthExpired reports whether the error indicates a rejected or expired
// token. The API client never acts on this itself; callers decide whether
// to tear the session down.
func (e *APIError) AuthExpired() bool {
	return e.Status == http.StatusUnauthorized
}

// NoConnection reports whether the request never reached the backend.
func (e *APIError) NoConnection() bool {
	return e.Status == StatusNoConnection
}

// AsAPIError unwraps err into an *APIError if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuthExpired reports whether err is an APIError signalling an expired
// or rejected token.
func IsAuthExpired(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.AuthExpired()
}
