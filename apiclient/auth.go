// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"

	"github.com/chocorocks/gateway/models"
)

// AuthClient covers the backend session-validation endpoint.
type AuthClient struct {
	c *Client
}

// Me confirms the bearer token in ctx with the backend and returns the
// canonical session for it. A rejected token surfaces as an APIError with
// status 401.
func (a *AuthClient) Me(ctx context.Context) (*models.Session, error) {
	var session models.Session
	if err := a.c.get(ctx, "/auth/me", nil, &session); err != nil {
		return nil, err
	}
	session.Authenticated = true
	return &session, nil
}
