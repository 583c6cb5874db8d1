// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chocorocks/gateway/models"
)

var (
	// ErrMalformedCredential is returned before any network call when the
	// email field is missing or not email-shaped.
	ErrMalformedCredential = errors.New("a valid email address is required")
	// ErrWeakCredential is returned before any network call when the
	// password is shorter than the minimum length.
	ErrWeakCredential = errors.New("password is too short")
	// ErrInvalidCredentials is returned when the identity provider rejects
	// the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionRejected is returned when the backend refuses a token the
	// identity provider just issued.
	ErrSessionRejected = errors.New("session was rejected by the server")
)

// IdentityProvider exchanges credentials for tokens and revokes them.
// The production implementation talks to the hosted identity service;
// tests substitute a fake.
type IdentityProvider interface {
	PasswordGrant(ctx context.Context, email, password string) (models.TokenPair, error)
	RefreshGrant(ctx context.Context, refreshToken string) (models.TokenPair, error)
	Revoke(ctx context.Context, accessToken string) error
}

// HTTPIdentityProvider implements IdentityProvider against a GoTrue-style
// token endpoint.
type HTTPIdentityProvider struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewIdentityProvider(baseURL, apiKey string, timeout time.Duration) *HTTPIdentityProvider {
	return &HTTPIdentityProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}

func (p *HTTPIdentityProvider) PasswordGrant(ctx context.Context, email, password string) (models.TokenPair, error) {
	body := map[string]string{"email": email, "password": password}
	return p.grant(ctx, "/token?grant_type=password", body)
}

func (p *HTTPIdentityProvider) RefreshGrant(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}
	return p.grant(ctx, "/token?grant_type=refresh_token", body)
}

// Revoke invalidates the access token at the provider. Callers treat
// failure as non-fatal.
func (p *HTTPIdentityProvider) Revoke(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("token revocation failed with status %d", resp.StatusCode)
	}
	return nil
}

func (p *HTTPIdentityProvider) grant(ctx context.Context, path string, body map[string]string) (models.TokenPair, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return models.TokenPair{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return models.TokenPair{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.httpc.Do(req)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		var pe providerError
		_ = json.NewDecoder(resp.Body).Decode(&pe)
		if pe.ErrorDescription != "" {
			return models.TokenPair{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, pe.ErrorDescription)
		}
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if resp.StatusCode >= 300 {
		return models.TokenPair{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var tokens tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return models.TokenPair{}, fmt.Errorf("identity provider sent an unreadable response: %w", err)
	}
	if tokens.AccessToken == "" {
		return models.TokenPair{}, errors.New("identity provider sent no access token")
	}

	pair := models.TokenPair{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if tokens.ExpiresIn > 0 {
		pair.ExpiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	}
	return pair, nil
}
