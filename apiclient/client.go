// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/chocorocks/gateway/models"
)

// ErrInsufficientPermissions is the fixed message raised for every 403.
const ErrInsufficientPermissions = "you do not have permission to perform this action"

const errNoConnection = "could not reach the server, check your connection"

// Client is the shared request core for every backend resource. One
// instance is created at startup and embedded in all per-resource clients.
//
// The client never navigates, never clears tokens, and never retries: a
// 401 is reported through the returned APIError and acted on by the
// handler layer.
type Client struct {
	baseURL string
	httpc   *http.Client
	group   singleflight.Group

	Auth               *AuthClient
	Categories         *CategoriesClient
	Products           *ProductsClient
	Stores             *StoresClient
	Clients            *ClientsClient
	Sales              *SalesClient
	SaleDetails        *SaleDetailsClient
	Users              *UsersClient
	UserActivities     *UserActivitiesClient
	ProductBatches     *ProductBatchesClient
	InventoryMovements *InventoryMovementsClient
	ProductStores      *ProductStoresClient
	Receipts           *ReceiptsClient
	Reports            *ReportsClient
}

// New creates a client for the backend at baseURL. The timeout bounds
// every outgoing request; there is no retry or backoff.
func New(baseURL string, timeout time.Duration) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
	c.Auth = &AuthClient{c}
	c.Categories = &CategoriesClient{c}
	c.Products = &ProductsClient{c}
	c.Stores = &StoresClient{c}
	c.Clients = &ClientsClient{c}
	c.Sales = &SalesClient{c}
	c.SaleDetails = &SaleDetailsClient{c}
	c.Users = &UsersClient{c}
	c.UserActivities = &UserActivitiesClient{c}
	c.ProductBatches = &ProductBatchesClient{c}
	c.InventoryMovements = &InventoryMovementsClient{c}
	c.ProductStores = &ProductStoresClient{c}
	c.Receipts = &ReceiptsClient{c}
	c.Reports = &ReportsClient{c}
	return c
}

type tokenKey struct{}

// WithToken returns a context carrying the bearer token to attach to
// outgoing requests. With no token in the context requests go out
// without an Authorization header.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer token placed by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// get performs a GET and decodes a JSON response into out. Identical
// concurrent GETs (same path, query and token) share one network call.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	key := "GET " + path + "?" + query.Encode() + "\x00" + TokenFromContext(ctx)
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetch(ctx, http.MethodGet, path, query, nil)
	})
	if err != nil {
		return err
	}
	return decodeBody(v.([]byte), out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := c.fetch(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decodeBody(data, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	data, err := c.fetch(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return decodeBody(data, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.fetch(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// fetch sends exactly one request and returns the raw 2xx body, or an
// *models.APIError for any non-2xx response or transport failure.
func (c *Client) fetch(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &models.APIError{
				Message: fmt.Sprintf("could not encode request: %v", err),
				Status:  models.StatusNoConnection,
			}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &models.APIError{Message: errNoConnection, Status: models.StatusNoConnection}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// No response at all: DNS failure, refused connection, timeout.
		return nil, &models.APIError{Message: errNoConnection, Status: models.StatusNoConnection}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.APIError{Message: errNoConnection, Status: models.StatusNoConnection}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, normalizeError(resp.StatusCode, data)
}

// decodeBody unmarshals a 2xx JSON body into out. A nil out or an empty
// body is accepted as-is.
func decodeBody(data []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &models.APIError{
			Message: "unexpected response format from server",
			Status:  http.StatusOK,
			Payload: rawPayload(data),
		}
	}
	return nil
}

// normalizeError translates every non-2xx response into the one APIError
// shape. The backend message is surfaced verbatim when one can be
// decoded; otherwise the HTTP status text is used.
func normalizeError(status int, body []byte) *models.APIError {
	payload := rawPayload(body)

	if status == http.StatusForbidden {
		return &models.APIError{Message: ErrInsufficientPermissions, Status: status, Payload: payload}
	}

	message := ""
	if payload != nil {
		var envelope struct {
			Message string `json:"message"`
			Error   string `json:"error"`
			Detail  string `json:"detail"`
		}
		if json.Unmarshal(payload, &envelope) == nil {
			switch {
			case envelope.Message != "":
				message = envelope.Message
			case envelope.Error != "":
				message = envelope.Error
			case envelope.Detail != "":
				message = envelope.Detail
			}
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &models.APIError{Message: message, Status: status, Payload: payload}
}

// rawPayload keeps the backend body for the caller when it is valid JSON.
func rawPayload(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil
	}
	return json.RawMessage(append([]byte(nil), trimmed...))
}
