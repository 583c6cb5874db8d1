// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/testutil"
)

func newTestClient(t *testing.T) (*Client, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(t)
	return New(backend.URL(), 5*time.Second), backend
}

func TestGetAttachesBearerToken(t *testing.T) {
	client, backend := newTestClient(t)
	backend.Handle("GET /products", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, []models.Product{
			{ID: 1, Code: "CHOCO-01", Name: "Chocorocks Classic"},
			{ID: 2, Code: "CHOCO-02", Name: "Chocorocks Mint"},
		})
	})

	ctx := WithToken(context.Background(), "valid-token")
	products, err := client.Products.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(products) != 2 {
		t.Errorf("List() returned %d products, want 2", len(products))
	}

	requests := backend.Requests()
	if len(requests) != 1 {
		t.Fatalf("backend saw %d requests, want exactly 1", len(requests))
	}
	if requests[0].Authorization != "Bearer valid-token" {
		t.Errorf("Authorization = %q, want %q", requests[0].Authorization, "Bearer valid-token")
	}
}

func TestGetWithoutTokenOmitsHeader(t *testing.T) {
	client, backend := newTestClient(t)
	backend.Handle("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, []models.Category{})
	})

	if _, err := client.Categories.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if auth := backend.Requests()[0].Authorization; auth != "" {
		t.Errorf("Authorization = %q, want empty", auth)
	}
}

// Every simulated failure mode must yield exactly one APIError with a
// non-empty message and a defined status.
func TestErrorNormalizationIsTotal(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
	}{
		{"backend message verbatim", 400, "application/json", `{"message":"cannot delete category"}`, "cannot delete category"},
		{"error key", 422, "application/json", `{"error":"invalid batch code"}`, "invalid batch code"},
		{"detail key", 404, "application/json", `{"detail":"product not found"}`, "product not found"},
		{"malformed JSON body", 500, "application/json", `{not json at all`, "Internal Server Error"},
		{"empty body", 404, "application/json", ``, "Not Found"},
		{"non-JSON content", 502, "text/html", `<html>bad gateway</html>`, "Bad Gateway"},
		{"unknown status no body", 599, "application/json", ``, "request failed with status 599"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, backend := newTestClient(t)
			backend.Handle("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.Products.Get(context.Background(), 1)
			if err == nil {
				t.Fatal("Get() expected an error")
			}
			apiErr, ok := models.AsAPIError(err)
			if !ok {
				t.Fatalf("Get() error = %T, want *models.APIError", err)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
		})
	}
}

func TestNetworkFailureIsNormalized(t *testing.T) {
	backend := testutil.NewBackend(t)
	url := backend.URL()
	backend.Server.Close()

	client := New(url, 2*time.Second)
	_, err := client.Stores.List(context.Background())
	if err == nil {
		t.Fatal("List() expected an error for a dead backend")
	}
	apiErr, ok := models.AsAPIError(err)
	if !ok {
		t.Fatalf("List() error = %T, want *models.APIError", err)
	}
	if !apiErr.NoConnection() {
		t.Errorf("Status = %d, want sentinel %d", apiErr.Status, models.StatusNoConnection)
	}
	if apiErr.Message == "" {
		t.Error("Message is empty for network failure")
	}
}

func TestForbiddenUsesFixedMessage(t *testing.T) {
	client, backend := newTestClient(t)
	backend.Handle("GET /users", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusForbidden, map[string]string{"message": "backend wording here"})
	})

	_, err := client.Users.List(context.Background())
	apiErr, ok := models.AsAPIError(err)
	if !ok {
		t.Fatalf("List() error = %T, want *models.APIError", err)
	}
	if apiErr.Message != ErrInsufficientPermissions {
		t.Errorf("Message = %q, want the fixed permission message", apiErr.Message)
	}
}

func TestUnauthorizedReportsAuthExpired(t *testing.T) {
	client, backend := newTestClient(t)
	backend.Handle("GET /sales", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
	})

	_, err := client.Sales.List(WithToken(context.Background(), "stale"))
	if !models.IsAuthExpired(err) {
		t.Errorf("IsAuthExpired(%v) = false, want true", err)
	}
}

// The backend's business refusal must reach the caller unmodified.
func TestDeleteCategoryConflictMessageVerbatim(t *testing.T) {
	const backendMessage = "No se puede eliminar la categoria: tiene productos asociados"

	client, backend := newTestClient(t)
	backend.Handle("DELETE /categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusConflict, map[string]string{"message": backendMessage})
	})

	err := client.Categories.Delete(context.Background(), 7)
	apiErr, ok := models.AsAPIError(err)
	if !ok {
		t.Fatalf("Delete() error = %T, want *models.APIError", err)
	}
	if apiErr.Message != backendMessage {
		t.Errorf("Message = %q, want backend message verbatim", apiErr.Message)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", apiErr.Status)
	}
}

func TestUnexpectedBodyShapeIsNormalized(t *testing.T) {
	client, backend := newTestClient(t)
	backend.Handle("GET /clients", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := client.Clients.List(context.Background())
	if err == nil {
		t.Fatal("List() expected an error for a mis-shaped body")
	}
	if _, ok := models.AsAPIError(err); !ok {
		t.Fatalf("List() error = %T, want *models.APIError", err)
	}
}

// Identical concurrent GETs must share one network call.
func TestConcurrentIdenticalGetsShareOneRequest(t *testing.T) {
	release := make(chan struct{})
	client, backend := newTestClient(t)
	backend.Handle("GET /products", func(w http.ResponseWriter, r *http.Request) {
		<-release
		testutil.WriteJSON(w, http.StatusOK, []models.Product{{ID: 1}})
	})

	ctx := WithToken(context.Background(), "tok")
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.Products.List(ctx); err != nil {
				t.Errorf("List() error = %v", err)
			}
		}()
	}

	// Let all goroutines join the in-flight call before releasing it
	for backend.RequestCount() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := backend.RequestCount(); got != 1 {
		t.Errorf("backend saw %d requests, want 1 shared request", got)
	}
}

// Mutations are never de-duplicated.
func TestMutationsAreNotShared(t *testing.T) {
	client, backend := newTestClient(t)
	backend.Handle("POST /categories", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusCreated, models.Category{ID: 1, Name: "Trufas"})
	})

	ctx := context.Background()
	req := models.CategoryRequest{Name: "Trufas"}
	if _, err := client.Categories.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := client.Categories.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := backend.RequestCount(); got != 2 {
		t.Errorf("backend saw %d requests, want 2", got)
	}
}
