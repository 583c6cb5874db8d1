// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/url"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/handlers"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/proxy"
	"github.com/chocorocks/gateway/session"
)

func NewRouter(mgr *session.Manager, api *apiclient.Client, backend *url.URL) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(mgr)
	catalogHandler := handlers.NewCatalogHandler(api, mgr)
	partnersHandler := handlers.NewPartnersHandler(api, mgr)
	salesHandler := handlers.NewSalesHandler(api, mgr)
	receiptsHandler := handlers.NewReceiptsHandler(api, mgr)
	inventoryHandler := handlers.NewInventoryHandler(api, mgr)
	usersHandler := handlers.NewUsersHandler(api, mgr)
	reportsHandler := handlers.NewReportsHandler(api, mgr)

	// A protected screen resolves the session on every request; an
	// admin screen additionally requires the administrator role.
	protected := func(next middleware.SessionHandler) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(mgr, next))
	}
	adminOnly := func(next middleware.SessionHandler) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(mgr, models.RoleAdmin, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth and login entry point
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(authHandler.Me))

	// Backend proxy: the browser talks to /api/* and never sees the
	// backend origin. The backend authenticates this traffic itself.
	mux.Handle("/api/", middleware.CORS(proxy.New(backend)))

	// Catalog screens
	mux.HandleFunc("GET /screens/categories", protected(catalogHandler.ListCategories))
	mux.HandleFunc("POST /screens/categories", protected(catalogHandler.CreateCategory))
	mux.HandleFunc("PUT /screens/categories/{id}", protected(catalogHandler.UpdateCategory))
	mux.HandleFunc("DELETE /screens/categories/{id}", protected(catalogHandler.DeleteCategory))
	mux.HandleFunc("GET /screens/products", protected(catalogHandler.ListProducts))
	mux.HandleFunc("POST /screens/products", protected(catalogHandler.CreateProduct))
	mux.HandleFunc("GET /screens/products/{id}", protected(catalogHandler.GetProduct))
	mux.HandleFunc("PUT /screens/products/{id}", protected(catalogHandler.UpdateProduct))
	mux.HandleFunc("DELETE /screens/products/{id}", protected(catalogHandler.DeleteProduct))

	// Store and client screens
	mux.HandleFunc("GET /screens/stores", protected(partnersHandler.ListStores))
	mux.HandleFunc("POST /screens/stores", protected(partnersHandler.CreateStore))
	mux.HandleFunc("PUT /screens/stores/{id}", protected(partnersHandler.UpdateStore))
	mux.HandleFunc("DELETE /screens/stores/{id}", protected(partnersHandler.DeleteStore))
	mux.HandleFunc("GET /screens/stores/{id}/stock", protected(partnersHandler.StoreStock))
	mux.HandleFunc("GET /screens/clients", protected(partnersHandler.ListClients))
	mux.HandleFunc("POST /screens/clients", protected(partnersHandler.CreateClient))
	mux.HandleFunc("PUT /screens/clients/{id}", protected(partnersHandler.UpdateClient))
	mux.HandleFunc("DELETE /screens/clients/{id}", protected(partnersHandler.DeleteClient))

	// Sale and receipt screens
	mux.HandleFunc("GET /screens/sales", protected(salesHandler.List))
	mux.HandleFunc("POST /screens/sales", protected(salesHandler.Create))
	mux.HandleFunc("GET /screens/sales/{id}", protected(salesHandler.Get))
	mux.HandleFunc("DELETE /screens/sales/{id}", protected(salesHandler.Delete))
	mux.HandleFunc("POST /screens/sales/{id}/complete", protected(salesHandler.Complete))
	mux.HandleFunc("POST /screens/sales/{id}/details", protected(salesHandler.AddDetail))
	mux.HandleFunc("DELETE /screens/sale-details/{id}", protected(salesHandler.RemoveDetail))
	mux.HandleFunc("GET /screens/receipts", protected(receiptsHandler.List))
	mux.HandleFunc("GET /screens/receipts/{id}", protected(receiptsHandler.Get))
	mux.HandleFunc("POST /screens/receipts/{id}/cancel", protected(receiptsHandler.Cancel))
	mux.HandleFunc("POST /screens/receipts/{id}/print", protected(receiptsHandler.MarkPrinted))

	// Inventory screens
	mux.HandleFunc("GET /screens/batches", protected(inventoryHandler.ListBatches))
	mux.HandleFunc("POST /screens/batches", protected(inventoryHandler.CreateBatch))
	mux.HandleFunc("PUT /screens/batches/{id}", protected(inventoryHandler.UpdateBatch))
	mux.HandleFunc("DELETE /screens/batches/{id}", protected(inventoryHandler.DeleteBatch))
	mux.HandleFunc("GET /screens/movements", protected(inventoryHandler.ListMovements))
	mux.HandleFunc("POST /screens/movements", protected(inventoryHandler.CreateMovement))

	// User administration (administrator only)
	mux.HandleFunc("GET /screens/users", adminOnly(usersHandler.List))
	mux.HandleFunc("POST /screens/users", adminOnly(usersHandler.Create))
	mux.HandleFunc("PUT /screens/users/{id}", adminOnly(usersHandler.Update))
	mux.HandleFunc("DELETE /screens/users/{id}", adminOnly(usersHandler.Delete))
	mux.HandleFunc("GET /screens/users/{id}/activities", adminOnly(usersHandler.Activities))
	mux.HandleFunc("GET /screens/activities", adminOnly(usersHandler.AllActivities))

	// Reports; profitability and the executive dashboard are sensitive
	mux.HandleFunc("GET /screens/reports/sales", protected(reportsHandler.Sales))
	mux.HandleFunc("GET /screens/reports/sales/export", protected(reportsHandler.SalesCSV))
	mux.HandleFunc("GET /screens/reports/inventory", protected(reportsHandler.Inventory))
	mux.HandleFunc("GET /screens/reports/best-selling", protected(reportsHandler.BestSelling))
	mux.HandleFunc("GET /screens/reports/traceability", protected(reportsHandler.Traceability))
	mux.HandleFunc("GET /screens/reports/profitability", adminOnly(reportsHandler.Profitability))
	mux.HandleFunc("GET /screens/reports/dashboard", adminOnly(reportsHandler.Dashboard))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("chocorocks gateway v1"))
	})

	return mux
}
