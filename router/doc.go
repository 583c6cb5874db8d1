// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the gateway's HTTP routes.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(mgr, api, backendURL)

# Endpoints

Health:

	GET /health

Auth (public):

	GET  /login       - Login page
	POST /auth/login  - Sign in
	POST /auth/logout - Sign out
	GET  /auth/me     - Current session

Backend proxy (the browser never sees the backend origin):

	/api/* → backend, with the /api prefix stripped

Screens (session required):

	/screens/categories, /screens/products      - Catalog
	/screens/stores, /screens/clients           - Parties
	/screens/sales, /screens/receipts           - Sales flow
	/screens/sales/{id}/details                 - Add a sale line
	/screens/sale-details/{id}                  - Remove a sale line
	/screens/batches, /screens/movements        - Inventory

Admin screens (ADMINISTRATOR role required):

	/screens/users                  - User administration
	/screens/users/{id}/activities  - Activity log per user
	/screens/activities             - Audit trail across users
	/screens/reports/profitability  - Profitability report
	/screens/reports/dashboard      - Executive dashboard

Reports open to every employee:

	/screens/reports/sales (+ /export for CSV)
	/screens/reports/inventory
	/screens/reports/best-selling
	/screens/reports/traceability

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(mgr)
	catalogHandler := handlers.NewCatalogHandler(api, mgr)
	salesHandler := handlers.NewSalesHandler(api, mgr)

All screen handlers receive the typed API client and the session
manager.
*/
package router
