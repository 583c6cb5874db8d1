// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers behind each screen.

# Handler Types

Each handler is a struct holding the typed API client and the session
manager:

  - AuthHandler: login, logout, and the current-session endpoint
  - CatalogHandler: categories and products
  - PartnersHandler: stores (with per-store stock) and clients
  - SalesHandler: sales and the complete-with-receipt action
  - ReceiptsHandler: receipt lookup, cancel, and mark-printed
  - InventoryHandler: batches and stock movements
  - UsersHandler: user administration and activity logs (admin only)
  - ReportsHandler: the report screens, including the CSV export

Handlers are created via constructor functions:

	catalogHandler := handlers.NewCatalogHandler(api, mgr)

All screen handlers implement middleware.SessionHandler and receive the
resolved session from the guard.

# Error Translation

respondAPIError is the single place where backend errors become screen
responses. An expired token clears the stored session and answers 401;
a transport failure answers 503; every other backend message passes
through verbatim with its original status.

# Search Filtering

List screens accept a ?search= query and filter locally with a
case-insensitive substring match across the entity's visible fields.
An empty query returns everything.

# Payment Methods

The sale screens accept payment methods in Spanish or English and
normalize them to the canonical upper-case codes the backend stores:

	method, ok := handlers.NormalizePaymentMethod("efectivo") // "CASH"
*/
package handlers
