// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines session, entity, request, and error types.

The business entities mirror the backend's JSON shapes field for field.
The gateway renders them as-is and never derives values locally; stock
levels, totals, and report figures always come from the backend.

# Session Types

  - Session: the authenticated user (UserID, Name, Email, Role)
  - Credential: email/password pair for login
  - TokenPair: access and refresh tokens with expiry

Role checks go through Session.HasRole. An ADMINISTRATOR session passes
every requirement; an empty requirement passes any authenticated session.

# Business Entities

  - Category, Product: the catalog
  - Store, Client, User: parties
  - Sale, SaleDetail, Receipt: the sales flow
  - ProductBatch, InventoryMovement, ProductStore: inventory
  - UserActivity: the audit trail

# Report Types

  - SalesReport, InventoryReport, ProfitabilityReport
  - BestSellingProduct, TraceabilityReport, ExecutiveDashboard

# Request Types

Types for parsing incoming JSON, one per mutating screen action:
CategoryRequest, ProductRequest, StoreRequest, ClientRequest,
UserRequest, BatchRequest, MovementRequest, SaleRequest, and
CompleteSaleRequest.

# Error Type

APIError is the single error shape for every failed backend call:

	apiErr, ok := models.AsAPIError(err)
	if ok && apiErr.AuthExpired() { ... }

Status 0 (StatusNoConnection) marks transport failures where no HTTP
response arrived at all.

# Constants

Roles:

	RoleAdmin    = "ADMINISTRATOR"
	RoleEmployee = "EMPLOYEE"

Movement types:

	MovementIn       = "IN"
	MovementOut      = "OUT"
	MovementTransfer = "TRANSFER"

Receipt status:

	ReceiptIssued    = "ISSUED"
	ReceiptCancelled = "CANCELLED"
*/
package models
