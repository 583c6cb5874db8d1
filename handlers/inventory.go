// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

// InventoryHandler backs the batch and movement screens.
type InventoryHandler struct {
	api *apiclient.Client
	mgr *session.Manager
}

func NewInventoryHandler(api *apiclient.Client, mgr *session.Manager) *InventoryHandler {
	return &InventoryHandler{api: api, mgr: mgr}
}

// ListBatches handles GET /screens/batches?search=
func (h *InventoryHandler) ListBatches(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	batches, err := h.api.ProductBatches.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.ProductBatch, 0, len(batches))
	for _, b := range batches {
		productName := ""
		if b.Product != nil {
			productName = b.Product.Name
		}
		if matchesSearch(query, b.BatchCode, productName) {
			filtered = append(filtered, b)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// CreateBatch handles POST /screens/batches
func (h *InventoryHandler) CreateBatch(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req models.BatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	switch {
	case req.BatchCode == "":
		middleware.ErrorResponse(w, http.StatusBadRequest, "batch code is required")
		return
	case req.ProductID <= 0:
		middleware.ErrorResponse(w, http.StatusBadRequest, "a product is required")
		return
	case req.InitialQuantity <= 0:
		middleware.ErrorResponse(w, http.StatusBadRequest, "initial quantity must be positive")
		return
	}

	batch, err := h.api.ProductBatches.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, batch)
}

// UpdateBatch handles PUT /screens/batches/{id}
func (h *InventoryHandler) UpdateBatch(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req models.BatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	batch, err := h.api.ProductBatches.Update(apiContext(r, h.mgr), id, req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, batch)
}

// DeleteBatch handles DELETE /screens/batches/{id}
func (h *InventoryHandler) DeleteBatch(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.api.ProductBatches.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "batch deleted"})
}

// ListMovements handles GET /screens/movements?search=&productId=. With
// a productId only that product's movement history is fetched, for the
// traceability view.
func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	ctx := apiContext(r, h.mgr)

	var movements []models.InventoryMovement
	var err error
	if productID, convErr := strconv.Atoi(r.URL.Query().Get("productId")); convErr == nil && productID > 0 {
		movements, err = h.api.InventoryMovements.ListByProduct(ctx, productID)
	} else {
		movements, err = h.api.InventoryMovements.List(ctx)
	}
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.InventoryMovement, 0, len(movements))
	for _, m := range movements {
		if matchesSearch(query, m.MovementType, m.Reason) {
			filtered = append(filtered, m)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// CreateMovement handles POST /screens/movements
func (h *InventoryHandler) CreateMovement(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req models.MovementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !validMovementType(req.MovementType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "movement type must be one of: IN, OUT, TRANSFER")
		return
	}
	if req.Quantity <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	req.UserID = sess.UserID

	movement, err := h.api.InventoryMovements.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, movement)
}

func validMovementType(t string) bool {
	return t == models.MovementIn || t == models.MovementOut || t == models.MovementTransfer
}
