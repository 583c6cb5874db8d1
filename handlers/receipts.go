// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

// ReceiptsHandler backs the receipt screens.
type ReceiptsHandler struct {
	api *apiclient.Client
	mgr *session.Manager
}

func NewReceiptsHandler(api *apiclient.Client, mgr *session.Manager) *ReceiptsHandler {
	return &ReceiptsHandler{api: api, mgr: mgr}
}

// List handles GET /screens/receipts?search=
func (h *ReceiptsHandler) List(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	receipts, err := h.api.Receipts.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.Receipt, 0, len(receipts))
	for _, rec := range receipts {
		if matchesSearch(query, rec.ReceiptNumber, rec.PaymentMethod, rec.Status) {
			filtered = append(filtered, rec)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// Get handles GET /screens/receipts/{id}
func (h *ReceiptsHandler) Get(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	receipt, err := h.api.Receipts.Get(apiContext(r, h.mgr), id)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, receipt)
}

// Cancel handles POST /screens/receipts/{id}/cancel. The screens always
// confirm with the cashier before calling this.
func (h *ReceiptsHandler) Cancel(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	receipt, err := h.api.Receipts.Cancel(apiContext(r, h.mgr), id)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, receipt)
}

// MarkPrinted handles POST /screens/receipts/{id}/print
func (h *ReceiptsHandler) MarkPrinted(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	receipt, err := h.api.Receipts.MarkPrinted(apiContext(r, h.mgr), id)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, receipt)
}
