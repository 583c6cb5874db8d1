// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

// paymentMethods maps the free-text values the screens send to the
// canonical upper-case codes the backend stores. Spanish and English
// spellings both appear in the wild.
var paymentMethods = map[string]string{
	"cash":          "CASH",
	"efectivo":      "CASH",
	"card":          "CARD",
	"tarjeta":       "CARD",
	"transfer":      "TRANSFER",
	"transferencia": "TRANSFER",
	"credit":        "CREDIT",
	"credito":       "CREDIT",
	"mixed":         "MIXED",
	"mixto":         "MIXED",
}

// NormalizePaymentMethod maps a user-facing payment method to its
// canonical code. Already-canonical values pass through.
func NormalizePaymentMethod(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	if canonical, ok := paymentMethods[key]; ok {
		return canonical, true
	}
	upper := strings.ToUpper(key)
	for _, canonical := range paymentMethods {
		if canonical == upper {
			return canonical, true
		}
	}
	return "", false
}

// SalesHandler backs the sale screens, including the "complete sale with
// receipt" action.
type SalesHandler struct {
	api *apiclient.Client
	mgr *session.Manager
}

func NewSalesHandler(api *apiclient.Client, mgr *session.Manager) *SalesHandler {
	return &SalesHandler{api: api, mgr: mgr}
}

// List handles GET /screens/sales?search=
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	sales, err := h.api.Sales.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		clientName := ""
		if s.Client != nil {
			clientName = s.Client.Name
		}
		if matchesSearch(query, s.SaleNumber, s.PaymentMethod, clientName) {
			filtered = append(filtered, s)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// Get handles GET /screens/sales/{id}, returning the sale with its
// detail lines.
func (h *SalesHandler) Get(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx := apiContext(r, h.mgr)
	sale, err := h.api.Sales.Get(ctx, id)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	if len(sale.Details) == 0 {
		if details, err := h.api.SaleDetails.ListBySale(ctx, id); err == nil {
			sale.Details = details
		}
	}
	middleware.JSONResponse(w, http.StatusOK, sale)
}

// Create handles POST /screens/sales
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req models.SaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.StoreID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "a store is required")
		return
	}
	if method, ok := NormalizePaymentMethod(req.PaymentMethod); ok {
		req.PaymentMethod = method
	} else {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown payment method")
		return
	}
	req.UserID = sess.UserID

	sale, err := h.api.Sales.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, sale)
}

// Delete handles DELETE /screens/sales/{id}
func (h *SalesHandler) Delete(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.api.Sales.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "sale deleted"})
}

// Complete handles POST /screens/sales/{id}/complete. It finalizes the
// sale and issues the receipt in one backend action.
func (h *SalesHandler) Complete(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req models.CompleteSaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.SaleID = id
	if method, ok := NormalizePaymentMethod(req.PaymentMethod); ok {
		req.PaymentMethod = method
	} else {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown payment method")
		return
	}

	receipt, err := h.api.Sales.CompleteWithReceipt(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, receipt)
}

// AddDetail handles POST /screens/sales/{id}/details, appending a line
// to an open sale.
func (h *SalesHandler) AddDetail(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	var detail models.SaleDetail
	if err := middleware.ParseJSONBody(r, &detail); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if detail.ProductID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "a product is required")
		return
	}
	if detail.Quantity <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	detail.SaleID = id

	created, err := h.api.SaleDetails.Create(apiContext(r, h.mgr), detail)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, created)
}

// RemoveDetail handles DELETE /screens/sale-details/{id}
func (h *SalesHandler) RemoveDetail(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.api.SaleDetails.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "sale line removed"})
}
