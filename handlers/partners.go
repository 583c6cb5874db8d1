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

// PartnersHandler backs the store and client screens.
type PartnersHandler struct {
	api *apiclient.Client
	mgr *session.Manager
}

func NewPartnersHandler(api *apiclient.Client, mgr *session.Manager) *PartnersHandler {
	return &PartnersHandler{api: api, mgr: mgr}
}

// ListStores handles GET /screens/stores?search=
func (h *PartnersHandler) ListStores(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	stores, err := h.api.Stores.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.Store, 0, len(stores))
	for _, s := range stores {
		if matchesSearch(query, s.Name, s.Address, s.Type) {
			filtered = append(filtered, s)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// CreateStore handles POST /screens/stores
func (h *PartnersHandler) CreateStore(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req models.StoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	store, err := h.api.Stores.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, store)
}

// UpdateStore handles PUT /screens/stores/{id}
func (h *PartnersHandler) UpdateStore(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req models.StoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	store, err := h.api.Stores.Update(apiContext(r, h.mgr), id, req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, store)
}

// DeleteStore handles DELETE /screens/stores/{id}
func (h *PartnersHandler) DeleteStore(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.api.Stores.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "store deleted"})
}

// StoreStock handles GET /screens/stores/{id}/stock
func (h *PartnersHandler) StoreStock(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	stock, err := h.api.ProductStores.ListByStore(apiContext(r, h.mgr), id)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stock)
}

// ListClients handles GET /screens/clients?search=
func (h *PartnersHandler) ListClients(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	clients, err := h.api.Clients.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if matchesSearch(query, c.Name, c.TaxID, c.Email, c.Phone) {
			filtered = append(filtered, c)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// CreateClient handles POST /screens/clients
func (h *PartnersHandler) CreateClient(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req models.ClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	client, err := h.api.Clients.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, client)
}

// UpdateClient handles PUT /screens/clients/{id}
func (h *PartnersHandler) UpdateClient(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req models.ClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	client, err := h.api.Clients.Update(apiContext(r, h.mgr), id, req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, client)
}

// DeleteClient handles DELETE /screens/clients/{id}
func (h *PartnersHandler) DeleteClient(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.api.Clients.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "client deleted"})
}
