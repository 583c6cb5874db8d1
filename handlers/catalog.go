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

// CatalogHandler backs the product and category screens. Every operation
// is a pass-through to the backend; the only local work is the
// substring search filter the list screens apply.
type CatalogHandler struct {
	api *apiclient.Client
	mgr *session.Manager
}

func NewCatalogHandler(api *apiclient.Client, mgr *session.Manager) *CatalogHandler {
	return &CatalogHandler{api: api, mgr: mgr}
}

// ListCategories handles GET /screens/categories?search=
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	categories, err := h.api.Categories.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if matchesSearch(query, c.Name, c.Description) {
			filtered = append(filtered, c)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// CreateCategory handles POST /screens/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	category, err := h.api.Categories.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /screens/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	category, err := h.api.Categories.Update(apiContext(r, h.mgr), id, req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /screens/categories/{id}. A backend
// refusal ("has associated products") reaches the screen verbatim.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.api.Categories.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

// ListProducts handles GET /screens/products?search=&categoryId=. With a
// categoryId the backend narrows the result server-side; the search
// filter still applies on top.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	ctx := apiContext(r, h.mgr)

	var products []models.Product
	var err error
	if categoryID, convErr := strconv.Atoi(r.URL.Query().Get("categoryId")); convErr == nil && categoryID > 0 {
		products, err = h.api.Products.ListByCategory(ctx, categoryID)
	} else {
		products, err = h.api.Products.List(ctx)
	}
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(query, p.Name, p.Code, p.Flavor, p.Barcode) {
			filtered = append(filtered, p)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// GetProduct handles GET /screens/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	product, err := h.api.Products.Get(apiContext(r, h.mgr), id)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, product)
}

// CreateProduct handles POST /screens/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	req, ok := h.parseProduct(w, r)
	if !ok {
		return
	}
	product, err := h.api.Products.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /screens/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	req, ok := h.parseProduct(w, r)
	if !ok {
		return
	}
	product, err := h.api.Products.Update(apiContext(r, h.mgr), id, req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /screens/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.api.Products.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func (h *CatalogHandler) parseProduct(w http.ResponseWriter, r *http.Request) (models.ProductRequest, bool) {
	var req models.ProductRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}
	switch {
	case req.Code == "" || req.Name == "":
		middleware.ErrorResponse(w, http.StatusBadRequest, "code and name are required")
	case req.CategoryID <= 0:
		middleware.ErrorResponse(w, http.StatusBadRequest, "a category is required")
	case req.ProductionCost < 0 || req.WholesalePrice < 0 || req.RetailPrice < 0:
		middleware.ErrorResponse(w, http.StatusBadRequest, "prices cannot be negative")
	default:
		return req, true
	}
	return req, false
}
