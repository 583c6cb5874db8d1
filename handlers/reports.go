// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

// ReportsHandler backs the report screens. Sales and inventory reports
// are open to every employee; profitability and the executive dashboard
// are mounted admin-only by the router.
type ReportsHandler struct {
	api *apiclient.Client
	mgr *session.Manager
}

func NewReportsHandler(api *apiclient.Client, mgr *session.Manager) *ReportsHandler {
	return &ReportsHandler{api: api, mgr: mgr}
}

// Sales handles GET /screens/reports/sales?from=&to=
func (h *ReportsHandler) Sales(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	report, err := h.api.Reports.Sales(apiContext(r, h.mgr), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, report)
}

// SalesCSV handles GET /screens/reports/sales/export. It streams the
// same report as a CSV download for the spreadsheet crowd.
func (h *ReportsHandler) SalesCSV(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	report, err := h.api.Reports.Sales(apiContext(r, h.mgr), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sales-report.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"sale_number", "store", "client", "sale_type", "payment_method", "total", "date"})
	for _, row := range report.Rows {
		record := []string{
			row.SaleNumber,
			row.StoreName,
			row.ClientName,
			row.SaleType,
			row.PaymentMethod,
			fmt.Sprintf("%.2f", row.Total),
			row.Date,
		}
		if err := cw.Write(record); err != nil {
			slog.Error("failed to write CSV row", "error", err)
			return
		}
	}
	cw.Flush()
}

// Inventory handles GET /screens/reports/inventory
func (h *ReportsHandler) Inventory(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	report, err := h.api.Reports.Inventory(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, report)
}

// Profitability handles GET /screens/reports/profitability?from=&to=
func (h *ReportsHandler) Profitability(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	report, err := h.api.Reports.Profitability(apiContext(r, h.mgr), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, report)
}

// BestSelling handles GET /screens/reports/best-selling?limit=
func (h *ReportsHandler) BestSelling(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	products, err := h.api.Reports.BestSellingProducts(apiContext(r, h.mgr), limit)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, products)
}

// Traceability handles GET /screens/reports/traceability?productId=
func (h *ReportsHandler) Traceability(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	productID, err := strconv.Atoi(r.URL.Query().Get("productId"))
	if err != nil || productID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "productId is required")
		return
	}
	report, err := h.api.Reports.Traceability(apiContext(r, h.mgr), productID)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, report)
}

// Dashboard handles GET /screens/reports/dashboard
func (h *ReportsHandler) Dashboard(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	dashboard, err := h.api.Reports.ExecutiveDashboard(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, dashboard)
}
