// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/chocorocks/gateway/models"
)

// ReportsClient covers the /reports endpoints. All aggregation happens
// on the backend; these calls only fetch and decode.
type ReportsClient struct {
	c *Client
}

func dateRange(from, to string) url.Values {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	return query
}

func (rc *ReportsClient) Sales(ctx context.Context, from, to string) (*models.SalesReport, error) {
	var report models.SalesReport
	if err := rc.c.get(ctx, "/reports/sales", dateRange(from, to), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (rc *ReportsClient) Inventory(ctx context.Context) (*models.InventoryReport, error) {
	var report models.InventoryReport
	if err := rc.c.get(ctx, "/reports/inventory", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (rc *ReportsClient) Profitability(ctx context.Context, from, to string) (*models.ProfitabilityReport, error) {
	var report models.ProfitabilityReport
	if err := rc.c.get(ctx, "/reports/profitability", dateRange(from, to), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (rc *ReportsClient) BestSellingProducts(ctx context.Context, limit int) ([]models.BestSellingProduct, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var products []models.BestSellingProduct
	if err := rc.c.get(ctx, "/reports/best-selling-products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (rc *ReportsClient) Traceability(ctx context.Context, productID int) (*models.TraceabilityReport, error) {
	query := url.Values{"productId": {strconv.Itoa(productID)}}
	var report models.TraceabilityReport
	if err := rc.c.get(ctx, "/reports/traceability", query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (rc *ReportsClient) ExecutiveDashboard(ctx context.Context) (*models.ExecutiveDashboard, error) {
	var dashboard models.ExecutiveDashboard
	if err := rc.c.get(ctx, "/reports/executive-dashboard", nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
