// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/chocorocks/gateway/models"
)

// SalesClient covers /sales, including the "complete sale with receipt"
// action.
type SalesClient struct {
	c *Client
}

func (sc *SalesClient) List(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := sc.c.get(ctx, "/sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (sc *SalesClient) Get(ctx context.Context, id int) (*models.Sale, error) {
	var sale models.Sale
	if err := sc.c.get(ctx, fmt.Sprintf("/sales/%d", id), nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (sc *SalesClient) Create(ctx context.Context, req models.SaleRequest) (*models.Sale, error) {
	var sale models.Sale
	if err := sc.c.post(ctx, "/sales", req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (sc *SalesClient) Update(ctx context.Context, id int, req models.SaleRequest) (*models.Sale, error) {
	var sale models.Sale
	if err := sc.c.put(ctx, fmt.Sprintf("/sales/%d", id), req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (sc *SalesClient) Delete(ctx context.Context, id int) error {
	return sc.c.delete(ctx, fmt.Sprintf("/sales/%d", id))
}

// CompleteWithReceipt finalizes the sale on the backend and issues its
// receipt in one step. The payment method must already be normalized
// (see handlers.NormalizePaymentMethod).
func (sc *SalesClient) CompleteWithReceipt(ctx context.Context, req models.CompleteSaleRequest) (*models.Receipt, error) {
	var receipt models.Receipt
	path := fmt.Sprintf("/sales/%d/complete-with-receipt", req.SaleID)
	if err := sc.c.post(ctx, path, req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// SaleDetailsClient covers /sale-details.
type SaleDetailsClient struct {
	c *Client
}

func (sc *SaleDetailsClient) ListBySale(ctx context.Context, saleID int) ([]models.SaleDetail, error) {
	query := url.Values{"saleId": {strconv.Itoa(saleID)}}
	var details []models.SaleDetail
	if err := sc.c.get(ctx, "/sale-details", query, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (sc *SaleDetailsClient) Create(ctx context.Context, detail models.SaleDetail) (*models.SaleDetail, error) {
	var created models.SaleDetail
	if err := sc.c.post(ctx, "/sale-details", detail, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (sc *SaleDetailsClient) Delete(ctx context.Context, id int) error {
	return sc.c.delete(ctx, fmt.Sprintf("/sale-details/%d", id))
}
