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

// ProductBatchesClient covers /product-batches.
type ProductBatchesClient struct {
	c *Client
}

func (bc *ProductBatchesClient) List(ctx context.Context) ([]models.ProductBatch, error) {
	var batches []models.ProductBatch
	if err := bc.c.get(ctx, "/product-batches", nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (bc *ProductBatchesClient) Get(ctx context.Context, id int) (*models.ProductBatch, error) {
	var batch models.ProductBatch
	if err := bc.c.get(ctx, fmt.Sprintf("/product-batches/%d", id), nil, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (bc *ProductBatchesClient) Create(ctx context.Context, req models.BatchRequest) (*models.ProductBatch, error) {
	var batch models.ProductBatch
	if err := bc.c.post(ctx, "/product-batches", req, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (bc *ProductBatchesClient) Update(ctx context.Context, id int, req models.BatchRequest) (*models.ProductBatch, error) {
	var batch models.ProductBatch
	if err := bc.c.put(ctx, fmt.Sprintf("/product-batches/%d", id), req, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (bc *ProductBatchesClient) Delete(ctx context.Context, id int) error {
	return bc.c.delete(ctx, fmt.Sprintf("/product-batches/%d", id))
}

// InventoryMovementsClient covers /inventory-movements.
type InventoryMovementsClient struct {
	c *Client
}

func (mc *InventoryMovementsClient) List(ctx context.Context) ([]models.InventoryMovement, error) {
	var movements []models.InventoryMovement
	if err := mc.c.get(ctx, "/inventory-movements", nil, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// ListByProduct returns the movement history for one product, newest
// first as ordered by the backend.
func (mc *InventoryMovementsClient) ListByProduct(ctx context.Context, productID int) ([]models.InventoryMovement, error) {
	query := url.Values{"productId": {strconv.Itoa(productID)}}
	var movements []models.InventoryMovement
	if err := mc.c.get(ctx, "/inventory-movements", query, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

func (mc *InventoryMovementsClient) Create(ctx context.Context, req models.MovementRequest) (*models.InventoryMovement, error) {
	var movement models.InventoryMovement
	if err := mc.c.post(ctx, "/inventory-movements", req, &movement); err != nil {
		return nil, err
	}
	return &movement, nil
}
