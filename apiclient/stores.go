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

// StoresClient covers /stores.
type StoresClient struct {
	c *Client
}

func (sc *StoresClient) List(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	if err := sc.c.get(ctx, "/stores", nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (sc *StoresClient) Get(ctx context.Context, id int) (*models.Store, error) {
	var store models.Store
	if err := sc.c.get(ctx, fmt.Sprintf("/stores/%d", id), nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (sc *StoresClient) Create(ctx context.Context, req models.StoreRequest) (*models.Store, error) {
	var store models.Store
	if err := sc.c.post(ctx, "/stores", req, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (sc *StoresClient) Update(ctx context.Context, id int, req models.StoreRequest) (*models.Store, error) {
	var store models.Store
	if err := sc.c.put(ctx, fmt.Sprintf("/stores/%d", id), req, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (sc *StoresClient) Delete(ctx context.Context, id int) error {
	return sc.c.delete(ctx, fmt.Sprintf("/stores/%d", id))
}

// ProductStoresClient covers /product-stores (per-store stock levels).
type ProductStoresClient struct {
	c *Client
}

func (pc *ProductStoresClient) List(ctx context.Context) ([]models.ProductStore, error) {
	var stock []models.ProductStore
	if err := pc.c.get(ctx, "/product-stores", nil, &stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// ListByStore returns the stock rows for one store.
func (pc *ProductStoresClient) ListByStore(ctx context.Context, storeID int) ([]models.ProductStore, error) {
	query := url.Values{"storeId": {strconv.Itoa(storeID)}}
	var stock []models.ProductStore
	if err := pc.c.get(ctx, "/product-stores", query, &stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (pc *ProductStoresClient) Create(ctx context.Context, req models.ProductStoreRequest) (*models.ProductStore, error) {
	var row models.ProductStore
	if err := pc.c.post(ctx, "/product-stores", req, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (pc *ProductStoresClient) Update(ctx context.Context, id int, req models.ProductStoreRequest) (*models.ProductStore, error) {
	var row models.ProductStore
	if err := pc.c.put(ctx, fmt.Sprintf("/product-stores/%d", id), req, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (pc *ProductStoresClient) Delete(ctx context.Context, id int) error {
	return pc.c.delete(ctx, fmt.Sprintf("/product-stores/%d", id))
}
