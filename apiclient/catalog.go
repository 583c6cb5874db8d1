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

// CategoriesClient covers /categories.
type CategoriesClient struct {
	c *Client
}

func (cc *CategoriesClient) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := cc.c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (cc *CategoriesClient) Get(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := cc.c.get(ctx, fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (cc *CategoriesClient) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := cc.c.post(ctx, "/categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (cc *CategoriesClient) Update(ctx context.Context, id int, req models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := cc.c.put(ctx, fmt.Sprintf("/categories/%d", id), req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category. The backend refuses categories with
// associated products; that message is surfaced verbatim.
func (cc *CategoriesClient) Delete(ctx context.Context, id int) error {
	return cc.c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}

// ProductsClient covers /products.
type ProductsClient struct {
	c *Client
}

func (pc *ProductsClient) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := pc.c.get(ctx, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory narrows the product listing server-side.
func (pc *ProductsClient) ListByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	query := url.Values{"categoryId": {strconv.Itoa(categoryID)}}
	var products []models.Product
	if err := pc.c.get(ctx, "/products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (pc *ProductsClient) Get(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := pc.c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (pc *ProductsClient) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := pc.c.post(ctx, "/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (pc *ProductsClient) Update(ctx context.Context, id int, req models.ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := pc.c.put(ctx, fmt.Sprintf("/products/%d", id), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (pc *ProductsClient) Delete(ctx context.Context, id int) error {
	return pc.c.delete(ctx, fmt.Sprintf("/products/%d", id))
}
