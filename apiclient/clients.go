// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"fmt"

	"github.com/chocorocks/gateway/models"
)

// ClientsClient covers /clients (the shop's customers).
type ClientsClient struct {
	c *Client
}

func (cc *ClientsClient) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := cc.c.get(ctx, "/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (cc *ClientsClient) Get(ctx context.Context, id int) (*models.Client, error) {
	var client models.Client
	if err := cc.c.get(ctx, fmt.Sprintf("/clients/%d", id), nil, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (cc *ClientsClient) Create(ctx context.Context, req models.ClientRequest) (*models.Client, error) {
	var client models.Client
	if err := cc.c.post(ctx, "/clients", req, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (cc *ClientsClient) Update(ctx context.Context, id int, req models.ClientRequest) (*models.Client, error) {
	var client models.Client
	if err := cc.c.put(ctx, fmt.Sprintf("/clients/%d", id), req, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (cc *ClientsClient) Delete(ctx context.Context, id int) error {
	return cc.c.delete(ctx, fmt.Sprintf("/clients/%d", id))
}
