// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"fmt"

	"github.com/chocorocks/gateway/models"
)

// ReceiptsClient covers /receipts and its cancel/print actions.
type ReceiptsClient struct {
	c *Client
}

func (rc *ReceiptsClient) List(ctx context.Context) ([]models.Receipt, error) {
	var receipts []models.Receipt
	if err := rc.c.get(ctx, "/receipts", nil, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (rc *ReceiptsClient) Get(ctx context.Context, id int) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := rc.c.get(ctx, fmt.Sprintf("/receipts/%d", id), nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Cancel voids an issued receipt. The backend rejects receipts that are
// already cancelled; its message is surfaced verbatim.
func (rc *ReceiptsClient) Cancel(ctx context.Context, id int) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := rc.c.post(ctx, fmt.Sprintf("/receipts/%d/cancel", id), nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// MarkPrinted records that the receipt was sent to the printer.
func (rc *ReceiptsClient) MarkPrinted(ctx context.Context, id int) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := rc.c.post(ctx, fmt.Sprintf("/receipts/%d/print", id), nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
