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

// UsersClient covers /users. Exposed only behind the administrator role
// at the handler layer; the backend enforces the same rule itself.
type UsersClient struct {
	c *Client
}

func (uc *UsersClient) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := uc.c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (uc *UsersClient) Get(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := uc.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *UsersClient) Create(ctx context.Context, req models.UserRequest) (*models.User, error) {
	var user models.User
	if err := uc.c.post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *UsersClient) Update(ctx context.Context, id int, req models.UserRequest) (*models.User, error) {
	var user models.User
	if err := uc.c.put(ctx, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *UsersClient) Delete(ctx context.Context, id int) error {
	return uc.c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// UserActivitiesClient covers /user-activities (the audit trail).
type UserActivitiesClient struct {
	c *Client
}

func (ac *UserActivitiesClient) List(ctx context.Context) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	if err := ac.c.get(ctx, "/user-activities", nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (ac *UserActivitiesClient) ListByUser(ctx context.Context, userID int) ([]models.UserActivity, error) {
	query := url.Values{"userId": {strconv.Itoa(userID)}}
	var activities []models.UserActivity
	if err := ac.c.get(ctx, "/user-activities", query, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
