// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/models"
	"github.com/chocorocks/gateway/session"
)

// UsersHandler backs the user administration screens. The router mounts
// every route here behind the administrator role.
type UsersHandler struct {
	api *apiclient.Client
	mgr *session.Manager
}

func NewUsersHandler(api *apiclient.Client, mgr *session.Manager) *UsersHandler {
	return &UsersHandler{api: api, mgr: mgr}
}

// List handles GET /screens/users?search=
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	users, err := h.api.Users.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}

	query := r.URL.Query().Get("search")
	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if matchesSearch(query, u.Name, u.Email, u.IdentificationNumber) {
			filtered = append(filtered, u)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

// Create handles POST /screens/users
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	req, ok := h.parseUser(w, r)
	if !ok {
		return
	}
	user, err := h.api.Users.Create(apiContext(r, h.mgr), req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, user)
}

// Update handles PUT /screens/users/{id}
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	req, ok := h.parseUser(w, r)
	if !ok {
		return
	}
	user, err := h.api.Users.Update(apiContext(r, h.mgr), id, req)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}

// Delete handles DELETE /screens/users/{id}
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	if id == sess.UserID {
		middleware.ErrorResponse(w, http.StatusBadRequest, "you cannot delete your own account")
		return
	}
	if err := h.api.Users.Delete(apiContext(r, h.mgr), id); err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// AllActivities handles GET /screens/activities, the audit trail across
// every user.
func (h *UsersHandler) AllActivities(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	activities, err := h.api.UserActivities.List(apiContext(r, h.mgr))
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, activities)
}

// Activities handles GET /screens/users/{id}/activities
func (h *UsersHandler) Activities(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}
	activities, err := h.api.UserActivities.ListByUser(apiContext(r, h.mgr), id)
	if err != nil {
		respondAPIError(w, r, h.mgr, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, activities)
}

func (h *UsersHandler) parseUser(w http.ResponseWriter, r *http.Request) (models.UserRequest, bool) {
	var req models.UserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}
	switch {
	case req.Name == "" || req.Email == "":
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and email are required")
	case req.Role != models.RoleAdmin && req.Role != models.RoleEmployee:
		middleware.ErrorResponse(w, http.StatusBadRequest, "role must be ADMINISTRATOR or EMPLOYEE")
	default:
		return req, true
	}
	return req, false
}
