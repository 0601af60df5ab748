package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
	dto "github.com/dropDatabas3/rbacconsole/internal/http/dto/admin"
	httperrors "github.com/dropDatabas3/rbacconsole/internal/http/errors"
	"github.com/dropDatabas3/rbacconsole/internal/http/helpers"
	svc "github.com/dropDatabas3/rbacconsole/internal/http/services/admin"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
)

// UsersController handles /v1/admin/users.
type UsersController struct {
	service svc.UserService
}

func NewUsersController(service svc.UserService) *UsersController {
	return &UsersController{service: service}
}

// List handles GET /v1/admin/users?q=term.
func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	page := c.service.List(r.Context(), term)

	etag := listETag(page.Tag, term)
	w.Header().Set("ETag", etag)
	if helpers.NotModified(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	items := make([]dto.UserResponse, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, toUserResponse(u))
	}
	helpers.WriteJSON(w, http.StatusOK, dto.UserListResponse{Version: page.Version, Items: items})
}

// Get handles GET /v1/admin/users/{id}.
func (c *UsersController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	u, err := c.service.Get(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, mapError(err, httperrors.ErrUserNotFound))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// Create handles POST /v1/admin/users.
func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	u := c.service.Create(r.Context(), directory.UserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})

	w.Header().Set("Location", "/v1/admin/users/"+strconv.FormatInt(u.ID, 10))
	helpers.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// Update handles PUT /v1/admin/users/{id}. An optional If-Match carrying the
// ETag of an unfiltered list read turns the edit into a compare-and-set.
func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("UsersController.Update"))

	id, err := pathID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	var req dto.UserUpdateRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	status, err := directory.ParseStatus(strings.TrimSpace(req.Status))
	if err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidFormat.WithDetail("status must be Active or Inactive"))
		return
	}

	u := directory.User{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: status,
	}
	if err := c.service.Update(ctx, u, helpers.IfMatchTag(r)); err != nil {
		log.Debug("update rejected", logger.Err(err))
		httperrors.WriteError(w, mapError(err, httperrors.ErrUserNotFound))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /v1/admin/users/{id}.
func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	if err := c.service.Delete(r.Context(), id); err != nil {
		httperrors.WriteError(w, mapError(err, httperrors.ErrUserNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u directory.User) dto.UserResponse {
	return dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: string(u.Status),
	}
}
