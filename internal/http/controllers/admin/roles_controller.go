package admin

import (
	"net/http"
	"strconv"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
	dto "github.com/dropDatabas3/rbacconsole/internal/http/dto/admin"
	httperrors "github.com/dropDatabas3/rbacconsole/internal/http/errors"
	"github.com/dropDatabas3/rbacconsole/internal/http/helpers"
	svc "github.com/dropDatabas3/rbacconsole/internal/http/services/admin"
)

// RolesController handles /v1/admin/roles.
type RolesController struct {
	service svc.RoleService
}

func NewRolesController(service svc.RoleService) *RolesController {
	return &RolesController{service: service}
}

// List handles GET /v1/admin/roles.
func (c *RolesController) List(w http.ResponseWriter, r *http.Request) {
	page := c.service.List(r.Context())

	etag := listETag(page.Tag, "")
	w.Header().Set("ETag", etag)
	if helpers.NotModified(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	items := make([]dto.RoleResponse, 0, len(page.Items))
	for _, role := range page.Items {
		items = append(items, toRoleResponse(role))
	}
	helpers.WriteJSON(w, http.StatusOK, dto.RoleListResponse{Version: page.Version, Items: items})
}

// Get handles GET /v1/admin/roles/{id}.
func (c *RolesController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	role, err := c.service.Get(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, mapError(err, httperrors.ErrRoleNotFound))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

// Create handles POST /v1/admin/roles.
func (c *RolesController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RoleRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	role := c.service.Create(r.Context(), directory.RoleInput{
		Name:        req.Name,
		Permissions: req.Permissions,
	})

	w.Header().Set("Location", "/v1/admin/roles/"+strconv.FormatInt(role.ID, 10))
	helpers.WriteJSON(w, http.StatusCreated, toRoleResponse(role))
}

// Update handles PUT /v1/admin/roles/{id}.
func (c *RolesController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	var req dto.RoleRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	role := directory.Role{ID: id, Name: req.Name, Permissions: req.Permissions}
	if err := c.service.Update(r.Context(), role, helpers.IfMatchTag(r)); err != nil {
		httperrors.WriteError(w, mapError(err, httperrors.ErrRoleNotFound))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

func toRoleResponse(r directory.Role) dto.RoleResponse {
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return dto.RoleResponse{ID: r.ID, Name: r.Name, Permissions: perms}
}
