// Package admin contains the admin API controllers.
package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
	httperrors "github.com/dropDatabas3/rbacconsole/internal/http/errors"
	"github.com/dropDatabas3/rbacconsole/internal/http/helpers"
	svc "github.com/dropDatabas3/rbacconsole/internal/http/services/admin"
)

// Controllers groups the admin controllers.
type Controllers struct {
	Users *UsersController
	Roles *RolesController
}

func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Users: NewUsersController(s.Users),
		Roles: NewRolesController(s.Roles),
	}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, httperrors.ErrInvalidParameter.WithDetail("id must be a positive integer")
	}
	return id, nil
}

// listETag is the snapshot tag for unfiltered reads, usable in If-Match,
// and a hash of tag and folded term for searches.
func listETag(tag, term string) string {
	if term == "" {
		return helpers.TagETag(tag)
	}
	return helpers.ETag(tag, strings.ToLower(term))
}

// mapError turns a service error into an AppError; notFound names the
// collection-specific 404.
func mapError(err error, notFound *httperrors.AppError) *httperrors.AppError {
	switch {
	case directory.IsNotFound(err):
		return notFound.WithDetail(err.Error())
	case errors.Is(err, svc.ErrStale):
		return httperrors.ErrPreconditionFailed
	default:
		return httperrors.FromError(err)
	}
}
