package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/dropDatabas3/rbacconsole/internal/http/errors"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
)

// HeaderAdminAPIKey lleva el secreto admin compartido.
const HeaderAdminAPIKey = "X-Admin-API-Key"

// RequireAdminKey rechaza requests cuyo X-Admin-API-Key no coincide con key.
// Con key vacía no se valida nada (modo desarrollo).
func RequireAdminKey(key string) Middleware {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		want := []byte(key)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(HeaderAdminAPIKey))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				logger.From(r.Context()).Warn("admin key rejected", logger.Op("RequireAdminKey"))
				errors.WriteError(w, errors.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
