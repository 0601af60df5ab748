package middlewares

import (
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	httperrors "github.com/dropDatabas3/rbacconsole/internal/http/errors"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
	"github.com/dropDatabas3/rbacconsole/internal/rate"
)

// WithRateLimit limita requests por IP de cliente. Con limiter nil no hace nada.
// Si el limiter falla, la request pasa igual.
func WithRateLimit(l rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			res, err := l.Allow(r.Context(), ip)
			if err != nil {
				logger.From(r.Context()).Warn("rate limiter unavailable",
					logger.Component("rate"), logger.ClientIP(ip), logger.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
			if !res.Allowed {
				secs := int64(math.Ceil(res.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.FormatInt(secs, 10))
				logger.From(r.Context()).Info("rate limited",
					logger.ClientIP(ip), zap.Int64("hits", res.CurrentHits))
				httperrors.WriteError(w, httperrors.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
