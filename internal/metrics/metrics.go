// Package metrics exposes Prometheus instrumentation for the directory and
// the admin HTTP API.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rbac"

// register adds c to reg. If an equal collector is already registered, the
// existing one is returned so both callers feed the same series.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, nil
		}
		return c, err
	}
	return c, nil
}
