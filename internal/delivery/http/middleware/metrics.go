package middleware

import (
	"net/http"
	"strconv"
	"time"

	"eventhub/internal/metrics"
)

// Metrics records request count and latency per route pattern.
func Metrics(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrap(w)
		next.ServeHTTP(wrapped, r)
		route := routeOf(r)
		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
