package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"eventhub/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events/{eventID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := Metrics(m, mux)

	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events/"+id, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/elsewhere", nil))

	require.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "GET /events/{eventID}", "404")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "unmatched", "404")))
	require.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}
