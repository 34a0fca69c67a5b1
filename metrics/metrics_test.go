package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsVectorsCanBeScraped(t *testing.T) {
	reg := prometheus.NewRegistry()

	// vectors will only be available in /metrics after a label has been set/incremented
	reg.MustRegister(
		RewriteRequestsTotal,
		ProcessedRequests,
	)

	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	testServer := httptest.NewServer(handler)
	defer testServer.Close()

	RewriteRequestsTotal.WithLabelValues("extension", "rewritten").Inc()
	ProcessedRequests.WithLabelValues("200", "get").Inc()

	c, err := RewriteRequestsTotal.GetMetricWithLabelValues("extension", "rewritten")
	require.NoError(t, err)
	require.Equal(t, float64(1), testutil.ToFloat64(c))

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, metricFamilies, 2)

	res, err := http.Get(testServer.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Contains(t, string(body), `pages_spa_rewrite_requests_total{outcome="rewritten",policy="extension"} 1`)
	require.Contains(t, string(body), `pages_spa_rewrite_http_requests_total{code="200",method="get"} 1`)
}
