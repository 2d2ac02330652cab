package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerMetrics_ScrapeExposesRecordedRequests(t *testing.T) {
	m := NewServerMetrics("api")

	m.Requests.WithLabelValues("/api/v1/orders", "201").Inc()
	m.LatencyMS.WithLabelValues("/api/v1/orders").Observe(12)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "distribution_api_http_requests_total")
	assert.Contains(t, body, "distribution_api_http_request_duration_ms")
}
