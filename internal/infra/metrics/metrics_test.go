package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nms/config"
	"nms/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMetrics_RecordMutation(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Namespace: "test"}})

	m.RecordMutation("address", service.AuditActionCreated, service.OutcomeSuccess)
	m.RecordMutation("address", service.AuditActionCreated, service.OutcomeSuccess)
	m.RecordMutation("address", service.AuditActionUpdated, service.OutcomeUnchanged)

	body := scrape(t, m)
	assert.Contains(t, body, `test_entity_mutations_total{action="created",entity="address",outcome="success"} 2`)
	assert.Contains(t, body, `test_entity_mutations_total{action="updated",entity="address",outcome="unchanged"} 1`)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New(nil)

	m.ObserveRequest(http.MethodGet, "/api/address/get-address/:id", http.StatusOK, 20*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `nms_http_requests_total{method="GET",path="/api/address/get-address/:id",status="200"} 1`)
	assert.Contains(t, body, `nms_http_request_duration_seconds_count{method="GET",path="/api/address/get-address/:id"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	first := New(nil)
	second := New(nil)

	first.RecordMutation("country", service.AuditActionCreated, service.OutcomeConflict)

	assert.Contains(t, scrape(t, first), `outcome="conflict"`)
	assert.NotContains(t, scrape(t, second), `outcome="conflict"`)
}
