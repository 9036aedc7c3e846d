package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phonebook/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveOperation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOperation("create", OutcomeOK, 10*time.Millisecond)
	m.ObserveOperation("create", OutcomeOK, 20*time.Millisecond)
	m.ObserveOperation("delete", "NOT_OWNER", time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Operations.WithLabelValues("create", OutcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Operations.WithLabelValues("delete", "NOT_OWNER")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.OperationLatency))
}

func TestMetrics_ObservePublishFailure(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePublishFailure(service.EntryRated)

	assert.InDelta(t, 1, testutil.ToFloat64(m.PublishFailures.WithLabelValues("entry.rated")), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("create", OutcomeOK, time.Millisecond)
		m.ObservePublishFailure(service.EntryCreated)
	})
}

func TestHandler(t *testing.T) {
	registry := NewRegistry()
	m := New(registry)
	m.ObserveOperation("update", OutcomeOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `phonebook_operations_total{operation="update",outcome="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
