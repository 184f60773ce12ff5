package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestObserveBackend(t *testing.T) {
	before := testutil.ToFloat64(BackendRequests.WithLabelValues("analyze", OutcomeOK))

	ObserveBackend("analyze", OutcomeOK, 250*time.Millisecond)

	after := testutil.ToFloat64(BackendRequests.WithLabelValues("analyze", OutcomeOK))
	assert.InDelta(t, before+1, after, 1e-9)
}

func TestHandler_ServesCollectors(t *testing.T) {
	ObserveBackend("calculate-electricity", OutcomeNotFound, time.Millisecond)
	Exports.WithLabelValues(OutcomeOK).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `suneye_backend_requests_total{endpoint="calculate-electricity",outcome="not_found"}`)
	assert.Contains(t, string(body), "suneye_exports_total")
	assert.Contains(t, string(body), "go_goroutines")
}
