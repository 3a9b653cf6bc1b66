package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStats struct{}

func (stubStats) AcquiredConns() int32     { return 2 }
func (stubStats) IdleConns() int32         { return 1 }
func (stubStats) TotalConns() int32        { return 3 }
func (stubStats) MaxConns() int32          { return 10 }
func (stubStats) AcquireCount() int64      { return 42 }
func (stubStats) EmptyAcquireCount() int64 { return 5 }

func TestRecordCountsRequests(t *testing.T) {
	c := New()
	c.Record(http.MethodGet, "/departments", http.StatusOK, 10*time.Millisecond)
	c.Record(http.MethodGet, "/departments", http.StatusOK, 20*time.Millisecond)
	c.Record(http.MethodPost, "", http.StatusTooManyRequests, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.requests.WithLabelValues(http.MethodGet, "/departments", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues(http.MethodPost, "unmatched", "429")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.rateLimited))
}

func TestRegisterPoolExportsStats(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterPool(func() PoolStats { return stubStats{} }))

	expected := `
# HELP hrm_db_pool_max_conns Configured upper bound on open connections.
# TYPE hrm_db_pool_max_conns gauge
hrm_db_pool_max_conns 10
# HELP hrm_db_pool_acquired_conns Connections currently checked out of the pool.
# TYPE hrm_db_pool_acquired_conns gauge
hrm_db_pool_acquired_conns 2
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"hrm_db_pool_max_conns", "hrm_db_pool_acquired_conns"))
}

func TestHandlerServesText(t *testing.T) {
	c := New()
	c.Record(http.MethodGet, "/health", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hrm_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
