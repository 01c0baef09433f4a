package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordUpstreamCall("transfers", "ok")
	r.RecordUpstreamCall("transfers", "ok")
	r.RecordUpstreamCall("account", "error")
	r.RecordPages(3)
	r.RecordTruncated()
	r.RecordError("upstream")
	r.RecordLatency("analyze", 0.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("transfers", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("account", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.pagesFetched))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.truncated))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("upstream")))

	n, err := testutil.GatherAndCount(reg, "tronlens_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
