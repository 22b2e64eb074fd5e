package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordToggle(t *testing.T) {
	before := testutil.ToFloat64(togglesTotal.WithLabelValues("completed"))
	RecordToggle(true)
	RecordToggle(false)
	assert.Equal(t, before+1, testutil.ToFloat64(togglesTotal.WithLabelValues("completed")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(togglesTotal.WithLabelValues("uncompleted")), 1.0)
}

func TestRecordHTTPRequestGroupsUnmatched(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	RecordHTTPRequest("GET", "", 404)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestObserveAggregation(t *testing.T) {
	ObserveAggregation("overview", 3*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(aggregationDuration), 1)
}
