package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAuthRequestIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(AuthRequestsTotal.WithLabelValues("login", "app_error"))

	ObserveAuthRequest("login", "app_error", 10*time.Millisecond)

	after := testutil.ToFloat64(AuthRequestsTotal.WithLabelValues("login", "app_error"))
	assert.Equal(t, before+1, after)
}

func TestObserveHTTPRequestLabelsStatus(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "303"))

	ObserveHTTPRequest("POST", 303, time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "303"))
	assert.Equal(t, before+1, after)
}
