package middleware

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testutilCount(t *testing.T, method, path, status string) float64 {
	t.Helper()
	return testutil.ToFloat64(httpRequestsTotal.WithLabelValues(method, path, status))
}
