package stripeapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Test_Metrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	records := []Record{
		{Method: http.MethodGet, Path: "/invoices/{invoice}", StatusCode: http.StatusOK, Duration: time.Millisecond},
		{Method: http.MethodGet, Path: "/invoices/{invoice}", StatusCode: http.StatusOK, Duration: time.Millisecond},
		{Method: http.MethodGet, Path: "/invoices/{invoice}", StatusCode: http.StatusNotFound, Err: &Error{HTTPStatusCode: http.StatusNotFound}},
		{Method: http.MethodPost, Path: "/subscriptions", Err: &TransportError{Err: context.DeadlineExceeded}},
	}

	for _, r := range records {
		m.Observe(context.Background(), r)
	}

	tests := []struct {
		c        prometheus.Collector
		expected float64
	}{
		{m.Requests.WithLabelValues(http.MethodGet, "/invoices/{invoice}", "200"), 2},
		{m.Requests.WithLabelValues(http.MethodGet, "/invoices/{invoice}", "404"), 1},
		{m.Requests.WithLabelValues(http.MethodPost, "/subscriptions", "none"), 1},
		{m.Errors.WithLabelValues(http.MethodGet, "/invoices/{invoice}", "status"), 1},
		{m.Errors.WithLabelValues(http.MethodPost, "/subscriptions", "transport"), 1},
	}

	for i, test := range tests {
		if got := testutil.ToFloat64(test.c); got != test.expected {
			t.Errorf("tests[%d] - unexpected value, expected=%v, got=%v\n", i, test.expected, got)
		}
	}

	if n := testutil.CollectAndCount(m.Duration); n != 2 {
		t.Errorf("unexpected number of duration series, expected=%d, got=%d\n", 2, n)
	}
}
