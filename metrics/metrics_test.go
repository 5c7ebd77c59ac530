package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust/metrics"
)

func TestCollector(t *testing.T) {
	tcs := []struct {
		name     string
		record   func(c *metrics.Collector)
		metric   string
		expected string
	}{
		{
			name: "Logins",
			record: func(c *metrics.Collector) {
				c.RecordLogin(metrics.ResultSuccess)
				c.RecordLogin(metrics.ResultFailure)
				c.RecordLogin(metrics.ResultFailure)
			},
			metric: "wanderlust_logins_total",
			expected: `
# HELP wanderlust_logins_total Login attempts by result.
# TYPE wanderlust_logins_total counter
wanderlust_logins_total{result="failure"} 2
wanderlust_logins_total{result="success"} 1
`,
		},
		{
			name: "Registrations",
			record: func(c *metrics.Collector) {
				c.RecordRegistration(metrics.ResultError)
			},
			metric: "wanderlust_registrations_total",
			expected: `
# HELP wanderlust_registrations_total Registration attempts by result.
# TYPE wanderlust_registrations_total counter
wanderlust_registrations_total{result="error"} 1
`,
		},
		{
			name: "Want-To-Go-Adds",
			record: func(c *metrics.Collector) {
				c.RecordWantToGoAdd("added")
				c.RecordWantToGoAdd("already_present")
			},
			metric: "wanderlust_wanttogo_adds_total",
			expected: `
# HELP wanderlust_wanttogo_adds_total Want-to-go additions by outcome.
# TYPE wanderlust_wanttogo_adds_total counter
wanderlust_wanttogo_adds_total{outcome="added"} 1
wanderlust_wanttogo_adds_total{outcome="already_present"} 1
`,
		},
		{
			name: "Searches",
			record: func(c *metrics.Collector) {
				c.RecordSearch()
				c.RecordSearch()
				c.RecordSearch()
			},
			metric: "wanderlust_searches_total",
			expected: `
# HELP wanderlust_searches_total Destination searches performed.
# TYPE wanderlust_searches_total counter
wanderlust_searches_total 3
`,
		},
		{
			name: "HTTP-Status",
			record: func(c *metrics.Collector) {
				c.RecordHTTPStatus(http.StatusNotFound)
			},
			metric: "wanderlust_http_requests_total",
			expected: `
# HELP wanderlust_http_requests_total HTTP responses by status code.
# TYPE wanderlust_http_requests_total counter
wanderlust_http_requests_total{code="404"} 1
`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			reg := prometheus.NewRegistry()
			c := metrics.NewCollector(reg)

			// Act
			tc.record(c)

			// Assert
			require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(tc.expected), tc.metric))
		})
	}
}

func TestCountRequests(t *testing.T) {
	// Arrange
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	h := c.CountRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	// Act
	for i := 0; i < 2; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	// Assert
	count, err := testutil.GatherAndCount(reg, "wanderlust_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP wanderlust_http_requests_total HTTP responses by status code.
# TYPE wanderlust_http_requests_total counter
wanderlust_http_requests_total{code="418"} 2
`), "wanderlust_http_requests_total"))
}

func TestHandler(t *testing.T) {
	// Arrange
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.RecordSearch()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	// Act
	metrics.Handler(reg).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	b, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	require.Contains(t, string(b), "wanderlust_searches_total 1")
}

func TestDiscard(t *testing.T) {
	var rec metrics.Recorder = metrics.Discard{}
	require.NotPanics(t, func() {
		rec.RecordLogin(metrics.ResultSuccess)
		rec.RecordRegistration(metrics.ResultFailure)
		rec.RecordWantToGoAdd("added")
		rec.RecordSearch()
	})
}
