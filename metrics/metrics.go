package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Labels applied to the result of an authentication attempt.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultError   = "error"
)

// A Recorder records the domain events wanderlust counts.
type Recorder interface {
	RecordLogin(result string)
	RecordRegistration(result string)
	RecordWantToGoAdd(outcome string)
	RecordSearch()
}

// Collector is the Prometheus backed Recorder.
type Collector struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	adds          *prometheus.CounterVec
	searches      prometheus.Counter
	requests      *prometheus.CounterVec
}

// NewCollector constructs a *Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanderlust_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanderlust_registrations_total",
			Help: "Registration attempts by result.",
		}, []string{"result"}),
		adds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanderlust_wanttogo_adds_total",
			Help: "Want-to-go additions by outcome.",
		}, []string{"outcome"}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wanderlust_searches_total",
			Help: "Destination searches performed.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanderlust_http_requests_total",
			Help: "HTTP responses by status code.",
		}, []string{"code"}),
	}

	reg.MustRegister(
		c.logins,
		c.registrations,
		c.adds,
		c.searches,
		c.requests,
	)

	return c
}

// RecordLogin counts a login attempt.
func (c *Collector) RecordLogin(result string) { c.logins.WithLabelValues(result).Inc() }

// RecordRegistration counts a registration attempt.
func (c *Collector) RecordRegistration(result string) {
	c.registrations.WithLabelValues(result).Inc()
}

// RecordWantToGoAdd counts an attempt to add to a want-to-go list.
func (c *Collector) RecordWantToGoAdd(outcome string) { c.adds.WithLabelValues(outcome).Inc() }

// RecordSearch counts a destination search.
func (c *Collector) RecordSearch() { c.searches.Inc() }

// RecordHTTPStatus counts a response written with code.
func (c *Collector) RecordHTTPStatus(code int) {
	c.requests.WithLabelValues(strconv.Itoa(code)).Inc()
}

// CountRequests wraps h, counting every response by its status code.
//
// Its signature matches middleware.Adapter.
func (c *Collector) CountRequests(h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(c.requests, h)
}

// Handler serves the metrics gathered by gatherer in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Discard is a Recorder that records nothing.
type Discard struct{}

func (Discard) RecordLogin(string)        {}
func (Discard) RecordRegistration(string) {}
func (Discard) RecordWantToGoAdd(string)  {}
func (Discard) RecordSearch()             {}
