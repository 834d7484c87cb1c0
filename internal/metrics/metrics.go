package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeWritten   = "written"
	OutcomeSkipped   = "skipped"
	OutcomeMalformed = "malformed"
	OutcomeRejected  = "rejected"
)

type tracker interface {
	TrackRequest(method string, status int, duration time.Duration)
	TrackCookieWrite(operation, outcome string)
}

var Tracker tracker = &nullTracker{}

func Enable() http.Handler {
	Tracker = NewPrometheusTracker(prometheus.DefaultRegisterer)
	return promhttp.Handler()
}

type nullTracker struct{}

func (nullTracker) TrackRequest(method string, status int, dur time.Duration) {}
func (nullTracker) TrackCookieWrite(operation, outcome string)                {}

type prometheusTracker struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	cookieWrites *prometheus.CounterVec
}

func NewPrometheusTracker(registerer prometheus.Registerer) *prometheusTracker {
	tracker := &prometheusTracker{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:      "http_requests_total",
				Namespace: "cookie_composer",
				Subsystem: "server",
				Help:      "HTTP requests processed, labeled by status code and method.",
			},
			[]string{"method", "status"},
		),

		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:      "http_request_duration_seconds",
				Namespace: "cookie_composer",
				Subsystem: "server",
				Help:      "Duration of HTTP requests, labeled by status code and method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),

		cookieWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:      "cookie_writes_total",
				Namespace: "cookie_composer",
				Subsystem: "server",
				Help:      "Cookie writes against responses, labeled by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
	}

	registerer.MustRegister(tracker.httpRequests, tracker.httpDuration, tracker.cookieWrites)

	return tracker
}

func (p *prometheusTracker) TrackRequest(method string, status int, duration time.Duration) {
	method = normalizeMethod(method)
	statusString := strconv.Itoa(status)

	p.httpRequests.WithLabelValues(method, statusString).Inc()
	p.httpDuration.WithLabelValues(method, statusString).Observe(duration.Seconds())
}

func (p *prometheusTracker) TrackCookieWrite(operation, outcome string) {
	p.cookieWrites.WithLabelValues(operation, outcome).Inc()
}

// Private

func normalizeMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost,
		http.MethodPut, http.MethodPatch, http.MethodDelete,
		http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	default:
		return "OTHER"
	}
}
