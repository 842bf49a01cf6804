package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "coverpage"

// Result label values for CoversGenerated.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	CoversGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "documents_generated_total", Help: "Cover page documents generated, by result."},
		[]string{"result"},
	)
	AssemblyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: namespace, Name: "assembly_duration_seconds", Help: "Time spent assembling and serializing a cover page.", Buckets: prometheus.DefBuckets},
	)
	DocumentBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: namespace, Name: "document_bytes", Help: "Size of generated documents.", Buckets: prometheus.ExponentialBuckets(4096, 2, 10)},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by route and status."},
		[]string{"method", "route", "status"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "login_attempts_total", Help: "Token requests, by result."},
		[]string{"result"},
	)
	PanicsRecovered = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "panics_recovered_total", Help: "Handler panics turned into 500 responses, by route."},
		[]string{"route"},
	)
)

// RegisterCollectors registers every collector with reg.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(CoversGenerated)
	reg.MustRegister(AssemblyDuration)
	reg.MustRegister(DocumentBytes)
	reg.MustRegister(RequestDuration)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(LoginAttempts)
	reg.MustRegister(PanicsRecovered)
}
