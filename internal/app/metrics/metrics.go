// Package metrics provides Prometheus metrics for the HTTP surface and
// the outbound provider calls.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// httpRequestsTotal records the number of handled HTTP requests.
	// Labels:
	//   - method: HTTP method
	//   - path: matched route (e.g. "/transcribe")
	//   - status: response status code
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meetscribe_http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration records request latency per route.
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meetscribe_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"method", "path"},
	)

	// providerCallsTotal records the number of calls to external
	// speech-to-text and completion providers.
	// Labels:
	//   - provider: provider name (e.g. "openai/whisper")
	//   - operation: call type (e.g. "transcription", "chat_completion")
	//   - status: "success" or "failed"
	providerCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meetscribe_provider_calls_total",
			Help: "Total number of provider API calls",
		},
		[]string{"provider", "operation", "status"},
	)

	// providerCallDuration records provider call latency. Providers can
	// run for minutes on long audio, hence the wide buckets.
	providerCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meetscribe_provider_call_duration_seconds",
			Help:    "Duration of provider API calls in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"provider", "operation"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(providerCallsTotal)
	prometheus.MustRegister(providerCallDuration)
}

// RecordHTTPRequest records one handled HTTP request.
func RecordHTTPRequest(method, path, status string, durationSeconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// RecordProviderCall records one outbound provider call.
func RecordProviderCall(provider, operation, status string, durationSeconds float64) {
	providerCallsTotal.WithLabelValues(provider, operation, status).Inc()
	providerCallDuration.WithLabelValues(provider, operation).Observe(durationSeconds)
}
