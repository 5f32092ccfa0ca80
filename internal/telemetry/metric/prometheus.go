package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "edgeauth"

// Registry holds the token metrics.
type Registry struct {
	registry *prometheus.Registry

	// TokensIssued counts signed tokens by algorithm.
	TokensIssued *prometheus.CounterVec

	// TokenFailures counts failed generations by error code.
	TokenFailures *prometheus.CounterVec
}

// NewRegistry creates a registry with all token metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		TokensIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_issued_total",
				Help:      "Number of tokens signed, by HMAC algorithm.",
			},
			[]string{"algorithm"},
		),
		TokenFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_failures_total",
				Help:      "Number of failed token generations, by error code.",
			},
			[]string{"code"},
		),
	}

	r.registry.MustRegister(r.TokensIssued, r.TokenFailures)
	return r
}

// ObserveIssued records a signed token.
func (r *Registry) ObserveIssued(algorithm string) {
	r.TokensIssued.WithLabelValues(algorithm).Inc()
}

// ObserveFailure records a failed generation. Errors without a code are
// counted as "unknown".
func (r *Registry) ObserveFailure(code string) {
	if code == "" {
		code = "unknown"
	}
	r.TokenFailures.WithLabelValues(code).Inc()
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
