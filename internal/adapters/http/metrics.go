package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts auth attempts and translation submissions by outcome.
type Metrics struct {
	registry     *prometheus.Registry
	authAttempts *prometheus.CounterVec
	translations *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "humor_auth_attempts_total",
			Help: "Sign-up and sign-in attempts by action and outcome.",
		}, []string{"action", "outcome"}),
		translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "humor_translations_total",
			Help: "Joke translation submissions by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.authAttempts, m.translations)
	return m
}

func (m *Metrics) AuthAttempt(action, outcome string) {
	m.authAttempts.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) Translation(outcome string) {
	m.translations.WithLabelValues(outcome).Inc()
}

// Handler exposes the /metrics scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
