// Package metrics exposes Prometheus collectors for the recommendation pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// Collector implements ports.Metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	recommendations     *prometheus.CounterVec
	generativeFailures  *prometheus.CounterVec
	generativeDuration  prometheus.Histogram
	persistenceFailures *prometheus.CounterVec
}

// New registers the pipeline collectors plus Go runtime and process collectors.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		recommendations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "movierec_recommendations_total",
				Help: "Recommendations served, by source",
			},
			[]string{"source"},
		),
		generativeFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "movierec_generative_failures_total",
				Help: "Generative calls that failed and fell back, by error kind",
			},
			[]string{"kind"},
		),
		generativeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "movierec_generative_duration_seconds",
				Help:    "Duration of generative calls in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15},
			},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "movierec_persistence_failures_total",
				Help: "Request log writes that failed or were dropped",
			},
			[]string{"reason"},
		),
	}
}

func (c *Collector) ObserveRecommendation(source domain.Source) {
	c.recommendations.WithLabelValues(string(source)).Inc()
}

func (c *Collector) ObserveGenerativeFailure(kind domain.ErrorKind) {
	label := string(kind)
	if label == "" {
		label = "unknown"
	}
	c.generativeFailures.WithLabelValues(label).Inc()
}

func (c *Collector) ObserveGenerativeDuration(d time.Duration) {
	c.generativeDuration.Observe(d.Seconds())
}

func (c *Collector) ObservePersistenceFailure(reason string) {
	c.persistenceFailures.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

var _ ports.Metrics = (*Collector)(nil)
