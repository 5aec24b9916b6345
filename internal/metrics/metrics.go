package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orbit_gateway"

// Service bundles all prometheus collectors behind a dedicated registry.
type Service struct {
	Registry *prometheus.Registry

	toolInvocations  *prometheus.CounterVec
	catalogRefreshes *prometheus.CounterVec
	subqueryFailures *prometheus.CounterVec
	statusDuration   prometheus.Histogram
}

func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Service{
		Registry: registry,
		toolInvocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_invocations_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		catalogRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_refreshes_total",
			Help:      "Chain catalog refresh attempts by outcome.",
		}, []string{"outcome"}),
		subqueryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_subquery_failures_total",
			Help:      "Failed status sub-queries by kind.",
		}, []string{"subquery"}),
		statusDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "status_aggregation_duration_seconds",
			Help:      "Duration of comprehensive status aggregations.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

func (s *Service) ObserveToolInvocation(tool string, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}

	s.toolInvocations.WithLabelValues(tool, outcome).Inc()
}

func (s *Service) ObserveCatalogRefresh(success bool) {
	outcome := "ok"
	if !success {
		outcome = "error"
	}

	s.catalogRefreshes.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveSubqueryFailure(subquery string) {
	s.subqueryFailures.WithLabelValues(subquery).Inc()
}

func (s *Service) ObserveStatusDuration(d time.Duration) {
	s.statusDuration.Observe(d.Seconds())
}
