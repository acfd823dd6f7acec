package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Job outcomes used as the "outcome" label.
const (
	OutcomeSuccess   = "success"
	OutcomeNoResults = "no_results"
	OutcomeFailure   = "failure"
)

// JobMetrics holds the collectors of the scheduled jobs. A nil *JobMetrics
// is valid and records nothing.
type JobMetrics struct {
	reg *prometheus.Registry

	JobRunsTotal           *prometheus.CounterVec
	JobDurationSeconds     *prometheus.HistogramVec
	UpstreamErrorsTotal    *prometheus.CounterVec
	OrdersAggregatedTotal  prometheus.Counter
	CustomerGroups         prometheus.Gauge
	AggregatedDollars      prometheus.Gauge
}

// NewJobMetrics creates the collectors on a private registry together with
// the Go runtime and process collectors.
func NewJobMetrics() *JobMetrics {
	r := prometheus.NewRegistry()
	m := &JobMetrics{
		reg: r,
		JobRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobs_runs_total",
				Help: "Job invocations by job and outcome",
			},
			[]string{"job", "outcome"},
		),
		JobDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jobs_duration_seconds",
				Help:    "Job wall-clock duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		),
		UpstreamErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobs_upstream_errors_total",
				Help: "Failed calls to external services",
			},
			[]string{"service"},
		),
		OrdersAggregatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobs_orders_aggregated_total",
			Help: "Orders folded into customer groups",
		}),
		CustomerGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "jobs_customer_groups",
			Help: "Customer groups produced by the last aggregation",
		}),
		AggregatedDollars: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "jobs_aggregated_dollars",
			Help: "USD total of the last aggregation",
		}),
	}

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.JobRunsTotal,
		m.JobDurationSeconds,
		m.UpstreamErrorsTotal,
		m.OrdersAggregatedTotal,
		m.CustomerGroups,
		m.AggregatedDollars,
	)
	return m
}

// ObserveJob records one finished job run.
func (m *JobMetrics) ObserveJob(job, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.JobRunsTotal.WithLabelValues(job, outcome).Inc()
	m.JobDurationSeconds.WithLabelValues(job).Observe(elapsed.Seconds())
}

// UpstreamError counts a failed call to service.
func (m *JobMetrics) UpstreamError(service string) {
	if m == nil {
		return
	}
	m.UpstreamErrorsTotal.WithLabelValues(service).Inc()
}

// Aggregated records the size of one aggregation result.
func (m *JobMetrics) Aggregated(orders, groups int, dollars float64) {
	if m == nil {
		return
	}
	m.OrdersAggregatedTotal.Add(float64(orders))
	m.CustomerGroups.Set(float64(groups))
	m.AggregatedDollars.Set(dollars)
}

// Registry exposes the underlying registry, mainly for tests.
func (m *JobMetrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the exposition format.
func (m *JobMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
